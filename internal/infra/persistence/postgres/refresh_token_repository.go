package postgres

import (
	"context"
	"time"

	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/repository"
	"bankauth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Save upserts the token record keyed by its token string.
func (repo *refreshTokenRepository) Save(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "expiry_date"}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save refresh token")
	}

	return nil
}

// FindByToken retrieves a refresh token record by its exact token string.
// Expiry is not checked here.
func (repo *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).Take(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// FindByUsername returns the user's token that expires last.
func (repo *refreshTokenRepository) FindByUsername(ctx context.Context, username string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Order("expiry_date DESC").
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// DeleteByUsername removes all of the user's tokens.
func (repo *refreshTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Delete removes a single token record. Deleting a missing record is a no-op.
func (repo *refreshTokenRepository) Delete(ctx context.Context, token *entity.RefreshToken) error {
	if token == nil {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token.Token).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpired removes every token whose expiry is at or before now.
func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expiry_date <= ?", now.UTC()).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		Token:      data.Token,
		Username:   data.Username,
		ExpiryDate: data.ExpiryDate,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		Token:    data.Token,
		Username: data.Username,
		// Stored in UTC so range comparisons behave the same on every driver.
		ExpiryDate: data.ExpiryDate.UTC(),
	}
}
