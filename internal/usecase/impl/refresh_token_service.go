// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bankauth/config"
	deliverycontext "bankauth/internal/delivery/context"
	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/repository"
	"bankauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshTokenService implements the RefreshTokenUsecase interface.
type refreshTokenService struct {
	repo   repository.RefreshTokenRepository
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// RefreshTokenServiceParams holds dependencies for the refresh token service, injected by Fx.
type RefreshTokenServiceParams struct {
	fx.In

	Repo   repository.RefreshTokenRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewRefreshTokenService is the constructor for refreshTokenService.
func NewRefreshTokenService(params RefreshTokenServiceParams) usecase.RefreshTokenUsecase {
	ttl := config.DefaultRefreshTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.RefreshTokenTTL > 0 {
		ttl = params.Config.Auth.RefreshTokenTTL
	}

	return &refreshTokenService{
		repo:   params.Repo,
		ttl:    ttl,
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *refreshTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRefreshToken issues a random token that expires ttl from now.
func (srv *refreshTokenService) CreateRefreshToken(ctx context.Context, username string) (string, error) {
	token := &entity.RefreshToken{
		Token:      uuid.NewString(),
		Username:   username,
		ExpiryDate: srv.now().Add(srv.ttl),
	}

	if err := srv.repo.Save(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to save refresh token")
	}
	srv.log(ctx).Debug("Refresh token issued", slog.String("username", username), slog.Time("expiry", token.ExpiryDate))

	return token.Token, nil
}

// FindByToken looks the record up without checking expiry.
func (srv *refreshTokenService) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	record, err := srv.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return record, nil
}

// VerifyExpiration is the only place token expiry is decided. An expired
// record is removed before the error is returned.
func (srv *refreshTokenService) VerifyExpiration(ctx context.Context, token *entity.RefreshToken) (*entity.RefreshToken, error) {
	if !token.IsExpired(srv.now()) {
		return token, nil
	}

	srv.log(ctx).Info("Refresh token expired", slog.String("username", token.Username), slog.Time("expiry", token.ExpiryDate))

	if err := srv.repo.Delete(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to delete expired refresh token")
	}

	return nil, errors.WithStack(domainerrors.ErrRefreshTokenExpired)
}

// DeleteByUsername removes every token owned by username.
func (srv *refreshTokenService) DeleteByUsername(ctx context.Context, username string) error {
	if err := srv.repo.DeleteByUsername(ctx, username); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens by username")
	}

	return nil
}

// CleanupExpired sweeps tokens that expired without being presented again.
func (srv *refreshTokenService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.repo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}
	if removed > 0 {
		srv.log(ctx).Info("Expired refresh tokens removed", slog.Int64("count", removed))
	}

	return removed, nil
}
