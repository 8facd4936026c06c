package postgres

import (
	"context"
	"testing"
	"time"

	"bankauth/internal/domain/entity"
	"bankauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newToken(username string, expiry time.Time) *entity.RefreshToken {
	return &entity.RefreshToken{Token: uuid.NewString(), Username: username, ExpiryDate: expiry}
}

func TestRefreshTokenRepository_SaveAndFindByToken(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	token := newToken("alice", baseTime.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, token))

	found, err := repo.FindByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.Token, found.Token)
	assert.Equal(t, "alice", found.Username)
	assert.True(t, token.ExpiryDate.Equal(found.ExpiryDate))
}

func TestRefreshTokenRepository_FindByToken_NotFound(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))

	_, err := repo.FindByToken(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_FindByToken_ReturnsExpiredRecords(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	token := newToken("alice", baseTime.Add(-time.Hour))
	require.NoError(t, repo.Save(ctx, token))

	found, err := repo.FindByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.Token, found.Token)
}

func TestRefreshTokenRepository_SaveUpserts(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	token := newToken("alice", baseTime.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, token))

	token.ExpiryDate = baseTime.Add(2 * time.Hour)
	require.NoError(t, repo.Save(ctx, token))

	found, err := repo.FindByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.True(t, baseTime.Add(2*time.Hour).Equal(found.ExpiryDate))
}

func TestRefreshTokenRepository_FindByUsername_PicksLatestExpiry(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	early := newToken("alice", baseTime.Add(time.Hour))
	late := newToken("alice", baseTime.Add(3*time.Hour))
	other := newToken("bob", baseTime.Add(5*time.Hour))
	for _, tok := range []*entity.RefreshToken{early, late, other} {
		require.NoError(t, repo.Save(ctx, tok))
	}

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, late.Token, found.Token)

	_, err = repo.FindByUsername(ctx, "carol")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_DeleteByUsername(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	a1 := newToken("alice", baseTime.Add(time.Hour))
	a2 := newToken("alice", baseTime.Add(2*time.Hour))
	b1 := newToken("bob", baseTime.Add(time.Hour))
	for _, tok := range []*entity.RefreshToken{a1, a2, b1} {
		require.NoError(t, repo.Save(ctx, tok))
	}

	require.NoError(t, repo.DeleteByUsername(ctx, "alice"))

	for _, tok := range []*entity.RefreshToken{a1, a2} {
		_, err := repo.FindByToken(ctx, tok.Token)
		assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	}
	_, err := repo.FindByToken(ctx, b1.Token)
	assert.NoError(t, err)

	// Nothing left to delete is still a success.
	assert.NoError(t, repo.DeleteByUsername(ctx, "alice"))
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	token := newToken("alice", baseTime.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, token))

	require.NoError(t, repo.Delete(ctx, token))
	_, err := repo.FindByToken(ctx, token.Token)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	assert.NoError(t, repo.Delete(ctx, token))
	assert.NoError(t, repo.Delete(ctx, nil))
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	repo := NewRefreshTokenRepository(newTestDB(t))
	ctx := context.Background()

	expired := newToken("alice", baseTime.Add(-time.Minute))
	boundary := newToken("bob", baseTime)
	live := newToken("carol", baseTime.Add(time.Minute))
	for _, tok := range []*entity.RefreshToken{expired, boundary, live} {
		require.NoError(t, repo.Save(ctx, tok))
	}

	removed, err := repo.DeleteExpired(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.FindByToken(ctx, live.Token)
	assert.NoError(t, err)
	_, err = repo.FindByToken(ctx, boundary.Token)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}
