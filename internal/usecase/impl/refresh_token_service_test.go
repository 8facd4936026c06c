package impl

import (
	"context"
	"testing"
	"time"

	"bankauth/config"
	"bankauth/internal/domain/entity"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/repository"
	mockRepo "bankauth/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestRefreshTokenService(t *testing.T, repo repository.RefreshTokenRepository, clock *testClock) *refreshTokenService {
	t.Helper()

	srv, ok := NewRefreshTokenService(RefreshTokenServiceParams{
		Repo:   repo,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	}).(*refreshTokenService)
	require.True(t, ok)
	srv.now = clock.Now

	return srv
}

func TestRefreshTokenService_CreateRefreshToken(t *testing.T) {
	repo := newMemoryRefreshTokenRepo()
	srv := newTestRefreshTokenService(t, repo, newTestClock(testStart))
	ctx := context.Background()

	for _, username := range []string{"alice@example.com", "bob", "c"} {
		token, err := srv.CreateRefreshToken(ctx, username)
		require.NoError(t, err)

		_, err = uuid.Parse(token)
		require.NoError(t, err, "token must be canonical UUID text")

		record, err := srv.FindByToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, username, record.Username)
		assert.Equal(t, testStart.Add(3_600_000*time.Millisecond), record.ExpiryDate)
	}
}

func TestRefreshTokenService_CreateRefreshToken_KeepsPreviousTokens(t *testing.T) {
	repo := newMemoryRefreshTokenRepo()
	srv := newTestRefreshTokenService(t, repo, newTestClock(testStart))
	ctx := context.Background()

	first, err := srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)
	second, err := srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, repo.count())
}

func TestRefreshTokenService_CreateRefreshToken_CustomTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.RefreshTokenTTL = 30 * time.Minute

	srv, ok := NewRefreshTokenService(RefreshTokenServiceParams{
		Repo:   newMemoryRefreshTokenRepo(),
		Config: cfg,
		Logger: newDiscardLogger(),
	}).(*refreshTokenService)
	require.True(t, ok)
	srv.now = newTestClock(testStart).Now

	token, err := srv.CreateRefreshToken(context.Background(), "alice")
	require.NoError(t, err)

	record, err := srv.FindByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(30*time.Minute), record.ExpiryDate)
}

func TestRefreshTokenService_DefaultTTL(t *testing.T) {
	srv, ok := NewRefreshTokenService(RefreshTokenServiceParams{
		Repo:   newMemoryRefreshTokenRepo(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	}).(*refreshTokenService)
	require.True(t, ok)
	assert.Equal(t, time.Hour, srv.ttl)
}

func TestRefreshTokenService_CreateRefreshToken_SaveFails(t *testing.T) {
	repo := mockRepo.NewMockRefreshTokenRepository(t)
	srv := newTestRefreshTokenService(t, repo, newTestClock(testStart))
	ctx := context.Background()

	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(errors.New("db down"))

	token, err := srv.CreateRefreshToken(ctx, "alice")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestRefreshTokenService_VerifyExpiration_Live(t *testing.T) {
	repo := newMemoryRefreshTokenRepo()
	clock := newTestClock(testStart)
	srv := newTestRefreshTokenService(t, repo, clock)
	ctx := context.Background()

	token, err := srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)
	record, err := srv.FindByToken(ctx, token)
	require.NoError(t, err)
	snapshot := *record

	clock.Advance(59 * time.Minute)
	verified, err := srv.VerifyExpiration(ctx, record)
	require.NoError(t, err)
	assert.Same(t, record, verified)
	assert.Equal(t, snapshot, *verified)

	_, err = srv.FindByToken(ctx, token)
	assert.NoError(t, err)
}

func TestRefreshTokenService_VerifyExpiration_Expired(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
	}{
		{name: "exactly at expiry", advance: time.Hour},
		{name: "past expiry", advance: 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRefreshTokenRepo()
			clock := newTestClock(testStart)
			srv := newTestRefreshTokenService(t, repo, clock)
			ctx := context.Background()

			token, err := srv.CreateRefreshToken(ctx, "alice")
			require.NoError(t, err)
			record, err := srv.FindByToken(ctx, token)
			require.NoError(t, err)

			clock.Advance(tt.advance)
			verified, err := srv.VerifyExpiration(ctx, record)
			assert.Nil(t, verified)
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)

			_, err = srv.FindByToken(ctx, token)
			assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
		})
	}
}

func TestRefreshTokenService_VerifyExpiration_DeleteFails(t *testing.T) {
	repo := mockRepo.NewMockRefreshTokenRepository(t)
	srv := newTestRefreshTokenService(t, repo, newTestClock(testStart))
	ctx := context.Background()

	record := &entity.RefreshToken{Token: uuid.NewString(), Username: "alice", ExpiryDate: testStart.Add(-time.Second)}
	repo.EXPECT().Delete(ctx, record).Return(errors.New("db down"))

	_, err := srv.VerifyExpiration(ctx, record)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestRefreshTokenService_FindByToken_NotFound(t *testing.T) {
	srv := newTestRefreshTokenService(t, newMemoryRefreshTokenRepo(), newTestClock(testStart))

	_, err := srv.FindByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenService_DeleteByUsername(t *testing.T) {
	repo := newMemoryRefreshTokenRepo()
	srv := newTestRefreshTokenService(t, repo, newTestClock(testStart))
	ctx := context.Background()

	_, err := srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)
	_, err = srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)
	bobToken, err := srv.CreateRefreshToken(ctx, "bob")
	require.NoError(t, err)

	require.NoError(t, srv.DeleteByUsername(ctx, "alice"))

	_, err = repo.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	_, err = srv.FindByToken(ctx, bobToken)
	assert.NoError(t, err)

	assert.NoError(t, srv.DeleteByUsername(ctx, "nobody"))
}

func TestRefreshTokenService_CleanupExpired(t *testing.T) {
	repo := newMemoryRefreshTokenRepo()
	clock := newTestClock(testStart)
	srv := newTestRefreshTokenService(t, repo, clock)
	ctx := context.Background()

	_, err := srv.CreateRefreshToken(ctx, "alice")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	live, err := srv.CreateRefreshToken(ctx, "bob")
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	removed, err := srv.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = srv.FindByToken(ctx, live)
	assert.NoError(t, err)
}
