package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"bankauth/config"
	"bankauth/internal/domain/entity"
	"bankauth/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			RefreshTokenTTL: config.DefaultRefreshTokenTTL,
			AccessTokenTTL:  config.DefaultAccessTokenTTL,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

// testClock is a settable clock shared by the service under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memoryRefreshTokenRepo is an in-memory RefreshTokenRepository.
type memoryRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]entity.RefreshToken
}

func newMemoryRefreshTokenRepo() *memoryRefreshTokenRepo {
	return &memoryRefreshTokenRepo{tokens: make(map[string]entity.RefreshToken)}
}

func (r *memoryRefreshTokenRepo) Save(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Token] = *token

	return nil
}

func (r *memoryRefreshTokenRepo) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.tokens[token]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return &record, nil
}

func (r *memoryRefreshTokenRepo) FindByUsername(_ context.Context, username string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []entity.RefreshToken
	for _, record := range r.tokens {
		if record.Username == username {
			owned = append(owned, record)
		}
	}
	if len(owned) == 0 {
		return nil, repository.ErrRefreshTokenNotFound
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ExpiryDate.After(owned[j].ExpiryDate) })

	return &owned[0], nil
}

func (r *memoryRefreshTokenRepo) DeleteByUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, record := range r.tokens {
		if record.Username == username {
			delete(r.tokens, token)
		}
	}

	return nil
}

func (r *memoryRefreshTokenRepo) Delete(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token.Token)

	return nil
}

func (r *memoryRefreshTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for token, record := range r.tokens {
		if record.IsExpired(now) {
			delete(r.tokens, token)
			removed++
		}
	}

	return removed, nil
}

func (r *memoryRefreshTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tokens)
}

// memoryUserRepo is an in-memory UserRepository keyed by email.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]entity.User)}
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[email]

	return ok, nil
}

func (r *memoryUserRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Phone == phone {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.Email] = *user

	return nil
}

// memoryTxManager runs the callback directly against the shared user repo.
type memoryTxManager struct {
	userRepo repository.UserRepository
	calls    int
}

func (tm *memoryTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.calls++

	return fn(&memoryRepoFactory{userRepo: tm.userRepo})
}

type memoryRepoFactory struct {
	userRepo repository.UserRepository
}

func (f *memoryRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}
