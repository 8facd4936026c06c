package redis

import (
	"context"
	"strconv"
	"time"

	"bankauth/config"
	"bankauth/internal/domain/entity"
	"bankauth/internal/domain/repository"
	"bankauth/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "bankauth"

	fieldUsername = "username"
	fieldExpiry   = "expiry"

	// expiredRetention keeps expired records readable long enough for expiry
	// verification to see them and report "expired" rather than "not found".
	expiredRetention = 24 * time.Hour
)

// refreshTokenRepository stores each token as a hash under <prefix>:rt:tok:<token>.
// Two sorted sets scored by expiry (unix ms) index the tokens:
// <prefix>:rt:idx:user:<username> per owner and <prefix>:rt:idx:expiry globally.
// Record keys and index keys live under different namespaces, so no token
// string can address an index.
type refreshTokenRepository struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRefreshTokenRepository is the constructor for the Redis refresh token store.
func NewRefreshTokenRepository(client goredis.UniversalClient, cfg *config.Config) repository.RefreshTokenRepository {
	prefix := defaultKeyPrefix
	if cfg != nil && cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &refreshTokenRepository{client: client, prefix: prefix, now: time.Now}
}

func (repo *refreshTokenRepository) tokenKey(token string) string {
	return repo.prefix + ":rt:tok:" + token
}

func (repo *refreshTokenRepository) userKey(username string) string {
	return repo.prefix + ":rt:idx:user:" + username
}

func (repo *refreshTokenRepository) expiryKey() string {
	return repo.prefix + ":rt:idx:expiry"
}

// Save upserts the token record and its index entries in one MULTI/EXEC.
// The owner index expires with the owner's latest record, and global index
// entries whose records have already expired away are trimmed, so the
// indexes stay bounded even when the sweeper is disabled.
func (repo *refreshTokenRepository) Save(ctx context.Context, token *entity.RefreshToken) error {
	key := repo.tokenKey(token.Token)
	userKey := repo.userKey(token.Username)

	previousOwner, err := repo.client.HGet(ctx, key, fieldUsername).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return errors.Wrap(err, "failed to read refresh token owner")
	}

	expiryMs := token.ExpiryDate.UnixMilli()
	latestMs, err := repo.latestExpiry(ctx, userKey)
	if err != nil {
		return err
	}
	latestMs = max(latestMs, expiryMs)

	staleBefore := repo.now().Add(-expiredRetention).UnixMilli()

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		if previousOwner != "" && previousOwner != token.Username {
			pipe.ZRem(ctx, repo.userKey(previousOwner), token.Token)
		}
		pipe.HSet(ctx, key, fieldUsername, token.Username, fieldExpiry, strconv.FormatInt(expiryMs, 10))
		pipe.PExpireAt(ctx, key, token.ExpiryDate.Add(expiredRetention))
		pipe.ZAdd(ctx, userKey, goredis.Z{Score: float64(expiryMs), Member: token.Token})
		pipe.ZRemRangeByScore(ctx, userKey, "-inf", "("+strconv.FormatInt(staleBefore, 10))
		pipe.PExpireAt(ctx, userKey, time.UnixMilli(latestMs).Add(expiredRetention))
		pipe.ZAdd(ctx, repo.expiryKey(), goredis.Z{Score: float64(expiryMs), Member: token.Token})
		pipe.ZRemRangeByScore(ctx, repo.expiryKey(), "-inf", "("+strconv.FormatInt(staleBefore, 10))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to save refresh token")
	}

	return nil
}

// latestExpiry returns the highest expiry score in a user index, or 0 when empty.
func (repo *refreshTokenRepository) latestExpiry(ctx context.Context, userKey string) (int64, error) {
	latest, err := repo.client.ZRevRangeWithScores(ctx, userKey, 0, 0).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read refresh token index")
	}
	if len(latest) == 0 {
		return 0, nil
	}

	return int64(latest[0].Score), nil
}

// FindByToken loads the record stored under token. Expiry is not checked here.
func (repo *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	values, err := repo.client.HGetAll(ctx, repo.tokenKey(token)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load refresh token")
	}
	if len(values) == 0 {
		return nil, repository.ErrRefreshTokenNotFound
	}

	expiryMs, err := strconv.ParseInt(values[fieldExpiry], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt expiry for refresh token")
	}

	return &entity.RefreshToken{
		Token:      token,
		Username:   values[fieldUsername],
		ExpiryDate: time.UnixMilli(expiryMs).UTC(),
	}, nil
}

// FindByUsername returns the user's token that expires last. Index entries
// whose record is gone are skipped.
func (repo *refreshTokenRepository) FindByUsername(ctx context.Context, username string) (*entity.RefreshToken, error) {
	members, err := repo.client.ZRevRange(ctx, repo.userKey(username), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list refresh tokens by username")
	}

	for _, member := range members {
		token, err := repo.FindByToken(ctx, member)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return token, nil
	}

	return nil, repository.ErrRefreshTokenNotFound
}

// DeleteByUsername removes every token owned by username.
func (repo *refreshTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	userKey := repo.userKey(username)

	members, err := repo.client.ZRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return errors.Wrap(err, "failed to list refresh tokens by username")
	}
	if len(members) == 0 {
		return nil
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, member := range members {
			pipe.Del(ctx, repo.tokenKey(member))
			pipe.ZRem(ctx, repo.expiryKey(), member)
		}
		pipe.Del(ctx, userKey)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens by username")
	}

	return nil
}

// Delete removes a single token record and its index entries.
func (repo *refreshTokenRepository) Delete(ctx context.Context, token *entity.RefreshToken) error {
	if token == nil {
		return nil
	}

	if err := repo.deleteTokens(ctx, []string{token.Token}, time.Time{}); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteExpired removes every token whose expiry is at or before now.
func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	members, err := repo.client.ZRangeByScore(ctx, repo.expiryKey(), &goredis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired refresh tokens")
	}
	if len(members) == 0 {
		return 0, nil
	}

	if err := repo.deleteTokens(ctx, members, now); err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	return int64(len(members)), nil
}

// deleteTokens looks up each owner, then drops the records and all index entries atomically.
// A non-zero expiredAt also trims every owner index of entries expiring at or before it.
func (repo *refreshTokenRepository) deleteTokens(ctx context.Context, tokens []string, expiredAt time.Time) error {
	owners := make([]*goredis.StringCmd, len(tokens))
	_, err := repo.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, token := range tokens {
			owners[i] = pipe.HGet(ctx, repo.tokenKey(token), fieldUsername)
		}

		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return err
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, token := range tokens {
			if owner, err := owners[i].Result(); err == nil && owner != "" {
				pipe.ZRem(ctx, repo.userKey(owner), token)
				if !expiredAt.IsZero() {
					pipe.ZRemRangeByScore(ctx, repo.userKey(owner), "-inf", strconv.FormatInt(expiredAt.UnixMilli(), 10))
				}
			}
			pipe.Del(ctx, repo.tokenKey(token))
			pipe.ZRem(ctx, repo.expiryKey(), token)
		}

		return nil
	})

	return err
}
