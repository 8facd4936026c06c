package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Duration(3_600_000)*time.Millisecond, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, RefreshTokenStorePostgres, cfg.Auth.RefreshTokenStore)
	assert.Zero(t, cfg.Auth.CleanupInterval)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{
		AccessTokenTTL:    5 * time.Minute,
		RefreshTokenTTL:   2 * time.Hour,
		RefreshTokenStore: " Redis ",
		CleanupInterval:   time.Minute,
	}}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.Redis = &RedisConfig{Addr: "localhost:6379"}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "1M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, RefreshTokenStoreRedis, cfg.Auth.RefreshTokenStore)
	assert.Equal(t, time.Minute, cfg.Auth.CleanupInterval)
}

func TestApplyDefaults_RedisStoreRequiresAddr(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{RefreshTokenStore: RefreshTokenStoreRedis}}

	err := cfg.applyDefaults()

	assert.ErrorContains(t, err, "redis.addr is required")
}

func TestApplyDefaults_UnknownStore(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{RefreshTokenStore: "memcached"}}

	err := cfg.applyDefaults()

	assert.ErrorContains(t, err, "unknown refresh token store")
}
