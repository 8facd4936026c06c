package postgres

import (
	"context"
	"testing"

	"bankauth/internal/domain/repository"
	"bankauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, newUser("alice@example.com", "+15550001"))
	})
	require.NoError(t, err)

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newUser("alice@example.com", "+15550001")); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, newUser("alice@example.com", "+15550001"))
			panic("unexpected")
		})
	})

	exists, err := NewUserRepository(db).ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
