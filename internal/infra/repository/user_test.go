//go:build integration

package repository_test

import (
	"context"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	t.Run("returns the persisted view", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com")
		require.NoError(t, err)

		view, err := repo.Create(ctx, u)
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, "alice", view.Name)
		assert.Equal(t, "alice@example.com", view.Email)
	})

	t.Run("duplicate email violates the unique constraint", func(t *testing.T) {
		u, err := user.NewUser("alice again", "alice@example.com")
		require.NoError(t, err)

		_, err = repo.Create(ctx, u)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_Update(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	id := dbtest.CreateTestUser(t, pool, "bob", "bob@example.com")

	t.Run("nil fields keep their stored values", func(t *testing.T) {
		name := "bobby"
		view, err := repo.Update(ctx, id, &name, nil)
		require.NoError(t, err)
		assert.Equal(t, "bobby", view.Name)
		assert.Equal(t, "bob@example.com", view.Email)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		name := "ghost"
		_, err := repo.Update(ctx, 9999, &name, nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("updating to a taken email conflicts", func(t *testing.T) {
		dbtest.CreateTestUser(t, pool, "carol", "carol@example.com")

		email := "carol@example.com"
		_, err := repo.Update(ctx, id, nil, &email)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	id := dbtest.CreateTestUser(t, pool, "alice", "alice@example.com")

	t.Run("finds an existing user", func(t *testing.T) {
		view, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "alice", view.Name)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_FindAll(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	first := dbtest.CreateTestUser(t, pool, "alice", "alice@example.com")
	second := dbtest.CreateTestUser(t, pool, "bob", "bob@example.com")

	views, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].ID)
	assert.Equal(t, second, views[1].ID)
}

func TestUserRepository_Delete(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	id := dbtest.CreateTestUser(t, pool, "alice", "alice@example.com")

	require.NoError(t, repo.Delete(ctx, id))

	_, err := repo.FindByID(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	// Deleting an absent row is a no-op.
	assert.NoError(t, repo.Delete(ctx, id))
}
