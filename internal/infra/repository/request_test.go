//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestRequestRepository_Create(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewRequestRepository(pool)
	ctx := context.Background()

	requesterID := dbtest.CreateTestUser(t, pool, "requester", "requester@example.com")

	req, err := request.NewItemRequest(requesterID, "need a ladder", requestNow)
	require.NoError(t, err)

	view, err := repo.Create(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "need a ladder", view.Description)
	assert.Equal(t, requesterID, view.RequesterID)
	assert.True(t, view.Created.Equal(requestNow))
}

func TestRequestRepository_FindByRequester(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewRequestRepository(pool)
	ctx := context.Background()

	requesterID := dbtest.CreateTestUser(t, pool, "requester", "requester@example.com")
	otherID := dbtest.CreateTestUser(t, pool, "other", "other@example.com")

	older := dbtest.CreateTestRequest(t, pool, requesterID, "need a ladder", requestNow.Add(-time.Hour))
	newer := dbtest.CreateTestRequest(t, pool, requesterID, "need a drill", requestNow)
	dbtest.CreateTestRequest(t, pool, otherID, "need a saw", requestNow)

	views, err := repo.FindByRequester(ctx, requesterID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer, views[0].ID)
	assert.Equal(t, older, views[1].ID)
}

func TestRequestRepository_FindAllExcluding(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewRequestRepository(pool)
	ctx := context.Background()

	requesterID := dbtest.CreateTestUser(t, pool, "requester", "requester@example.com")
	otherID := dbtest.CreateTestUser(t, pool, "other", "other@example.com")

	dbtest.CreateTestRequest(t, pool, requesterID, "own request", requestNow)
	older := dbtest.CreateTestRequest(t, pool, otherID, "need a saw", requestNow.Add(-2*time.Hour))
	newer := dbtest.CreateTestRequest(t, pool, otherID, "need a drill", requestNow.Add(-time.Hour))

	t.Run("excludes the caller's own requests, newest first", func(t *testing.T) {
		views, err := repo.FindAllExcluding(ctx, requesterID, 100, 0)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, newer, views[0].ID)
		assert.Equal(t, older, views[1].ID)
	})

	t.Run("limit and offset page the listing", func(t *testing.T) {
		views, err := repo.FindAllExcluding(ctx, requesterID, 1, 1)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, older, views[0].ID)
	})
}

func TestRequestRepository_FindByID(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewRequestRepository(pool)
	ctx := context.Background()

	requesterID := dbtest.CreateTestUser(t, pool, "requester", "requester@example.com")
	id := dbtest.CreateTestRequest(t, pool, requesterID, "need a ladder", requestNow)

	t.Run("finds an existing request", func(t *testing.T) {
		view, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "need a ladder", view.Description)
	})

	t.Run("missing request reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
