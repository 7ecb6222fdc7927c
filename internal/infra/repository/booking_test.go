//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/infra/repository"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/dbtest"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeRange {
	t.Helper()
	slot, err := booking.NewTimeRange(start, end)
	require.NoError(t, err)
	return slot
}

// seedBookingFixtures returns (ownerID, bookerID, itemID).
func seedBookingFixtures(t *testing.T, pool *pgxpool.Pool) (int64, int64, int64) {
	t.Helper()
	ownerID := dbtest.CreateTestUser(t, pool, "owner", "owner@example.com")
	bookerID := dbtest.CreateTestUser(t, pool, "booker", "booker@example.com")
	itemID := dbtest.CreateTestItem(t, pool, ownerID, "drill", "cordless drill", true, nil)
	return ownerID, bookerID, itemID
}

func TestBookingRepository_Create(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)
	start := bookingNow.Add(24 * time.Hour)
	end := bookingNow.Add(48 * time.Hour)

	t.Run("inserts inside a transaction", func(t *testing.T) {
		b := booking.NewBooking(itemID, bookerID, mustSlot(t, start, end))

		id, err := shared.RunInTx(ctx, pool, func(tx db.DBTX) (int64, error) {
			return repo.Create(ctx, tx, b)
		})
		require.NoError(t, err)
		assert.NotZero(t, id)

		view, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting.String(), view.Status)
		assert.True(t, view.Start.Equal(start))
		assert.True(t, view.End.Equal(end))
	})

	t.Run("overlapping slot trips the exclusion constraint", func(t *testing.T) {
		b := booking.NewBooking(itemID, bookerID, mustSlot(t, start.Add(time.Hour), end.Add(time.Hour)))

		_, err := shared.RunInTx(ctx, pool, func(tx db.DBTX) (int64, error) {
			return repo.Create(ctx, tx, b)
		})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("adjacent slot is accepted", func(t *testing.T) {
		b := booking.NewBooking(itemID, bookerID, mustSlot(t, end, end.Add(24*time.Hour)))

		id, err := shared.RunInTx(ctx, pool, func(tx db.DBTX) (int64, error) {
			return repo.Create(ctx, tx, b)
		})
		require.NoError(t, err)
		assert.NotZero(t, id)
	})
}

func TestBookingRepository_ExistsOverlapping(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)
	start := bookingNow.Add(24 * time.Hour)
	end := bookingNow.Add(48 * time.Hour)
	dbtest.CreateTestBooking(t, pool, itemID, bookerID, start, end, "REJECTED")

	t.Run("intersecting slot overlaps regardless of status", func(t *testing.T) {
		exists, err := repo.ExistsOverlapping(ctx, pool, itemID, start.Add(time.Hour), end.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("adjacent slot does not overlap", func(t *testing.T) {
		exists, err := repo.ExistsOverlapping(ctx, pool, itemID, end, end.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("other items never overlap", func(t *testing.T) {
		ownerID := dbtest.CreateTestUser(t, pool, "other", "other@example.com")
		otherItem := dbtest.CreateTestItem(t, pool, ownerID, "saw", "hand saw", true, nil)

		exists, err := repo.ExistsOverlapping(ctx, pool, otherItem, start, end)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestBookingRepository_FindByID(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)
	id := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(24*time.Hour), bookingNow.Add(48*time.Hour), "WAITING")

	t.Run("joins item and booker names", func(t *testing.T) {
		view, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "drill", view.Item.Name)
		assert.Equal(t, "booker", view.Booker.Name)
		assert.Equal(t, bookerID, view.Booker.ID)
	})

	t.Run("missing booking reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_FindItemOwner(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	ownerID, bookerID, itemID := seedBookingFixtures(t, pool)
	id := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(24*time.Hour), bookingNow.Add(48*time.Hour), "WAITING")

	got, err := repo.FindItemOwner(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)

	_, err = repo.FindItemOwner(ctx, 9999)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)
	id := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(24*time.Hour), bookingNow.Add(48*time.Hour), "WAITING")

	t.Run("persists the new status and returns the full view", func(t *testing.T) {
		view, err := repo.UpdateStatus(ctx, id, booking.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", view.Status)
		assert.Equal(t, "drill", view.Item.Name)
	})

	t.Run("missing booking reports not found", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, 9999, booking.StatusApproved)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_StateFilters(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	ownerID, bookerID, itemID := seedBookingFixtures(t, pool)

	// Non-overlapping slots around bookingNow, one per state of interest.
	past := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(-72*time.Hour), bookingNow.Add(-48*time.Hour), "APPROVED")
	current := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(-time.Hour), bookingNow.Add(time.Hour), "APPROVED")
	future := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(24*time.Hour), bookingNow.Add(48*time.Hour), "WAITING")
	rejected := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
		bookingNow.Add(72*time.Hour), bookingNow.Add(96*time.Hour), "REJECTED")

	cases := []struct {
		name   string
		filter booking.StateFilter
		want   []int64
	}{
		{name: "ALL returns everything newest start first", filter: booking.FilterAll, want: []int64{rejected, future, current, past}},
		{name: "CURRENT spans now", filter: booking.FilterCurrent, want: []int64{current}},
		{name: "PAST ended before now", filter: booking.FilterPast, want: []int64{past}},
		{name: "FUTURE starts after now", filter: booking.FilterFuture, want: []int64{rejected, future}},
		{name: "WAITING is pending and upcoming", filter: booking.FilterWaiting, want: []int64{future}},
		{name: "REJECTED by status alone", filter: booking.FilterRejected, want: []int64{rejected}},
	}

	for _, tc := range cases {
		t.Run("booker "+tc.name, func(t *testing.T) {
			views, err := repo.FindByBooker(ctx, bookerID, tc.filter, bookingNow, 100, 0)
			require.NoError(t, err)
			ids := make([]int64, 0, len(views))
			for _, v := range views {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}

	t.Run("owner scope sees bookings of owned items", func(t *testing.T) {
		views, err := repo.FindByOwner(ctx, ownerID, booking.FilterAll, bookingNow, 100, 0)
		require.NoError(t, err)
		assert.Len(t, views, 4)
	})

	t.Run("owner scope is empty for the booker", func(t *testing.T) {
		views, err := repo.FindByOwner(ctx, bookerID, booking.FilterAll, bookingNow, 100, 0)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("limit and offset page the listing", func(t *testing.T) {
		views, err := repo.FindByBooker(ctx, bookerID, booking.FilterAll, bookingNow, 2, 1)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, future, views[0].ID)
		assert.Equal(t, current, views[1].ID)
	})
}

func TestBookingRepository_NeighborLookups(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)

	t.Run("no bookings yields nil without error", func(t *testing.T) {
		last, err := repo.FindLastForItem(ctx, itemID, bookingNow)
		require.NoError(t, err)
		assert.Nil(t, last)

		next, err := repo.FindNextForItem(ctx, itemID, bookingNow)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("only APPROVED bookings qualify", func(t *testing.T) {
		lastID := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
			bookingNow.Add(-48*time.Hour), bookingNow.Add(-24*time.Hour), "APPROVED")
		dbtest.CreateTestBooking(t, pool, itemID, bookerID,
			bookingNow.Add(24*time.Hour), bookingNow.Add(48*time.Hour), "WAITING")
		nextID := dbtest.CreateTestBooking(t, pool, itemID, bookerID,
			bookingNow.Add(72*time.Hour), bookingNow.Add(96*time.Hour), "APPROVED")

		last, err := repo.FindLastForItem(ctx, itemID, bookingNow)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, lastID, last.ID)
		assert.Equal(t, bookerID, last.BookerID)

		next, err := repo.FindNextForItem(ctx, itemID, bookingNow)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, nextID, next.ID)
	})
}

func TestBookingRepository_HasFinishedApproved(t *testing.T) {
	pool := dbtest.SetupPool(t)
	require.NoError(t, dbtest.ResetDB(pool))
	repo := repository.NewBookingRepository(pool)
	ctx := context.Background()

	_, bookerID, itemID := seedBookingFixtures(t, pool)

	t.Run("false with no history", func(t *testing.T) {
		ok, err := repo.HasFinishedApproved(ctx, bookerID, itemID, bookingNow)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("an unfinished approved booking does not count", func(t *testing.T) {
		dbtest.CreateTestBooking(t, pool, itemID, bookerID,
			bookingNow.Add(-time.Hour), bookingNow.Add(time.Hour), "APPROVED")

		ok, err := repo.HasFinishedApproved(ctx, bookerID, itemID, bookingNow)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("a finished approved booking counts", func(t *testing.T) {
		dbtest.CreateTestBooking(t, pool, itemID, bookerID,
			bookingNow.Add(-48*time.Hour), bookingNow.Add(-24*time.Hour), "APPROVED")

		ok, err := repo.HasFinishedApproved(ctx, bookerID, itemID, bookingNow)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("another user's history does not count", func(t *testing.T) {
		stranger := dbtest.CreateTestUser(t, pool, "stranger", "stranger@example.com")

		ok, err := repo.HasFinishedApproved(ctx, stranger, itemID, bookingNow)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
