//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlot(t *testing.T) booking.TimeRange {
	t.Helper()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeRange(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	return slot
}

func TestNewBooking(t *testing.T) {
	slot := newSlot(t)

	b := booking.NewBooking(7, 42, slot)

	assert.Equal(t, int64(7), b.ItemID())
	assert.Equal(t, int64(42), b.BookerID())
	assert.Equal(t, slot, b.Slot())
	assert.Equal(t, booking.StatusWaiting, b.Status())
}

func TestBookingResolve(t *testing.T) {
	t.Run("approve waiting booking", func(t *testing.T) {
		b := booking.NewBooking(7, 42, newSlot(t))

		require.NoError(t, b.Resolve(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject waiting booking", func(t *testing.T) {
		b := booking.NewBooking(7, 42, newSlot(t))

		require.NoError(t, b.Resolve(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("already approved", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 7, 42, newSlot(t), booking.StatusApproved)

		err := b.Resolve(false)
		require.ErrorIs(t, err, booking.ErrAlreadyResolved)
		assert.Equal(t, booking.StatusApproved, b.Status(), "failed resolve must not change status")
	})

	t.Run("already rejected", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 7, 42, newSlot(t), booking.StatusRejected)

		require.ErrorIs(t, b.Resolve(true), booking.ErrAlreadyResolved)
	})

	t.Run("canceled booking", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 7, 42, newSlot(t), booking.StatusCanceled)

		require.ErrorIs(t, b.Resolve(true), booking.ErrAlreadyResolved)
	})
}
