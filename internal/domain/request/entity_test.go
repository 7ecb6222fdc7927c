//go:build unit

package request_test

import (
	"testing"
	"time"

	"shareit/internal/domain/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid request", func(t *testing.T) {
		r, err := request.NewItemRequest(4, "need a ladder", now)
		require.NoError(t, err)

		assert.Equal(t, int64(4), r.RequesterID())
		assert.Equal(t, "need a ladder", r.Description())
		assert.Equal(t, now, r.Created())
	})

	t.Run("trims description", func(t *testing.T) {
		r, err := request.NewItemRequest(4, "  need a ladder  ", now)
		require.NoError(t, err)

		assert.Equal(t, "need a ladder", r.Description())
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := request.NewItemRequest(4, "", now)
		require.ErrorIs(t, err, request.ErrEmptyDescription)
	})

	t.Run("whitespace only description", func(t *testing.T) {
		_, err := request.NewItemRequest(4, "   ", now)
		require.ErrorIs(t, err, request.ErrEmptyDescription)
	})
}
