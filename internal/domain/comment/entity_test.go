//go:build unit

package comment_test

import (
	"testing"
	"time"

	"shareit/internal/domain/comment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid comment", func(t *testing.T) {
		c, err := comment.NewComment(10, 4, "worked great", now)
		require.NoError(t, err)

		assert.Equal(t, int64(10), c.ItemID())
		assert.Equal(t, int64(4), c.AuthorID())
		assert.Equal(t, "worked great", c.Text())
		assert.Equal(t, now, c.Created())
	})

	t.Run("trims text", func(t *testing.T) {
		c, err := comment.NewComment(10, 4, "  worked great  ", now)
		require.NoError(t, err)

		assert.Equal(t, "worked great", c.Text())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := comment.NewComment(10, 4, "", now)
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("whitespace only text", func(t *testing.T) {
		_, err := comment.NewComment(10, 4, "  \n ", now)
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})
}
