//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	requestID := int64(3)

	cases := []struct {
		name        string
		itemName    string
		description string
		requestID   *int64
		errIs       error
	}{
		{name: "valid item", itemName: "drill", description: "cordless drill"},
		{name: "valid item answering a request", itemName: "drill", description: "cordless drill", requestID: &requestID},
		{name: "empty name", itemName: "", description: "cordless drill", errIs: item.ErrEmptyName},
		{name: "whitespace only name", itemName: "  ", description: "cordless drill", errIs: item.ErrEmptyName},
		{name: "empty description", itemName: "drill", description: "", errIs: item.ErrEmptyDescription},
		{name: "whitespace only description", itemName: "drill", description: " \t ", errIs: item.ErrEmptyDescription},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			i, err := item.NewItem(1, c.itemName, c.description, true, c.requestID)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, i)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, i)
			assert.Equal(t, int64(1), i.OwnerID())
			assert.True(t, i.Available())
			assert.Equal(t, c.requestID, i.RequestID())
		})
	}
}

func TestItemIsOwnedBy(t *testing.T) {
	i := item.ReconstructItem(10, "drill", "cordless drill", true, 1, nil)

	assert.True(t, i.IsOwnedBy(1))
	assert.False(t, i.IsOwnedBy(2))
}
