package request

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDescription = errors.New("request description must not be blank")

// ItemRequest is a user's posted need for an item others may offer to fulfill.
// Immutable after creation.
type ItemRequest struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

func NewItemRequest(requesterID int64, description string, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &ItemRequest{
		description: description,
		requesterID: requesterID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id int64, description string, requesterID int64, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requesterID: requesterID,
		created:     created,
	}
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequesterID() int64  { return r.requesterID }
func (r *ItemRequest) Created() time.Time  { return r.created }
