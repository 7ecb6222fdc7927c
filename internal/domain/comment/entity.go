package comment

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyText = errors.New("comment text must not be blank")

// Comment is feedback left on an item after a completed booking.
// Immutable after creation; created is server-assigned.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

func NewComment(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func ReconstructComment(id int64, text string, itemID, authorID int64, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
