package request

import (
	"errors"
	"time"
)

var (
	ErrStartInPast      = errors.New("start must not be in the past")
	ErrEndNotAfterStart = errors.New("end must be after start")
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate rejects slots that already started or never span any time.
func (r CreateBookingRequest) Validate(now time.Time) error {
	if r.Start.Before(now) {
		return ErrStartInPast
	}
	if !r.End.After(r.Start) {
		return ErrEndNotAfterStart
	}
	return nil
}
