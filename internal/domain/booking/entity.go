package booking

import (
	"errors"
)

var (
	ErrAlreadyResolved = errors.New("only a WAITING booking can be approved or rejected")
	ErrOwnBooking      = errors.New("owner cannot book their own item")
)

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	slot     TimeRange
	status   Status
}

// NewBooking creates a booking awaiting the owner's decision.
func NewBooking(itemID, bookerID int64, slot TimeRange) *Booking {
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		slot:     slot,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID int64, slot TimeRange, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		slot:     slot,
		status:   status,
	}
}

// Resolve transitions WAITING to APPROVED or REJECTED, exactly once.
func (b *Booking) Resolve(approved bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyResolved
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Slot() TimeRange { return b.slot }
func (b *Booking) Status() Status  { return b.status }
