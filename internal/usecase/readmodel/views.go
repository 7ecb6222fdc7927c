// Package readmodel holds the transfer views returned by the usecase layer.
// Repositories scan rows directly into these; handlers map them to response
// DTOs.
package readmodel

import "time"

type UserView struct {
	ID    int64
	Name  string
	Email string
}

type CommentView struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorName string
	Created    time.Time
}

// BookingRef is the compact form embedded in item views (last/next booking).
type BookingRef struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

type ItemView struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ItemDetailView is an item plus its computed neighbors: comments always,
// last/next APPROVED booking only when the viewer owns the item.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []CommentView
}

type ItemRef struct {
	ID   int64
	Name string
}

type UserRef struct {
	ID   int64
	Name string
}

type BookingView struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status string
	Item   ItemRef
	Booker UserRef
}

// RequestItemView is an item offered in answer to an item-request.
type RequestItemView struct {
	ID      int64
	Name    string
	OwnerID int64
}

type RequestView struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
	Items       []RequestItemView
}
