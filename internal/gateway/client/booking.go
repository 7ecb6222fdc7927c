package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
)

type BookingClient struct {
	c *Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{c: c}
}

func (b *BookingClient) Create(ctx context.Context, userID int64, req reqdto.CreateBookingRequest) (*Response, error) {
	return b.c.Do(ctx, http.MethodPost, "/bookings", &userID, nil, req)
}

func (b *BookingClient) Resolve(ctx context.Context, userID, bookingID int64, approved bool) (*Response, error) {
	query := url.Values{"approved": []string{strconv.FormatBool(approved)}}
	return b.c.Do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d", bookingID), &userID, query, nil)
}

func (b *BookingClient) Get(ctx context.Context, userID, bookingID int64) (*Response, error) {
	return b.c.Do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), &userID, nil, nil)
}

func (b *BookingClient) ListBooker(ctx context.Context, userID int64, state string, from, size int32) (*Response, error) {
	return b.c.Do(ctx, http.MethodGet, "/bookings", &userID, listQuery(state, from, size), nil)
}

func (b *BookingClient) ListOwner(ctx context.Context, userID int64, state string, from, size int32) (*Response, error) {
	return b.c.Do(ctx, http.MethodGet, "/bookings/owner", &userID, listQuery(state, from, size), nil)
}

func listQuery(state string, from, size int32) url.Values {
	return url.Values{
		"state": []string{state},
		"from":  []string{strconv.FormatInt(int64(from), 10)},
		"size":  []string{strconv.FormatInt(int64(size), 10)},
	}
}
