package api

import (
	"context"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	"shareit/internal/gateway/client"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	defaultListFrom = 0
	defaultListSize = 1000
)

type BookingHandler struct {
	bookings *client.BookingClient
	clock    clock.Clock
}

func NewBookingHandler(bookings *client.BookingClient, clock clock.Clock) *BookingHandler {
	return &BookingHandler{bookings: bookings, clock: clock}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(h.clock.Now()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, err.Error())
		return
	}

	resp, err := h.bookings.Create(c.Request.Context(), userID, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *BookingHandler) ResolveBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Newf("malformed approved query: %q", c.Query("approved")),
			httperr.CodeBadRequest, "Query parameter approved must be true or false")
		return
	}

	resp, err := h.bookings.Resolve(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.bookings.Get(c.Request.Context(), userID, bookingID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.listBookings(c, h.bookings.ListBooker)
}

func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.bookings.ListOwner)
}

func (h *BookingHandler) listBookings(
	c *gin.Context,
	list func(ctx context.Context, userID int64, state string, from, size int32) (*client.Response, error),
) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", string(booking.FilterAll))
	if _, err := booking.ParseStateFilter(state); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Unknown state: "+state)
		return
	}
	from, size, ok := parsePagination(c, defaultListFrom, defaultListSize)
	if !ok {
		return
	}

	resp, err := list(c.Request.Context(), userID, state, from, size)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}
