package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

const (
	defaultListFrom = 0
	defaultListSize = 1000
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Description Book an item for a time slot; starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), bookerID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, usecase.ErrItemNotFound), errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item not found")
		case errors.Is(err, usecase.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err,
				httperr.CodeConflict, "Item is not available for booking")
		case errors.Is(err, usecase.ErrBookingOverlap):
			httperr.AbortWithError(c, http.StatusConflict, err,
				httperr.CodeConflict, "Requested slot overlaps an existing booking")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Start must be strictly before end")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Item owner resolves a WAITING booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) ResolveBooking(c *gin.Context) {
	ownerID, ok := requireUserID(c)
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

	view, err := h.bookingUseCase.ResolveBooking(c.Request.Context(), ownerID, bookingID, approved)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Booking not found")
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err,
				httperr.CodeForbidden, "Only the item owner may resolve a booking")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Only a WAITING booking can be resolved")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingUseCase.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Booking not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description Bookings made by the acting user, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(1000)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.listBookings(c, h.bookingUseCase.ListBookerBookings)
}

// @Summary List bookings for owned items
// @Description Bookings of every item the acting user shares, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(1000)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.bookingUseCase.ListOwnerBookings)
}

func (h *BookingHandler) listBookings(
	c *gin.Context,
	list func(ctx context.Context, userID int64, state string, from, size int32) ([]*readmodel.BookingView, error),
) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", string(booking.FilterAll))
	from, size, ok := parsePagination(c, defaultListFrom, defaultListSize)
	if !ok {
		return
	}

	views, err := list(c.Request.Context(), userID, state, from, size)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, booking.ErrUnknownStateFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Unknown state: "+state)
		case errors.Is(err, usecase.ErrInvalidPagination):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid pagination parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
