package api

import (
	"errors"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemRequestHandler struct {
	requestUseCase usecase.RequestUseCase
}

func NewItemRequestHandler(requestUseCase usecase.RequestUseCase) *ItemRequestHandler {
	return &ItemRequestHandler{requestUseCase: requestUseCase}
}

// @Summary Create item request
// @Description Post a need for an item others may share
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request payload"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	view, err := h.requestUseCase.CreateRequest(c.Request.Context(), requesterID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description Requests posted by the acting user, newest first, with answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *ItemRequestHandler) GetUserRequests(c *gin.Context) {
	requesterID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.requestUseCase.GetUserRequests(c.Request.Context(), requesterID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' item requests
// @Description Paged requests posted by everyone else, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(1000)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) GetAllRequests(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	from, size, ok := parsePagination(c, defaultListFrom, defaultListSize)
	if !ok {
		return
	}

	views, err := h.requestUseCase.GetAllRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, usecase.ErrInvalidPagination):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid pagination parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get item request
// @Description Single request with its answering items; no identity required
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *ItemRequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.requestUseCase.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, usecase.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item request not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
