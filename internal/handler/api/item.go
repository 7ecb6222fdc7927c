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

type ItemHandler struct {
	itemUseCase    usecase.ItemUseCase
	commentUseCase usecase.CommentUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase, commentUseCase usecase.CommentUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase:    itemUseCase,
		commentUseCase: commentUseCase,
	}
}

// @Summary Create item
// @Description Share a new item, optionally answering an item request
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	view, err := h.itemUseCase.CreateItem(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, usecase.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item request not found")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid item data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partially update an owned item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	view, err := h.itemUseCase.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item not found")
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err,
				httperr.CodeForbidden, "Only the owner may edit an item")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid item data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Item with comments; booking neighbors visible to the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.itemUseCase.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Description All items shared by the acting user, with comments and booking neighbors
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.itemUseCase.ListOwnerItems(c.Request.Context(), ownerID)
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

	c.JSON(http.StatusOK, resdto.FromItemDetailViews(views))
}

// @Summary Search items
// @Description Case-insensitive substring search over available items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	views, err := h.itemUseCase.SearchItems(c.Request.Context(), c.Query("text"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Delete item
// @Tags items
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.itemUseCase.DeleteItem(c.Request.Context(), itemID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeInternal, "Internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add comment
// @Description Comment on an item after a finished approved booking
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	view, err := h.commentUseCase.AddComment(c.Request.Context(), authorID, itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "User not found")
		case errors.Is(err, usecase.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				httperr.CodeNotFound, "Item not found")
		case errors.Is(err, usecase.ErrNoFinishedBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Commenting requires a finished booking of the item")
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeBadRequest, "Invalid comment data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				httperr.CodeInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
