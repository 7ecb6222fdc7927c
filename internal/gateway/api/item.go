package api

import (
	"net/http"
	"strings"

	"shareit/internal/gateway/client"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	items *client.ItemClient
}

func NewItemHandler(items *client.ItemClient) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	resp, err := h.items.Create(c.Request.Context(), userID, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

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

	resp, err := h.items.Update(c.Request.Context(), userID, itemID, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.items.Get(c.Request.Context(), userID, itemID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.items.ListOwner(c.Request.Context(), userID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

// SearchItems answers blank queries locally; nothing matches an empty needle.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	text := c.Query("text")
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusOK, []any{})
		return
	}

	resp, err := h.items.Search(c.Request.Context(), userID, text)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.items.Delete(c.Request.Context(), itemID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := requireUserID(c)
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

	resp, err := h.items.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}
