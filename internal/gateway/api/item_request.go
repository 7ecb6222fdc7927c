package api

import (
	"net/http"

	"shareit/internal/gateway/client"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ItemRequestHandler struct {
	requests *client.RequestClient
}

func NewItemRequestHandler(requests *client.RequestClient) *ItemRequestHandler {
	return &ItemRequestHandler{requests: requests}
}

func (h *ItemRequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	resp, err := h.requests.Create(c.Request.Context(), userID, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemRequestHandler) GetUserRequests(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.requests.ListOwn(c.Request.Context(), userID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemRequestHandler) GetAllRequests(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	from, size, ok := parsePagination(c, defaultListFrom, defaultListSize)
	if !ok {
		return
	}

	resp, err := h.requests.ListAll(c.Request.Context(), userID, from, size)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *ItemRequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.requests.Get(c.Request.Context(), requestID)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}
