package api

import (
	"net/http"

	"shareit/internal/gateway/client"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *client.UserClient
}

func NewUserHandler(users *client.UserClient) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	resp, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeBadRequest, "Invalid request body")
		return
	}

	resp, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.users.List(c.Request.Context())
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		forwardFailure(c, err)
		return
	}
	relay(c, resp)
}
