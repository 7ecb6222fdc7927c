package middleware

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the id of the user acting on the request.
const SharerHeader = "X-Sharer-User-Id"

const userIDKey = "sharer_user_id"

// RequireUserID rejects requests lacking a parseable identity header.
// Existence of the user is checked downstream, per operation.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.New("missing identity header"),
				httperr.CodeBadRequest, "X-Sharer-User-Id header is required")
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.Newf("malformed identity header: %q", raw),
				httperr.CodeBadRequest, "X-Sharer-User-Id header must be a positive integer")
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
