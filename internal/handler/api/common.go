package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Newf("malformed path parameter %s: %q", name, raw),
			httperr.CodeBadRequest, "Path id must be a positive integer")
		return 0, false
	}
	return id, true
}

// requireUserID reads the id stored by middleware.RequireUserID. Reaching a
// handler without it means the route is wired wrong.
func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("identity middleware missing on route"),
			httperr.CodeInternal, "Internal server error")
		return 0, false
	}
	return userID, true
}

// parsePagination reads from/size query values, leaving range validation to
// the usecase.
func parsePagination(c *gin.Context, defaultFrom, defaultSize int32) (int32, int32, bool) {
	from, ok := parseInt32Query(c, "from", defaultFrom)
	if !ok {
		return 0, 0, false
	}
	size, ok := parseInt32Query(c, "size", defaultSize)
	if !ok {
		return 0, 0, false
	}
	return from, size, true
}

func parseInt32Query(c *gin.Context, name string, def int32) (int32, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Newf("malformed query parameter %s: %q", name, raw),
			httperr.CodeBadRequest, "Query parameter "+name+" must be an integer")
		return 0, false
	}
	return int32(v), true
}
