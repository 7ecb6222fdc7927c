package api

import (
	"net/http"
	"strconv"

	"shareit/internal/gateway/client"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// relay writes the business tier's status and body unchanged.
func relay(c *gin.Context, resp *client.Response) {
	if len(resp.Body) == 0 {
		c.Status(resp.Status)
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}

func forwardFailure(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadGateway, err,
		httperr.CodeInternal, "Business tier is unreachable")
}

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

// parsePagination validates from/size at the edge so bad values never reach
// the business tier.
func parsePagination(c *gin.Context, defaultFrom, defaultSize int32) (int32, int32, bool) {
	from, ok := parseInt32Query(c, "from", defaultFrom)
	if !ok {
		return 0, 0, false
	}
	size, ok := parseInt32Query(c, "size", defaultSize)
	if !ok {
		return 0, 0, false
	}
	if from < 0 || size < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Newf("invalid pagination: from=%d size=%d", from, size),
			httperr.CodeBadRequest, "Invalid pagination parameters")
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
