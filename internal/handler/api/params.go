package api

import (
	"net/http"
	"strconv"

	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.New("path id must be a positive integer")

// int64Param aborts with 400 and returns false when the path segment is not a positive id.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
