package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// HeaderUserID is set by the gateway after it has authenticated the caller.
const HeaderUserID = "X-User-ID"

const ctxUserIDKey = "user_id"

var errMissingIdentity = errs.New("missing or invalid " + HeaderUserID + " header")

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderUserID))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

// GetUserID returns the caller identity stored by RequireUser.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
