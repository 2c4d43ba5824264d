package httperr

import (
	"net/http"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RejectionDetail names the admission outcome that refused the request.
type RejectionDetail struct {
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the shared sentinels to a status; anything
// unrecognised is a 500.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSaleClosed):
		AbortWithError(c, http.StatusForbidden, err, "Sale is not open", RejectionDetail{Reason: order.Reason(err)})
	case errs.Is(err, errs.ErrAdmissionRejected):
		AbortWithError(c, http.StatusConflict, err, "Seckill rejected", RejectionDetail{Reason: order.Reason(err)})
	case errs.Is(err, errs.ErrStoreUnavailable):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, retry later", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	case errs.Is(err, errs.ErrOrderNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, errs.ErrVoucherNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
