package api

import (
	"net/http"

	resdto "voucher-seckill/internal/handler/dto/response"
	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("caller identity missing")

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary Get voucher order
// @Description Returns the caller's order once the fulfillment worker has persisted it; 404 until then.
// @Tags voucher-orders
// @Produce json
// @Param X-User-ID header string true "Authenticated user id"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/voucher-orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
