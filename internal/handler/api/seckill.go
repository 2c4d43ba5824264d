package api

import (
	"net/http"

	resdto "voucher-seckill/internal/handler/dto/response"
	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeckillHandler struct {
	cmds commands.SeckillCommands
}

func NewSeckillHandler(cmds commands.SeckillCommands) *SeckillHandler {
	return &SeckillHandler{cmds: cmds}
}

// @Summary Seckill a voucher
// @Description Admit the caller into a flash sale. The order is persisted asynchronously; poll GET /api/voucher-orders/{id}.
// @Tags voucher-orders
// @Produce json
// @Param X-User-ID header string true "Authenticated user id"
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.SeckillResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response "SALE_CLOSED"
// @Failure 409 {object} httperr.Response "SOLD_OUT or DUPLICATE"
// @Failure 503 {object} httperr.Response
// @Router /api/voucher-orders/seckill/{id} [post]
func (h *SeckillHandler) Seckill(c *gin.Context) {
	voucherID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.Seckill(c.Request.Context(), voucherID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewSeckillResponse(result.OrderID))
}
