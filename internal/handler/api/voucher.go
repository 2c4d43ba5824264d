package api

import (
	"net/http"

	reqdto "voucher-seckill/internal/handler/dto/request"
	resdto "voucher-seckill/internal/handler/dto/response"
	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds commands.VoucherCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q}
}

// @Summary Add seckill voucher
// @Description Create a voucher with its flash-sale stock and window, then open the sale for admission.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param request body reqdto.AddSeckillVoucherRequest true "Seckill voucher"
// @Success 201 {object} resdto.VoucherCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response "persisted but not yet open; preload retries on restart"
// @Router /api/vouchers/seckill [post]
func (h *VoucherHandler) AddSeckillVoucher(c *gin.Context) {
	var req reqdto.AddSeckillVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.AddSeckillVoucher(c.Request.Context(), req.ToCommand())
	if err != nil {
		if id > 0 && errs.Is(err, errs.ErrStoreUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Voucher saved but sale not opened", resdto.NewVoucherCreatedResponse(id))
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewVoucherCreatedResponse(id))
}

// @Summary Reload seckill sale
// @Description Put a sale back into the snapshot store from its durable row. A live sale is not overwritten.
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.SaleReloadResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/vouchers/seckill/{id}/reload [post]
func (h *VoucherHandler) ReloadSale(c *gin.Context) {
	voucherID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	loaded, err := h.cmds.ReloadSale(c.Request.Context(), voucherID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SaleReloadResponse{Loaded: loaded})
}

// @Summary List shop vouchers
// @Description List a shop's vouchers; seckill vouchers carry sale fields and the live admission stock.
// @Tags vouchers
// @Produce json
// @Param shopId path string true "Shop ID"
// @Success 200 {array} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Router /api/vouchers/of/shop/{shopId} [get]
func (h *VoucherHandler) ListByShop(c *gin.Context) {
	shopID, ok := int64Param(c, "shopId")
	if !ok {
		return
	}

	views, err := h.q.ListByShop(c.Request.Context(), shopID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherViews(views))
}
