package response

import (
	"strconv"

	"voucher-seckill/internal/usecase/queries"
)

// Ids are strings so JavaScript clients keep all 64 bits.
type SeckillResponse struct {
	OrderID string `json:"orderId"`
}

func NewSeckillResponse(orderID int64) *SeckillResponse {
	return &SeckillResponse{OrderID: strconv.FormatInt(orderID, 10)}
}

type OrderResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	VoucherID string `json:"voucherId"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:        strconv.FormatInt(v.ID, 10),
		UserID:    strconv.FormatInt(v.UserID, 10),
		VoucherID: strconv.FormatInt(v.VoucherID, 10),
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
	}
}
