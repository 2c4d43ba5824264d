package order

import "time"

// CreatedEvent is published once an order has been persisted. Ids are
// encoded as strings so JavaScript consumers keep full precision.
type CreatedEvent struct {
	OrderID   int64     `json:"orderId,string"`
	UserID    int64     `json:"userId,string"`
	VoucherID int64     `json:"voucherId,string"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCreatedEvent(o *VoucherOrder) CreatedEvent {
	return CreatedEvent{
		OrderID:   o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		CreatedAt: o.CreatedAt(),
	}
}
