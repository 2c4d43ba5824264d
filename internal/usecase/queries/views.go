package queries

import "time"

// Read models (DTO for read side)
type OrderView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VoucherID int64     `json:"voucher_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type VoucherView struct {
	ID          int64      `json:"id"`
	ShopID      int64      `json:"shop_id"`
	Title       string     `json:"title"`
	SubTitle    string     `json:"sub_title"`
	Rules       string     `json:"rules"`
	PayValue    int64      `json:"pay_value"`
	ActualValue int64      `json:"actual_value"`
	Type        int        `json:"type"`
	Status      int        `json:"status"`
	Stock       *int32     `json:"stock,omitempty"`
	BeginTime   *time.Time `json:"begin_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	// LiveStock is the admission counter; nil when the sale is not loaded.
	LiveStock *int `json:"live_stock,omitempty"`
}
