package order

import (
	"time"

	"voucher-seckill/internal/pkg/errs"
)

var (
	ErrInvalidOrderID = errs.New("order id must be positive")
	ErrInvalidUserID  = errs.New("user id must be positive")
)

type Status int

const (
	StatusUnpaid   Status = 1
	StatusPaid     Status = 2
	StatusRedeemed Status = 3
	StatusCanceled Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusUnpaid:
		return "unpaid"
	case StatusPaid:
		return "paid"
	case StatusRedeemed:
		return "redeemed"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// VoucherOrder is written once per (user, voucher) and never updated by the pipeline.
type VoucherOrder struct {
	id        int64
	userID    int64
	voucherID int64
	status    Status
	createdAt time.Time
}

// NewVoucherOrder materializes an accepted queue entry. The id is the one the
// caller was handed at admission time.
func NewVoucherOrder(entry QueueEntry, now time.Time) (*VoucherOrder, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return &VoucherOrder{
		id:        entry.OrderID,
		userID:    entry.UserID,
		voucherID: entry.VoucherID,
		status:    StatusUnpaid,
		createdAt: now,
	}, nil
}

func (o *VoucherOrder) ID() int64            { return o.id }
func (o *VoucherOrder) UserID() int64        { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) Status() Status       { return o.status }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }
