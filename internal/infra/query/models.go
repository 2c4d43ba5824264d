package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TbVoucher struct {
	ID          int64
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Type        int16
	Status      int16
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type TbSeckillVoucher struct {
	VoucherID int64
	Stock     int32
	BeginTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

type TbVoucherOrder struct {
	ID        int64
	UserID    int64
	VoucherID int64
	Status    int16
	CreatedAt pgtype.Timestamptz
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// VoucherWithSale is a catalog row joined with its optional sale row.
type VoucherWithSale struct {
	TbVoucher
	Stock     pgtype.Int4
	BeginTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}
