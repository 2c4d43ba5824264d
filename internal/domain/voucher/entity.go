package voucher

import (
	"strings"
	"time"

	"voucher-seckill/internal/pkg/errs"
)

var (
	ErrInvalidTitle    = errs.New("voucher title is required")
	ErrInvalidValue    = errs.New("voucher values must be positive")
	ErrInvalidStock    = errs.New("seckill stock must not be negative")
	ErrInvalidWindow   = errs.New("sale end must be after sale begin")
	ErrInvalidShop     = errs.New("shop id must be positive")
	ErrNotSeckillTyped = errs.New("voucher is not a seckill voucher")
)

// Voucher is a catalog entry. Values are in cents.
type Voucher struct {
	id          int64
	shopID      int64
	title       string
	subTitle    string
	rules       string
	payValue    int64
	actualValue int64
	kind        Kind
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

type NewVoucherParams struct {
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Kind        Kind
}

func NewVoucher(p NewVoucherParams, now time.Time) (*Voucher, error) {
	if p.ShopID <= 0 {
		return nil, ErrInvalidShop
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if p.PayValue <= 0 || p.ActualValue <= 0 {
		return nil, ErrInvalidValue
	}
	if !p.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	return &Voucher{
		shopID:      p.ShopID,
		title:       title,
		subTitle:    strings.TrimSpace(p.SubTitle),
		rules:       strings.TrimSpace(p.Rules),
		payValue:    p.PayValue,
		actualValue: p.ActualValue,
		kind:        p.Kind,
		status:      StatusOnShelf,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructVoucher(id, shopID int64, title, subTitle, rules string, payValue, actualValue int64, kind Kind, status Status, createdAt, updatedAt time.Time) *Voucher {
	return &Voucher{
		id:          id,
		shopID:      shopID,
		title:       title,
		subTitle:    subTitle,
		rules:       rules,
		payValue:    payValue,
		actualValue: actualValue,
		kind:        kind,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Voucher) ID() int64            { return v.id }
func (v *Voucher) ShopID() int64        { return v.shopID }
func (v *Voucher) Title() string        { return v.title }
func (v *Voucher) SubTitle() string     { return v.subTitle }
func (v *Voucher) Rules() string        { return v.rules }
func (v *Voucher) PayValue() int64      { return v.payValue }
func (v *Voucher) ActualValue() int64   { return v.actualValue }
func (v *Voucher) Kind() Kind           { return v.kind }
func (v *Voucher) Status() Status       { return v.status }
func (v *Voucher) CreatedAt() time.Time { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time { return v.updatedAt }

// AssignID is called once the catalog row has been inserted.
func (v *Voucher) AssignID(id int64) { v.id = id }

// SeckillVoucher is the sale extension of a Voucher. Stock here is the durable
// column; the live counter is owned by the snapshot store.
type SeckillVoucher struct {
	voucherID int64
	stock     int
	window    SaleWindow
}

func NewSeckillVoucher(v *Voucher, stock int, window SaleWindow) (*SeckillVoucher, error) {
	if v.Kind() != KindSeckill {
		return nil, ErrNotSeckillTyped
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	return &SeckillVoucher{
		voucherID: v.ID(),
		stock:     stock,
		window:    window,
	}, nil
}

func ReconstructSeckillVoucher(voucherID int64, stock int, begin, end time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		voucherID: voucherID,
		stock:     stock,
		window:    SaleWindow{begin: begin, end: end},
	}
}

func (s *SeckillVoucher) VoucherID() int64   { return s.voucherID }
func (s *SeckillVoucher) Stock() int         { return s.stock }
func (s *SeckillVoucher) Window() SaleWindow { return s.window }
