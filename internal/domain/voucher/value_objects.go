package voucher

import (
	"time"

	"voucher-seckill/internal/pkg/errs"
)

var (
	ErrInvalidKind = errs.New("invalid voucher kind")
)

type Kind int

const (
	KindNormal  Kind = 0
	KindSeckill Kind = 1
)

func (k Kind) Valid() bool {
	return k == KindNormal || k == KindSeckill
}

type Status int

const (
	StatusOnShelf  Status = 1
	StatusOffShelf Status = 2
	StatusExpired  Status = 3
)

// SaleWindow is the closed interval [begin, end] during which admission is open.
type SaleWindow struct {
	begin time.Time
	end   time.Time
}

func NewSaleWindow(begin, end time.Time) (SaleWindow, error) {
	if !end.After(begin) {
		return SaleWindow{}, ErrInvalidWindow
	}
	return SaleWindow{begin: begin, end: end}, nil
}

func (w SaleWindow) Begin() time.Time { return w.begin }
func (w SaleWindow) End() time.Time   { return w.end }

func (w SaleWindow) Contains(t time.Time) bool {
	return !t.Before(w.begin) && !t.After(w.end)
}

func (w SaleWindow) EndedBy(t time.Time) bool {
	return t.After(w.end)
}
