package redisstore

import (
	"context"
	"strconv"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// AdmissionStore runs the atomic admission protocol against the live sale state.
type AdmissionStore struct {
	rdb       redis.Scripter
	hashes    redis.HashCmdable
	streamKey string
}

type AdmissionClient interface {
	redis.Scripter
	redis.HashCmdable
}

func NewAdmissionStore(rdb AdmissionClient, streamKey string) *AdmissionStore {
	return &AdmissionStore{rdb: rdb, hashes: rdb, streamKey: streamKey}
}

func (s *AdmissionStore) Admit(ctx context.Context, voucherID, userID, orderID int64, now time.Time) (order.Outcome, error) {
	keys := []string{saleKey(voucherID), orderSetKey(voucherID), s.streamKey}
	code, err := admissionScript.Run(ctx, s.rdb, keys,
		userID, orderID, voucherID, now.UnixMilli(),
	).Int64()
	if err != nil {
		return 0, errs.Wrapf(err, "admission script for voucher %d", voucherID)
	}

	return order.ParseOutcome(code)
}

// LoadSale overwrites the live sale state, resetting the stock counter.
func (s *AdmissionStore) LoadSale(ctx context.Context, sv *voucher.SeckillVoucher) error {
	_, err := s.loadSale(ctx, sv, false, nil)
	return err
}

// LoadSaleIfAbsent leaves an existing sale untouched and reports whether it wrote one.
// When it writes, buyers join the buyer set in the same script so they are
// rejected as duplicates.
func (s *AdmissionStore) LoadSaleIfAbsent(ctx context.Context, sv *voucher.SeckillVoucher, buyers []int64) (bool, error) {
	return s.loadSale(ctx, sv, true, buyers)
}

func (s *AdmissionStore) loadSale(ctx context.Context, sv *voucher.SeckillVoucher, keepExisting bool, buyers []int64) (bool, error) {
	keep := "0"
	if keepExisting {
		keep = "1"
	}
	w := sv.Window()
	args := make([]any, 0, 4+len(buyers))
	args = append(args, sv.Stock(), w.Begin().UnixMilli(), w.End().UnixMilli(), keep)
	for _, id := range buyers {
		args = append(args, id)
	}

	keys := []string{saleKey(sv.VoucherID()), orderSetKey(sv.VoucherID())}
	written, err := loadSaleScript.Run(ctx, s.rdb, keys, args...).Int64()
	if err != nil {
		return false, errs.Wrapf(err, "load sale for voucher %d", sv.VoucherID())
	}
	return written == 1, nil
}

func (s *AdmissionStore) LiveStock(ctx context.Context, voucherID int64) (int, bool, error) {
	raw, err := s.hashes.HGet(ctx, saleKey(voucherID), "stock").Result()
	if errs.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errs.Wrapf(err, "read stock for voucher %d", voucherID)
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errs.Wrapf(err, "stock for voucher %d", voucherID)
	}
	return stock, true, nil
}
