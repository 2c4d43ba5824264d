package commands

import (
	"context"
	"time"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"go.uber.org/zap"
)

type AddSeckillVoucherRequest struct {
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Stock       int
	BeginTime   time.Time
	EndTime     time.Time
}

type VoucherCommands interface {
	AddSeckillVoucher(ctx context.Context, req AddSeckillVoucherRequest) (int64, error)
	// PreloadSales loads every unfinished sale missing from the snapshot store
	// and returns how many were loaded.
	PreloadSales(ctx context.Context) (int, error)
	// ReloadSale loads one sale from its durable row when the snapshot store
	// lost it. A live sale is left untouched and reported as not loaded.
	ReloadSale(ctx context.Context, voucherID int64) (bool, error)
}

type voucherUseCaseImpl struct {
	uow       shared.UnitOfWork
	admission shared.AdmissionStore
	clock     clock.Clock
	logger    *zap.Logger
}

func NewVoucherUseCase(uow shared.UnitOfWork, admission shared.AdmissionStore, clk clock.Clock, logger *zap.Logger) VoucherCommands {
	return &voucherUseCaseImpl{
		uow:       uow,
		admission: admission,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *voucherUseCaseImpl) AddSeckillVoucher(ctx context.Context, req AddSeckillVoucherRequest) (int64, error) {
	now := uc.clock.Now()

	v, err := voucher.NewVoucher(voucher.NewVoucherParams{
		ShopID:      req.ShopID,
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Rules:       req.Rules,
		PayValue:    req.PayValue,
		ActualValue: req.ActualValue,
		Kind:        voucher.KindSeckill,
	}, now)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	window, err := voucher.NewSaleWindow(req.BeginTime, req.EndTime)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var sale *voucher.SeckillVoucher
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Vouchers().Create(ctx, tx.DB(), v)
		if derr != nil {
			return derr
		}
		v.AssignID(id)

		sv, derr := voucher.NewSeckillVoucher(v, req.Stock, window)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Vouchers().CreateSeckill(ctx, tx.DB(), sv); derr != nil {
			return derr
		}
		sale = sv
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			return 0, err
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperation)
	}

	// The durable rows are committed; PreloadSales picks the sale up later if this fails.
	if err := uc.admission.LoadSale(ctx, sale); err != nil {
		uc.logger.Error("failed to load sale into snapshot store",
			zap.Int64("voucher_id", sale.VoucherID()),
			zap.Error(err))
		return sale.VoucherID(), errs.Mark(errs.Wrap(err, "load sale"), errs.ErrStoreUnavailable)
	}

	uc.logger.Info("seckill voucher added",
		zap.Int64("voucher_id", sale.VoucherID()),
		zap.Int("stock", sale.Stock()),
		zap.Time("begin", window.Begin()),
		zap.Time("end", window.End()))
	return sale.VoucherID(), nil
}

// saleSnapshot is a durable sale plus the users who already hold an order for it.
type saleSnapshot struct {
	sale   *voucher.SeckillVoucher
	buyers []int64
}

func (uc *voucherUseCaseImpl) PreloadSales(ctx context.Context) (int, error) {
	var snapshots []saleSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sales, derr := tx.Vouchers().ListOpenSeckill(ctx, tx.DB(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		snapshots = make([]saleSnapshot, 0, len(sales))
		for _, sv := range sales {
			buyers, derr := tx.Orders().ListBuyerIDs(ctx, tx.DB(), sv.VoucherID())
			if derr != nil {
				return derr
			}
			snapshots = append(snapshots, saleSnapshot{sale: sv, buyers: buyers})
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperation)
	}

	loaded := 0
	for _, snap := range snapshots {
		ok, err := uc.admission.LoadSaleIfAbsent(ctx, snap.sale, snap.buyers)
		if err != nil {
			return loaded, errs.Mark(errs.Wrapf(err, "preload sale %d", snap.sale.VoucherID()), errs.ErrStoreUnavailable)
		}
		if ok {
			loaded++
		}
	}

	uc.logger.Info("seckill sales preloaded", zap.Int("open", len(snapshots)), zap.Int("loaded", loaded))
	return loaded, nil
}

func (uc *voucherUseCaseImpl) ReloadSale(ctx context.Context, voucherID int64) (bool, error) {
	if voucherID <= 0 {
		return false, errs.Mark(errs.New("voucher id must be positive"), errs.ErrDomainValidation)
	}

	var snap saleSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sale, derr := tx.Vouchers().FindSeckill(ctx, tx.DB(), voucherID)
		if derr != nil {
			return derr
		}
		buyers, derr := tx.Orders().ListBuyerIDs(ctx, tx.DB(), voucherID)
		if derr != nil {
			return derr
		}
		snap = saleSnapshot{sale: sale, buyers: buyers}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, errs.ErrVoucherNotFound)
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperation)
	}

	loaded, err := uc.admission.LoadSaleIfAbsent(ctx, snap.sale, snap.buyers)
	if err != nil {
		return false, errs.Mark(errs.Wrapf(err, "reload sale %d", voucherID), errs.ErrStoreUnavailable)
	}

	uc.logger.Info("seckill sale reload",
		zap.Int64("voucher_id", voucherID),
		zap.Bool("loaded", loaded),
		zap.Int("durable_stock", snap.sale.Stock()),
		zap.Int("buyers", len(snap.buyers)))
	return loaded, nil
}
