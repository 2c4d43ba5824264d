package readstore

import (
	"context"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/pkg/pgconv"
	"voucher-seckill/internal/usecase/queries"
)

type VoucherReadQueries interface {
	ListVouchersByShop(ctx context.Context, db query.DBTX, shopID int64) ([]query.VoucherWithSale, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      query.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db query.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *VoucherReadStore) ListByShop(ctx context.Context, shopID int64) ([]*queries.VoucherView, error) {
	rows, err := s.queries.ListVouchersByShop(ctx, s.db, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers by shop", err)
	}

	result := make([]*queries.VoucherView, len(rows))
	for i, row := range rows {
		result[i] = toVoucherView(row)
	}
	return result, nil
}

func toVoucherView(row query.VoucherWithSale) *queries.VoucherView {
	return &queries.VoucherView{
		ID:          row.ID,
		ShopID:      row.ShopID,
		Title:       row.Title,
		SubTitle:    row.SubTitle,
		Rules:       row.Rules,
		PayValue:    row.PayValue,
		ActualValue: row.ActualValue,
		Type:        int(row.Type),
		Status:      int(row.Status),
		Stock:       pgconv.Int32PtrFromPgtype(row.Stock),
		BeginTime:   pgconv.TimePtrFromPgtype(row.BeginTime),
		EndTime:     pgconv.TimePtrFromPgtype(row.EndTime),
	}
}
