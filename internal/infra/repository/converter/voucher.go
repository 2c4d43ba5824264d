package converter

import (
	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) query.CreateVoucherParams {
	return query.CreateVoucherParams{
		ShopID:      v.ShopID(),
		Title:       v.Title(),
		SubTitle:    v.SubTitle(),
		Rules:       v.Rules(),
		PayValue:    v.PayValue(),
		ActualValue: v.ActualValue(),
		Type:        pgconv.IntToInt16(int(v.Kind())),
		Status:      pgconv.IntToInt16(int(v.Status())),
		CreatedAt:   pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func SeckillVoucherToCreateParams(sv *voucher.SeckillVoucher) query.CreateSeckillVoucherParams {
	return query.CreateSeckillVoucherParams{
		VoucherID: sv.VoucherID(),
		Stock:     pgconv.IntToInt32(sv.Stock()),
		BeginTime: pgconv.TimeToPgtype(sv.Window().Begin()),
		EndTime:   pgconv.TimeToPgtype(sv.Window().End()),
	}
}

func SeckillVoucherFromRow(row query.TbSeckillVoucher) *voucher.SeckillVoucher {
	return voucher.ReconstructSeckillVoucher(
		row.VoucherID,
		int(row.Stock),
		pgconv.TimeFromPgtype(row.BeginTime),
		pgconv.TimeFromPgtype(row.EndTime),
	)
}
