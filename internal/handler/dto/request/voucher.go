package request

import (
	"time"

	"voucher-seckill/internal/usecase/commands"
)

// Monetary values are in cents.
type AddSeckillVoucherRequest struct {
	ShopID      int64     `json:"shopId" binding:"required,gt=0"`
	Title       string    `json:"title" binding:"required,max=255"`
	SubTitle    string    `json:"subTitle" binding:"max=255"`
	Rules       string    `json:"rules" binding:"max=1024"`
	PayValue    int64     `json:"payValue" binding:"required,gt=0"`
	ActualValue int64     `json:"actualValue" binding:"required,gt=0"`
	Stock       *int      `json:"stock" binding:"required,gte=0"`
	BeginTime   time.Time `json:"beginTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required,gtfield=BeginTime"`
}

func (r *AddSeckillVoucherRequest) ToCommand() commands.AddSeckillVoucherRequest {
	stock := 0
	if r.Stock != nil {
		stock = *r.Stock
	}
	return commands.AddSeckillVoucherRequest{
		ShopID:      r.ShopID,
		Title:       r.Title,
		SubTitle:    r.SubTitle,
		Rules:       r.Rules,
		PayValue:    r.PayValue,
		ActualValue: r.ActualValue,
		Stock:       stock,
		BeginTime:   r.BeginTime,
		EndTime:     r.EndTime,
	}
}
