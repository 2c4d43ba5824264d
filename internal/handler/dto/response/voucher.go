package response

import (
	"strconv"
	"time"

	"voucher-seckill/internal/usecase/queries"
)

type VoucherCreatedResponse struct {
	ID string `json:"id"`
}

func NewVoucherCreatedResponse(id int64) *VoucherCreatedResponse {
	return &VoucherCreatedResponse{ID: strconv.FormatInt(id, 10)}
}

type SaleReloadResponse struct {
	Loaded bool `json:"loaded"`
}

type VoucherResponse struct {
	ID          string `json:"id"`
	ShopID      string `json:"shopId"`
	Title       string `json:"title"`
	SubTitle    string `json:"subTitle"`
	Rules       string `json:"rules"`
	PayValue    int64  `json:"payValue"`
	ActualValue int64  `json:"actualValue"`
	Type        int    `json:"type"`
	Status      int    `json:"status"`
	Stock       *int32 `json:"stock,omitempty"`
	LiveStock   *int   `json:"liveStock,omitempty"`
	BeginTime   *int64 `json:"beginTime,omitempty"`
	EndTime     *int64 `json:"endTime,omitempty"`
}

func FromVoucherViews(views []*queries.VoucherView) []*VoucherResponse {
	res := make([]*VoucherResponse, len(views))
	for i, v := range views {
		res[i] = &VoucherResponse{
			ID:          strconv.FormatInt(v.ID, 10),
			ShopID:      strconv.FormatInt(v.ShopID, 10),
			Title:       v.Title,
			SubTitle:    v.SubTitle,
			Rules:       v.Rules,
			PayValue:    v.PayValue,
			ActualValue: v.ActualValue,
			Type:        v.Type,
			Status:      v.Status,
			Stock:       v.Stock,
			LiveStock:   v.LiveStock,
			BeginTime:   unixPtr(v.BeginTime),
			EndTime:     unixPtr(v.EndTime),
		}
	}
	return res
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
