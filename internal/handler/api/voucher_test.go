//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"voucher-seckill/internal/handler/api"
	resdto "voucher-seckill/internal/handler/dto/response"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/queries"
	"voucher-seckill/tests/common/httptest"
	commandsmock "voucher-seckill/tests/mock/commands"
	queriesmock "voucher-seckill/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockVoucherQueries
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)

	h := api.NewVoucherHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/api/vouchers/seckill", h.AddSeckillVoucher)
	s.router.POST("/api/vouchers/seckill/:id/reload", h.ReloadSale)
	s.router.GET("/api/vouchers/of/shop/:shopId", h.ListByShop)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

var saleBegin = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func validVoucherBody() map[string]any {
	return map[string]any{
		"shopId":      1,
		"title":       "100 off 150",
		"subTitle":    "weekday only",
		"rules":       "one per user",
		"payValue":    8000,
		"actualValue": 10000,
		"stock":       100,
		"beginTime":   saleBegin.Format(time.RFC3339),
		"endTime":     saleBegin.Add(time.Hour).Format(time.RFC3339),
	}
}

func (s *VoucherHandlerTestSuite) TestAddSeckillVoucher_Created() {
	s.mockCommands.EXPECT().AddSeckillVoucher(gomock.Any(), commands.AddSeckillVoucherRequest{
		ShopID:      1,
		Title:       "100 off 150",
		SubTitle:    "weekday only",
		Rules:       "one per user",
		PayValue:    8000,
		ActualValue: 10000,
		Stock:       100,
		BeginTime:   saleBegin,
		EndTime:     saleBegin.Add(time.Hour),
	}).Return(int64(77), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill", validVoucherBody(), "")

	var resp resdto.VoucherCreatedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal("77", resp.ID)
}

func (s *VoucherHandlerTestSuite) TestAddSeckillVoucher_ZeroStockIsAllowed() {
	body := validVoucherBody()
	body["stock"] = 0
	s.mockCommands.EXPECT().AddSeckillVoucher(gomock.Any(), gomock.Any()).Return(int64(78), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill", body, "")

	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
}

func (s *VoucherHandlerTestSuite) TestAddSeckillVoucher_Validation() {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }},
		{"missing stock", func(m map[string]any) { delete(m, "stock") }},
		{"negative stock", func(m map[string]any) { m["stock"] = -1 }},
		{"zero pay value", func(m map[string]any) { m["payValue"] = 0 }},
		{"end before begin", func(m map[string]any) { m["endTime"] = saleBegin.Add(-time.Hour).Format(time.RFC3339) }},
		{"bad shop id", func(m map[string]any) { m["shopId"] = -5 }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := validVoucherBody()
			tt.mutate(body)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill", body, "")

			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}
}

func (s *VoucherHandlerTestSuite) TestAddSeckillVoucher_MalformedJSON() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill", `{"shopId":`, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}

func (s *VoucherHandlerTestSuite) TestAddSeckillVoucher_SaleNotOpened() {
	s.mockCommands.EXPECT().AddSeckillVoucher(gomock.Any(), gomock.Any()).
		Return(int64(79), errs.Mark(errors.New("redis down"), errs.ErrStoreUnavailable))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill", validVoucherBody(), "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "sale not opened")
	s.Contains(w.Body.String(), `"id":"79"`)
}

func (s *VoucherHandlerTestSuite) TestListByShop() {
	stock := int32(100)
	live := 37
	begin := saleBegin
	end := saleBegin.Add(time.Hour)
	s.mockQueries.EXPECT().ListByShop(gomock.Any(), int64(3)).Return([]*queries.VoucherView{
		{ID: 1, ShopID: 3, Title: "plain", PayValue: 100, ActualValue: 200},
		{ID: 2, ShopID: 3, Title: "flash", Type: 1, Stock: &stock, LiveStock: &live, BeginTime: &begin, EndTime: &end},
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vouchers/of/shop/3", nil, "")

	var resp []resdto.VoucherResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 2)
	s.Nil(resp[0].Stock)
	s.Nil(resp[0].BeginTime)
	s.Equal(int32(100), *resp[1].Stock)
	s.Equal(37, *resp[1].LiveStock)
	s.Equal(saleBegin.Unix(), *resp[1].BeginTime)
}

func (s *VoucherHandlerTestSuite) TestListByShop_InvalidID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vouchers/of/shop/x", nil, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid shopId")
}

func (s *VoucherHandlerTestSuite) TestReloadSale() {
	s.Run("loaded", func() {
		s.mockCommands.EXPECT().ReloadSale(gomock.Any(), int64(12)).Return(true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill/12/reload", nil, "")

		var resp resdto.SaleReloadResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Loaded)
	})

	s.Run("unknown voucher", func() {
		s.mockCommands.EXPECT().ReloadSale(gomock.Any(), int64(13)).
			Return(false, errs.Mark(errors.New("no rows"), errs.ErrVoucherNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill/13/reload", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Voucher not found")
	})

	s.Run("store unavailable", func() {
		s.mockCommands.EXPECT().ReloadSale(gomock.Any(), int64(14)).
			Return(false, errs.Mark(errors.New("redis down"), errs.ErrStoreUnavailable))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/vouchers/seckill/14/reload", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "retry later")
	})
}
