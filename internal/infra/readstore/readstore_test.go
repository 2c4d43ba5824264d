//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReadQueries struct {
	mock.Mock
}

func (m *MockOrderReadQueries) GetVoucherOrder(ctx context.Context, db query.DBTX, id int64) (query.TbVoucherOrder, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.TbVoucherOrder), args.Error(1)
}

type MockVoucherReadQueries struct {
	mock.Mock
}

func (m *MockVoucherReadQueries) ListVouchersByShop(ctx context.Context, db query.DBTX, shopID int64) ([]query.VoucherWithSale, error) {
	args := m.Called(ctx, db, shopID)
	rows, _ := args.Get(0).([]query.VoucherWithSale)
	return rows, args.Error(1)
}

func TestOrderReadStore_FindByID(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mockReturn query.TbVoucherOrder
		mockError  error
		want       *queries.OrderView
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name: "success",
			mockReturn: query.TbVoucherOrder{
				ID:        9001,
				UserID:    42,
				VoucherID: 7,
				Status:    1,
				CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
			},
			want: &queries.OrderView{
				ID:        9001,
				UserID:    42,
				VoucherID: 7,
				Status:    "unpaid",
				CreatedAt: createdAt,
			},
		},
		{
			name:       "not found",
			mockReturn: query.TbVoucherOrder{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: query.TbVoucherOrder{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockOrderReadQueries)
			store := NewOrderReadStore(q, nil)
			q.On("GetVoucherOrder", mock.Anything, mock.Anything, int64(9001)).Return(tt.mockReturn, tt.mockError)

			got, err := store.FindByID(context.Background(), 9001)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("order view mismatch (-want +got):\n%s", diff)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestVoucherReadStore_ListByShop(t *testing.T) {
	begin := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(2 * time.Hour)
	stock := int32(100)

	q := new(MockVoucherReadQueries)
	store := NewVoucherReadStore(q, nil)

	q.On("ListVouchersByShop", mock.Anything, mock.Anything, int64(3)).Return([]query.VoucherWithSale{
		{
			TbVoucher: query.TbVoucher{ID: 1, ShopID: 3, Title: "plain", PayValue: 500, ActualValue: 1000, Type: 0, Status: 1},
		},
		{
			TbVoucher: query.TbVoucher{ID: 2, ShopID: 3, Title: "flash", PayValue: 8000, ActualValue: 10000, Type: 1, Status: 1},
			Stock:     pgtype.Int4{Int32: stock, Valid: true},
			BeginTime: pgtype.Timestamptz{Time: begin, Valid: true},
			EndTime:   pgtype.Timestamptz{Time: end, Valid: true},
		},
	}, nil).Once()
	q.On("ListVouchersByShop", mock.Anything, mock.Anything, int64(4)).Return(nil, assert.AnError).Once()

	got, err := store.ListByShop(context.Background(), 3)
	require.NoError(t, err)

	want := []*queries.VoucherView{
		{ID: 1, ShopID: 3, Title: "plain", PayValue: 500, ActualValue: 1000, Type: 0, Status: 1},
		{ID: 2, ShopID: 3, Title: "flash", PayValue: 8000, ActualValue: 10000, Type: 1, Status: 1,
			Stock: &stock, BeginTime: &begin, EndTime: &end},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("voucher views mismatch (-want +got):\n%s", diff)
	}

	_, err = store.ListByShop(context.Background(), 4)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	q.AssertExpectations(t)
}
