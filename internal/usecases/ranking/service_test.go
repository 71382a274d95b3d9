package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository/mocks"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"go.uber.org/mock/gomock"
)

func sale(user string, salesVI, cost string, trans int64) domain.SalesRecord {
	return domain.SalesRecord{
		UserName:    user,
		InvoiceDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		SalesVI:     decimal.RequireFromString(salesVI),
		Cost:        decimal.RequireFromString(cost),
		Trans:       trans,
	}
}

func TestBuildCashierRanking(t *testing.T) {
	records := []domain.SalesRecord{
		sale("ana", "100", "60", 2),
		sale("bia", "300", "200", 5),
		sale("ana", "200", "120", 3),
		sale("caio", "300", "300", 1),
		sale("duda", "0", "0", 0),
	}

	ranking := BuildCashierRanking(records)
	require.Len(t, ranking, 4)

	// ana e bia empatam em 300, mantendo a ordem de primeira aparição
	assert.Equal(t, "ana", ranking[0].UserName)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "bia", ranking[1].UserName)
	assert.Equal(t, 1, ranking[1].Position)
	assert.Equal(t, "caio", ranking[2].UserName)
	assert.Equal(t, 1, ranking[2].Position)
	assert.Equal(t, "duda", ranking[3].UserName)
	assert.Equal(t, 4, ranking[3].Position)

	assert.True(t, ranking[0].TotalSalesVI.Equal(decimal.NewFromInt(300)))
	assert.True(t, ranking[0].TotalGrossProfit.Equal(decimal.NewFromInt(120)))
	assert.True(t, ranking[0].MarginPercent.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, int64(5), ranking[0].TotalTransactions)

	assert.True(t, ranking[2].MarginPercent.IsZero())
	assert.True(t, ranking[3].MarginPercent.IsZero(), "venda zerada não divide por zero")
}

func TestBuildCashierRanking_Empty(t *testing.T) {
	assert.Empty(t, BuildCashierRanking(nil))
}

func TestGetCashierRanking(t *testing.T) {
	filters := domain.FlashReportFilters{Cashier: "ana"}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockCashierSalesRepository)
		validate func(t *testing.T, resp *domain.CashierRankingResponse, err error)
	}{
		{
			name: "Sucesso - monta o ranking a partir das vendas",
			setup: func(repo *mocks.MockCashierSalesRepository) {
				repo.EXPECT().
					ListCashierSales(gomock.Any(), filters).
					Return([]domain.SalesRecord{sale("ana", "50", "10", 1), sale("bia", "80", "20", 1)}, nil)
			},
			validate: func(t *testing.T, resp *domain.CashierRankingResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Ranking, 2)
				assert.Equal(t, "bia", resp.Ranking[0].UserName)
				assert.Equal(t, filters, resp.Filters)
				assert.False(t, resp.GeneratedAt.IsZero())
			},
		},
		{
			name: "Erro no repositório é propagado",
			setup: func(repo *mocks.MockCashierSalesRepository) {
				repo.EXPECT().
					ListCashierSales(gomock.Any(), filters).
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, resp *domain.CashierRankingResponse, err error) {
				assert.Nil(t, resp)
				assert.EqualError(t, err, "conexão recusada")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCashierSalesRepository(ctrl)
			tt.setup(repo)

			service := NewCashierRankingService(repo)
			resp, err := service.GetCashierRanking(context.Background(), filters)
			tt.validate(t, resp, err)
		})
	}
}
