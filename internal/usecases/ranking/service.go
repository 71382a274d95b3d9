package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type RankingService interface {
	GetCashierRanking(ctx context.Context, filters domain.FlashReportFilters) (*domain.CashierRankingResponse, error)
}

type CashierRankingService struct {
	CashierSalesRepository repository.CashierSalesRepository
}

func NewCashierRankingService(cashierSalesRepository repository.CashierSalesRepository) RankingService {
	return &CashierRankingService{
		CashierSalesRepository: cashierSalesRepository,
	}
}

// GetCashierRanking agrupa as vendas do período por operador e ordena pelo total vendido
func (s *CashierRankingService) GetCashierRanking(ctx context.Context, filters domain.FlashReportFilters) (*domain.CashierRankingResponse, error) {
	records, err := s.CashierSalesRepository.ListCashierSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	ranking := BuildCashierRanking(records)

	logrus.WithFields(logrus.Fields{
		"rows":     len(records),
		"cashiers": len(ranking),
	}).Debug("Ranking de operadores calculado")

	return &domain.CashierRankingResponse{
		Ranking:     ranking,
		Filters:     filters,
		GeneratedAt: time.Now(),
	}, nil
}

// BuildCashierRanking consolida as linhas por operador e atribui as posições.
// A lista volta ordenada pela posição; empates mantêm a ordem de primeira aparição.
func BuildCashierRanking(records []domain.SalesRecord) []domain.CashierRankingItem {
	items := make([]domain.CashierRankingItem, 0)
	indexByCashier := make(map[string]int)

	for _, record := range records {
		idx, exists := indexByCashier[record.UserName]
		if !exists {
			idx = len(items)
			indexByCashier[record.UserName] = idx
			items = append(items, domain.CashierRankingItem{UserName: record.UserName})
		}

		item := &items[idx]
		item.TotalSalesVI = item.TotalSalesVI.Add(record.SalesVI)
		item.TotalCost = item.TotalCost.Add(record.Cost)
		item.TotalTransactions += record.Trans
	}

	totals := make([]decimal.Decimal, len(items))
	for i := range items {
		items[i].TotalGrossProfit = items[i].TotalSalesVI.Sub(items[i].TotalCost)
		if items[i].TotalSalesVI.IsPositive() {
			items[i].MarginPercent = items[i].TotalGrossProfit.Div(items[i].TotalSalesVI).Mul(hundred)
		}
		totals[i] = items[i].TotalSalesVI
	}

	positions := MinRank(totals)
	for i := range items {
		items[i].Position = positions[i]
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	return items
}
