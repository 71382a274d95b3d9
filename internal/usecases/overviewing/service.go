// Package overviewing monta a visão executiva do flash report a partir das mesmas
// linhas agregadas usadas no relatório detalhado.
package overviewing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/analyzing"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

// TopCashiersLimit é o número de operadores na lista de destaques
const TopCashiersLimit = 5

type Overviewer interface {
	GetOverview(ctx context.Context, filters domain.FlashReportFilters) (*domain.FlashReportOverview, error)
}

type Service struct {
	cashierSalesRepo repository.CashierSalesRepository
}

func NewService(cashierSalesRepo repository.CashierSalesRepository) Overviewer {
	return &Service{cashierSalesRepo: cashierSalesRepo}
}

func (s *Service) GetOverview(ctx context.Context, filters domain.FlashReportFilters) (*domain.FlashReportOverview, error) {
	if err := reporting.ValidateFilters(filters); err != nil {
		return nil, err
	}

	records, err := s.cashierSalesRepo.ListCashierSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	overview := BuildOverview(records)
	overview.Filters = filters
	overview.GeneratedAt = time.Now()

	log.ForContext(ctx).WithFields(log.Fields{
		"rows":     len(records),
		"cashiers": overview.CashierCount,
	}).Info("Visão executiva gerada")

	return overview, nil
}

// BuildOverview consolida as linhas sem depender de ordem de entrada: dias em ordem
// crescente, caixas e operadores pela posição de venda.
func BuildOverview(records []domain.SalesRecord) *domain.FlashReportOverview {
	cashiers := ranking.BuildCashierRanking(records)
	registers := salesByRegister(records)

	top := cashiers
	if len(top) > TopCashiersLimit {
		top = top[:TopCashiersLimit]
	}

	return &domain.FlashReportOverview{
		Summary:         analyzing.Summarize(records),
		CashierCount:    len(cashiers),
		RegisterCount:   len(registers),
		DailySales:      dailySales(records),
		SalesByRegister: registers,
		TopCashiers:     top,
	}
}

// dailySales soma as vendas por dia do calendário da data da nota
func dailySales(records []domain.SalesRecord) []domain.DailySales {
	days := make([]domain.DailySales, 0)
	indexByDay := make(map[time.Time]int)

	for _, record := range records {
		y, m, d := record.InvoiceDate.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, record.InvoiceDate.Location())

		idx, exists := indexByDay[day]
		if !exists {
			idx = len(days)
			indexByDay[day] = idx
			days = append(days, domain.DailySales{Date: day})
		}
		days[idx].SalesVI = days[idx].SalesVI.Add(record.SalesVI)
		days[idx].Trans += record.Trans
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

func salesByRegister(records []domain.SalesRecord) []domain.RegisterSales {
	registers := make([]domain.RegisterSales, 0)
	indexByRegister := make(map[string]int)

	for _, record := range records {
		idx, exists := indexByRegister[record.Register]
		if !exists {
			idx = len(registers)
			indexByRegister[record.Register] = idx
			registers = append(registers, domain.RegisterSales{Register: record.Register})
		}
		registers[idx].SalesVI = registers[idx].SalesVI.Add(record.SalesVI)
	}

	totals := make([]decimal.Decimal, len(registers))
	for i := range registers {
		totals[i] = registers[i].SalesVI
	}

	positions := ranking.MinRank(totals)
	for i := range registers {
		registers[i].Position = positions[i]
	}

	sort.SliceStable(registers, func(i, j int) bool {
		return registers[i].Position < registers[j].Position
	})

	return registers
}
