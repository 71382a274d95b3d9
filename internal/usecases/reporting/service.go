package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/analyzing"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
	"github.com/vfg2006/cashier-flash-report/pkg/utils"
)

var ErrInvalidFilters = errors.New("invalid filters")

type FlashReporter interface {
	GenerateFlashReport(ctx context.Context, filters domain.FlashReportFilters, level domain.AnalyticsLevel) (*domain.FlashReport, error)
}

type Service struct {
	cashierSalesRepo repository.CashierSalesRepository
}

func NewService(cashierSalesRepo repository.CashierSalesRepository) FlashReporter {
	return &Service{
		cashierSalesRepo: cashierSalesRepo,
	}
}

// GenerateFlashReport busca as vendas agregadas, enriquece as linhas e consolida o resumo
func (s *Service) GenerateFlashReport(ctx context.Context, filters domain.FlashReportFilters, level domain.AnalyticsLevel) (*domain.FlashReport, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAnalyticsLevel(string(level)); err != nil {
		return nil, err
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id do relatório: %w", err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report_id":       reportID,
		"cashier":         filters.Cashier,
		"analytics_level": level,
	})

	records, err := s.cashierSalesRepo.ListCashierSales(ctx, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas por operador")
		return nil, err
	}

	rows, err := analyzing.Enrich(records, level)
	if err != nil {
		logger.WithError(err).Error("Erro ao enriquecer as vendas")
		return nil, err
	}

	report := &domain.FlashReport{
		ReportID:    reportID,
		GeneratedAt: time.Now(),
		Filters:     filters,
		Level:       level,
		Rows:        rows,
		Summary:     analyzing.Summarize(rows),
	}

	logger.WithField("rows", len(rows)).Info("Flash report gerado")

	return report, nil
}

// ValidateFilters recusa períodos com início depois do fim
func ValidateFilters(filters domain.FlashReportFilters) error {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("%w: data inicial %s posterior à final %s",
			ErrInvalidFilters,
			filters.StartDate.Format(time.DateOnly),
			filters.EndDate.Format(time.DateOnly),
		)
	}
	return nil
}
