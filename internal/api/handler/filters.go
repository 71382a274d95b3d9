package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/pkg/utils"
)

// parseFilters lê start_date, end_date (YYYY-MM-DD) e cashier da query string
func parseFilters(r *http.Request) (domain.FlashReportFilters, error) {
	query := r.URL.Query()

	start, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.FlashReportFilters{}, fmt.Errorf("%w: start_date %q", utils.ErrInvalidDateRange, query.Get("start_date"))
	}

	end, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.FlashReportFilters{}, fmt.Errorf("%w: end_date %q", utils.ErrInvalidDateRange, query.Get("end_date"))
	}

	return domain.FlashReportFilters{
		StartDate: start,
		EndDate:   end,
		Cashier:   query.Get("cashier"),
	}, nil
}

// parseLevel usa o nível padrão quando o parâmetro level não é informado
func parseLevel(r *http.Request, defaultLevel domain.AnalyticsLevel) (domain.AnalyticsLevel, error) {
	value := r.URL.Query().Get("level")
	if value == "" {
		return defaultLevel, nil
	}
	return domain.ParseAnalyticsLevel(value)
}
