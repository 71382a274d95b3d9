package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashReportSummary consolida os totais de um relatório.
// Um relatório sem linhas não tem resumo (nil), para diferenciar "sem dados" de "tudo zero".
type FlashReportSummary struct {
	TotalSalesVI         decimal.Decimal `json:"total_sales_vi"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	TotalGrossProfit     decimal.Decimal `json:"total_gross_profit"`
	TotalTransactions    int64           `json:"total_transactions"`
	OverallMarginPercent decimal.Decimal `json:"overall_margin_percent"`
	OverallATV           decimal.Decimal `json:"overall_atv"`
}

type FlashReport struct {
	ReportID    string              `json:"report_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Filters     FlashReportFilters  `json:"filters"`
	Level       AnalyticsLevel      `json:"analytics_level"`
	Rows        []EnrichedRecord    `json:"rows"`
	Summary     *FlashReportSummary `json:"summary"`
}
