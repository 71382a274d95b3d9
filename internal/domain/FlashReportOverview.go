package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashReportOverview é a visão executiva do período: totais, tendência diária,
// vendas por caixa e os operadores que mais venderam
type FlashReportOverview struct {
	Summary         *FlashReportSummary  `json:"summary"`
	CashierCount    int                  `json:"cashier_count"`
	RegisterCount   int                  `json:"register_count"`
	DailySales      []DailySales         `json:"daily_sales"`
	SalesByRegister []RegisterSales      `json:"sales_by_register"`
	TopCashiers     []CashierRankingItem `json:"top_cashiers"`
	Filters         FlashReportFilters   `json:"filters"`
	GeneratedAt     time.Time            `json:"generated_at"`
}

type DailySales struct {
	Date    time.Time       `json:"date"`
	SalesVI decimal.Decimal `json:"sales_vi"`
	Trans   int64           `json:"trans"`
}

type RegisterSales struct {
	Register string          `json:"register"`
	SalesVI  decimal.Decimal `json:"sales_vi"`
	Position int             `json:"position"`
}
