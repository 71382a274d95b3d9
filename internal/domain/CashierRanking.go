package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashierRankingResponse struct {
	Ranking     []CashierRankingItem `json:"ranking"`
	Filters     FlashReportFilters   `json:"filters"`
	GeneratedAt time.Time            `json:"generated_at"`
}

type CashierRankingItem struct {
	UserName          string          `json:"user_name"`
	TotalSalesVI      decimal.Decimal `json:"total_sales_vi"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalGrossProfit  decimal.Decimal `json:"total_gross_profit"`
	TotalTransactions int64           `json:"total_transactions"`
	MarginPercent     decimal.Decimal `json:"margin_percent"`
	Position          int             `json:"position"` // Empates dividem a melhor posição
}
