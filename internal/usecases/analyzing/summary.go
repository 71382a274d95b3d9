package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

// Summarize reduz a tabela a um único resumo. Tabela vazia devolve nil.
// Diferente das linhas, vendas ou transações zeradas produzem 0 e não indefinido.
func Summarize[T domain.SalesRow](rows []T) *domain.FlashReportSummary {
	if len(rows) == 0 {
		return nil
	}

	summary := &domain.FlashReportSummary{}
	for _, row := range rows {
		record := row.Base()
		summary.TotalSalesVI = summary.TotalSalesVI.Add(record.SalesVI)
		summary.TotalCost = summary.TotalCost.Add(record.Cost)
		summary.TotalTransactions += record.Trans
	}

	summary.TotalGrossProfit = summary.TotalSalesVI.Sub(summary.TotalCost)

	summary.OverallMarginPercent = decimal.Zero
	if summary.TotalSalesVI.IsPositive() {
		summary.OverallMarginPercent = summary.TotalGrossProfit.Div(summary.TotalSalesVI).Mul(hundred)
	}

	summary.OverallATV = decimal.Zero
	if summary.TotalTransactions > 0 {
		summary.OverallATV = summary.TotalSalesVI.Div(decimal.NewFromInt(summary.TotalTransactions))
	}

	return summary
}
