package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

var baseColumns = []string{
	"user_name", "invoice_date", "sales_period", "register", "sales_vat", "sales_vi", "cost",
	"trans", "margin_percent", "gross_profit", "atv", "net_sales", "effective_vat_rate",
}

var trendColumns = []string{
	"sales_growth", "sales_rank", "margin_rank", "margin_anomaly", "avg_cost_per_trans",
	"cost_to_atv_ratio", "margin_skew",
}

// WriteCSV escreve todas as linhas com as colunas derivadas. As colunas de tendência
// só aparecem quando as linhas foram calculadas no nível full; valores indefinidos
// ficam com a célula vazia.
func WriteCSV(w io.Writer, rows []domain.EnrichedRecord) error {
	withTrends := len(rows) > 0 && rows[0].HasTrends()

	header := append([]string{}, baseColumns...)
	if withTrends {
		header = append(header, trendColumns...)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.UserName,
			row.InvoiceDate.Format(time.RFC3339),
			row.SalesPeriod,
			row.Register,
			row.SalesVat.String(),
			row.SalesVI.String(),
			row.Cost.String(),
			strconv.FormatInt(row.Trans, 10),
			row.MarginPercent.String(),
			row.GrossProfit.String(),
			nullCell(row.ATV),
			row.NetSales.String(),
			nullCell(row.EffectiveVatRate),
		}

		if withTrends && row.HasTrends() {
			record = append(record,
				nullCell(row.SalesGrowth),
				strconv.Itoa(row.SalesRank),
				strconv.Itoa(row.MarginRank),
				strconv.FormatBool(row.MarginAnomaly),
				nullCell(row.AvgCostPerTrans),
				nullCell(row.CostToATVRatio),
				row.MarginSkew.String(),
			)
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func nullCell(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.String()
}
