package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		validate func(t *testing.T, summary *domain.FlashReportSummary)
	}{
		{
			name: "Totais e razões gerais",
			records: []domain.SalesRecord{
				record("ana", day(1), "1000", "600", "100", 10, "40"),
				record("bia", day(1), "500", "400", "50", 5, "20"),
			},
			validate: func(t *testing.T, summary *domain.FlashReportSummary) {
				assertDecimal(t, "1500", summary.TotalSalesVI)
				assertDecimal(t, "1000", summary.TotalCost)
				assertDecimal(t, "500", summary.TotalGrossProfit)
				assert.Equal(t, int64(15), summary.TotalTransactions)
				assertDecimal(t, "33.33", summary.OverallMarginPercent.Round(2))
				assertDecimal(t, "100", summary.OverallATV)
			},
		},
		{
			name: "Vendas e transações zeradas - razões exatamente zero",
			records: []domain.SalesRecord{
				record("ana", day(1), "0", "0", "0", 0, "0"),
				record("bia", day(2), "0", "0", "0", 0, "0"),
			},
			validate: func(t *testing.T, summary *domain.FlashReportSummary) {
				assert.True(t, summary.OverallMarginPercent.IsZero())
				assert.True(t, summary.OverallATV.IsZero())
				assert.True(t, summary.TotalGrossProfit.IsZero())
			},
		},
		{
			name: "Vendas positivas sem transações - ATV zero",
			records: []domain.SalesRecord{
				record("ana", day(1), "200", "150", "20", 0, "25"),
			},
			validate: func(t *testing.T, summary *domain.FlashReportSummary) {
				assertDecimal(t, "25", summary.OverallMarginPercent)
				assert.True(t, summary.OverallATV.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.records)
			require.NotNil(t, summary)
			tt.validate(t, summary)
		})
	}
}

func TestSummarize_EmptyReturnsNil(t *testing.T) {
	assert.Nil(t, Summarize([]domain.SalesRecord{}))
	assert.Nil(t, Summarize[domain.EnrichedRecord](nil))
}

func TestSummarize_MatchesPerRowGrossProfit(t *testing.T) {
	records := []domain.SalesRecord{
		record("ana", day(1), "1234.56", "987.65", "123.45", 7, "20.0"),
		record("bia", day(2), "0.10", "0.20", "0.01", 1, "-100"),
		record("caio", day(3), "99999.99", "0.01", "9999.99", 1000, "99.99"),
	}

	enriched, err := Enrich(records, domain.AnalyticsLevelFull)
	require.NoError(t, err)

	summary := Summarize(enriched)
	require.NotNil(t, summary)

	assert.True(t, summary.TotalGrossProfit.Equal(summary.TotalSalesVI.Sub(summary.TotalCost)))

	perRow := enriched[0].GrossProfit
	for _, row := range enriched[1:] {
		perRow = perRow.Add(row.GrossProfit)
	}
	assert.True(t, summary.TotalGrossProfit.Equal(perRow))

	assert.Equal(t, Summarize(records), summary, "linhas simples e enriquecidas produzem o mesmo resumo")
}
