// Package analyzing transforma a tabela agregada de vendas em indicadores do flash report.
// Não faz log nem I/O: erros sobem para quem chamou.
package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	// MarginAnomalyThreshold marca margens abaixo de 20% como anômalas
	MarginAnomalyThreshold = decimal.NewFromInt(20)
)

// Enrich devolve as mesmas linhas, na mesma ordem, com os campos derivados.
// No nível "full" as reduções da tabela (posições, média de margem e crescimento) são
// calculadas antes do mapeamento linha a linha.
func Enrich(records []domain.SalesRecord, level domain.AnalyticsLevel) ([]domain.EnrichedRecord, error) {
	if level != domain.AnalyticsLevelBasic && level != domain.AnalyticsLevelFull {
		return nil, domain.ErrInvalidAnalyticsLevel
	}

	if err := validate(records); err != nil {
		return nil, err
	}

	enriched := make([]domain.EnrichedRecord, len(records))
	if len(records) == 0 {
		return enriched, nil
	}

	var stats tableStats
	if level == domain.AnalyticsLevelFull {
		stats = computeTableStats(records)
	}

	for i, record := range records {
		enriched[i] = enrichRow(record)
		if level == domain.AnalyticsLevelFull {
			enriched[i].TrendMetrics = trendRow(i, record, stats)
		}
	}

	return enriched, nil
}

// validate garante os campos usados no agrupamento e na ordenação cronológica
func validate(records []domain.SalesRecord) error {
	for i, record := range records {
		if record.UserName == "" {
			return &domain.MissingFieldError{Row: i, Field: "user_name"}
		}
		if record.InvoiceDate.IsZero() {
			return &domain.MissingFieldError{Row: i, Field: "invoice_date"}
		}
	}
	return nil
}

func enrichRow(record domain.SalesRecord) domain.EnrichedRecord {
	trans := decimal.NewFromInt(record.Trans)

	return domain.EnrichedRecord{
		SalesRecord:      record,
		GrossProfit:      record.SalesVI.Sub(record.Cost),
		ATV:              ratio(record.SalesVI, trans),
		NetSales:         record.SalesVI.Sub(record.SalesVat),
		EffectiveVatRate: percentOf(record.SalesVat, record.SalesVI),
	}
}

func trendRow(i int, record domain.SalesRecord, stats tableStats) *domain.TrendMetrics {
	trans := decimal.NewFromInt(record.Trans)

	// Com trans > 0, (cost/trans) / (salesVI/trans) = cost/salesVI
	costToATV := decimal.NullDecimal{}
	if !trans.IsZero() {
		costToATV = percentOf(record.Cost, record.SalesVI)
	}

	return &domain.TrendMetrics{
		SalesGrowth:     stats.salesGrowth[i],
		SalesRank:       stats.salesRanks[i],
		MarginRank:      stats.marginRanks[i],
		MarginAnomaly:   record.MarginPercent.LessThan(MarginAnomalyThreshold),
		AvgCostPerTrans: ratio(record.Cost, trans),
		CostToATVRatio:  costToATV,
		MarginSkew:      record.MarginPercent.Sub(stats.marginMean),
	}
}

// ratio devolve numerator/denominator, indefinido quando o denominador é zero
func ratio(numerator, denominator decimal.Decimal) decimal.NullDecimal {
	if denominator.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(numerator.Div(denominator))
}

func percentOf(numerator, denominator decimal.Decimal) decimal.NullDecimal {
	value := ratio(numerator, denominator)
	if !value.Valid {
		return value
	}
	return decimal.NewNullDecimal(value.Decimal.Mul(hundred))
}
