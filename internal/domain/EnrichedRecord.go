package domain

import "github.com/shopspring/decimal"

// EnrichedRecord é o SalesRecord acrescido dos indicadores derivados.
// Razões com denominador zero ficam como NullDecimal inválido (null no JSON).
type EnrichedRecord struct {
	SalesRecord
	GrossProfit      decimal.Decimal     `json:"gross_profit"`
	ATV              decimal.NullDecimal `json:"atv"`
	NetSales         decimal.Decimal     `json:"net_sales"`
	EffectiveVatRate decimal.NullDecimal `json:"effective_vat_rate"`

	// Preenchido apenas no nível de análise "full"
	*TrendMetrics
}

// TrendMetrics agrupa os indicadores que dependem da tabela inteira
type TrendMetrics struct {
	SalesGrowth     decimal.NullDecimal `json:"sales_growth"`
	SalesRank       int                 `json:"sales_rank"`
	MarginRank      int                 `json:"margin_rank"`
	MarginAnomaly   bool                `json:"margin_anomaly"`
	AvgCostPerTrans decimal.NullDecimal `json:"avg_cost_per_trans"`
	CostToATVRatio  decimal.NullDecimal `json:"cost_to_atv_ratio"`
	MarginSkew      decimal.Decimal     `json:"margin_skew"`
}

// HasTrends indica se o registro foi calculado no nível "full"
func (r EnrichedRecord) HasTrends() bool {
	return r.TrendMetrics != nil
}
