package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
)

// tableStats guarda as reduções feitas sobre a tabela inteira, indexadas pela posição da linha
type tableStats struct {
	salesRanks  []int
	marginRanks []int
	marginMean  decimal.Decimal
	salesGrowth []decimal.NullDecimal
}

func computeTableStats(records []domain.SalesRecord) tableStats {
	sales := make([]decimal.Decimal, len(records))
	margins := make([]decimal.Decimal, len(records))
	for i, record := range records {
		sales[i] = record.SalesVI
		margins[i] = record.MarginPercent
	}

	return tableStats{
		salesRanks:  ranking.MinRank(sales),
		marginRanks: ranking.MinRank(margins),
		marginMean:  mean(margins),
		salesGrowth: salesGrowthByRow(records),
	}
}

func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, values...).Div(decimal.NewFromInt(int64(len(values))))
}

// salesGrowthByRow calcula a variação percentual de SalesVI em relação à linha anterior
// do mesmo operador, em ordem cronológica. A primeira linha de cada operador, e as que
// sucedem uma venda zero, ficam indefinidas.
func salesGrowthByRow(records []domain.SalesRecord) []decimal.NullDecimal {
	growth := make([]decimal.NullDecimal, len(records))

	rowsByCashier := make(map[string][]int)
	for i, record := range records {
		rowsByCashier[record.UserName] = append(rowsByCashier[record.UserName], i)
	}

	for _, rows := range rowsByCashier {
		// A ordenação é só interna: a saída mantém a ordem original das linhas
		sort.SliceStable(rows, func(i, j int) bool {
			return records[rows[i]].InvoiceDate.Before(records[rows[j]].InvoiceDate)
		})

		for k := 1; k < len(rows); k++ {
			previous := records[rows[k-1]].SalesVI
			current := records[rows[k]].SalesVI
			growth[rows[k]] = percentOf(current.Sub(previous), previous)
		}
	}

	return growth
}
