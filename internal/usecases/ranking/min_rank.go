package ranking

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MinRank classifica os valores em ordem decrescente.
// Valores iguais recebem a menor posição do grupo e a próxima posição salta o tamanho
// do empate: [100, 100, 80] -> [1, 1, 3]. O resultado segue a ordem de entrada.
func MinRank(values []decimal.Decimal) []int {
	ranks := make([]int, len(values))
	if len(values) == 0 {
		return ranks
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]].GreaterThan(values[order[j]])
	})

	position := 1
	for i, idx := range order {
		if i > 0 && !values[idx].Equal(values[order[i-1]]) {
			position = i + 1
		}
		ranks[idx] = position
	}

	return ranks
}
