package handler

import (
	"net/http"

	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
)

// GetCashierRanking retorna o ranking dos operadores por venda total no período
func GetCashierRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		filters.Cashier = ""

		resp, err := service.GetCashierRanking(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
