package handler

import (
	"net/http"

	"github.com/vfg2006/cashier-flash-report/internal/usecases/overviewing"
)

// GetFlashReportOverview retorna a visão executiva do período
func GetFlashReportOverview(service overviewing.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		overview, err := service.GetOverview(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	})
}
