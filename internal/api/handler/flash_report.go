package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/report"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/apiErrors"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

// GetFlashReport devolve o relatório enriquecido com o resumo
func GetFlashReport(service reporting.FlashReporter, defaultLevel domain.AnalyticsLevel) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flash, ok := generate(w, r, service, defaultLevel)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, flash)
	})
}

// ExportFlashReport devolve o relatório como anexo csv ou json
func ExportFlashReport(service reporting.FlashReporter, defaultLevel domain.AnalyticsLevel) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format, err := report.ParseFormat(r.URL.Query().Get("format"))
		if err != nil || !format.IsFile() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidExportFormat, "Formato inválido. Valores aceitos: csv, json", nil)
			return
		}

		flash, ok := generate(w, r, service, defaultLevel)
		if !ok {
			return
		}

		// Gera em memória para não enviar cabeçalhos de anexo com o corpo pela metade
		body := &bytes.Buffer{}
		if err := report.Write(body, format, flash); err != nil {
			writeServiceError(w, r, err)
			return
		}

		fileName := fmt.Sprintf("cashier_report_%s_%s.%s", time.Now().Format("20060102"), flash.ReportID, format)
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body.Bytes())
	})
}

func generate(w http.ResponseWriter, r *http.Request, service reporting.FlashReporter, defaultLevel domain.AnalyticsLevel) (*domain.FlashReport, bool) {
	logger := log.ForContext(r.Context())

	filters, err := parseFilters(r)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}

	level, err := parseLevel(r, defaultLevel)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}

	logger.WithFields(log.Fields{
		"cashier":         filters.Cashier,
		"analytics_level": level,
	}).Info("flash-report: gerando relatório")

	flash, err := service.GenerateFlashReport(r.Context(), filters, level)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}

	return flash, true
}
