package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/apiErrors"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
	"github.com/vfg2006/cashier-flash-report/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos serviços de relatório para a resposta da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var missing *domain.MissingFieldError
	switch {
	case errors.Is(err, reporting.ErrInvalidFilters), errors.Is(err, utils.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidAnalyticsLevel):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAnalyticsLevel, err.Error(), nil)
	case errors.As(err, &missing):
		logger.Warn("Vendas com campo obrigatório ausente")
		apiErrors.WriteError(w, apiErrors.ErrIncompleteSalesData, "Dados de vendas incompletos", map[string]any{
			"row":   missing.Row,
			"field": missing.Field,
		})
	case errors.Is(err, repository.ErrDatabase):
		logger.Error("Erro ao consultar o banco de vendas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar as vendas", nil)
	default:
		logger.Error("Erro inesperado ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
