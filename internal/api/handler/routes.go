package handler

import (
	"net/http"

	"github.com/vfg2006/cashier-flash-report/internal/api/handler/router"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/overviewing"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func FlashReport(service reporting.FlashReporter, defaultLevel domain.AnalyticsLevel) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashiers/flash-report",
			Method:      http.MethodGet,
			Handler:     GetFlashReport(service, defaultLevel),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cashiers/flash-report/export",
			Method:      http.MethodGet,
			Handler:     ExportFlashReport(service, defaultLevel),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Overview(service overviewing.Overviewer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashiers/flash-report/overview",
			Method:      http.MethodGet,
			Handler:     GetFlashReportOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CashierRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashiers/ranking",
			Method:      http.MethodGet,
			Handler:     GetCashierRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			// Também atende /v1/cron/status, que devolve todas as jobs
			Path:        "/v1/cron/:type",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
