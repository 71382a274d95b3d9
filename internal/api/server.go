package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/internal/api/handler"
	"github.com/vfg2006/cashier-flash-report/internal/api/handler/router"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/authenticating"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/overviewing"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.FlashReporter,
	overviewer overviewing.Overviewer,
	rankingService ranking.RankingService,
	authenticator authenticating.Authenticator,
	db handler.Pinger,
	cronServices handler.CronJobServices,
) (*Server, error) {
	defaultLevel, err := domain.ParseAnalyticsLevel(config.Report.AnalyticsLevel)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reporter, overviewer, rankingService, authenticator, db, cronServices, defaultLevel),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	reporter reporting.FlashReporter,
	overviewer overviewing.Overviewer,
	rankingService ranking.RankingService,
	authenticator authenticating.Authenticator,
	db handler.Pinger,
	cronServices handler.CronJobServices,
	defaultLevel domain.AnalyticsLevel,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.FlashReport(reporter, defaultLevel)...),
		router.WithRoutes(handler.Overview(overviewer)...),
		router.WithRoutes(handler.CashierRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.SecurityHeaders(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.RateLimit(config.Server.RateLimitRequests, config.Server.RateLimitWindow()),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
