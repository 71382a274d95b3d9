package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/infrastructure/database/sqldb"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/api"
	"github.com/vfg2006/cashier-flash-report/internal/api/handler"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/scheduler"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/authenticating"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/overviewing"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/ranking"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

func main() {
	log.Setup(os.Getenv("LOG_LEVEL"), nil)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, nil)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	cashierSalesRepo := repository.NewCashierSalesRepository(conn, cfg.Database)

	authenticator := authenticating.NewService(cfg)
	reporter := reporting.NewService(cashierSalesRepo)
	overviewer := overviewing.NewService(cashierSalesRepo)
	rankingService := ranking.NewCashierRankingService(cashierSalesRepo)

	flashReportSyncService := scheduler.NewFlashReportSyncService(reporter, cfg)
	if err := flashReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do flash report")
	} else {
		logrus.Info("Agendador do flash report iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		overviewer,
		rankingService,
		authenticator,
		conn,
		handler.CronJobServices{
			handler.CronJobTypeFlashReport: flashReportSyncService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre a conexão com o banco de vendas e encerra o processo se falhar
func dbconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de vendas")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de vendas estabelecida com sucesso")
	return conn
}
