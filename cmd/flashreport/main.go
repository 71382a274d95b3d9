// Comando flashreport gera o relatório de caixas direto no terminal ou em arquivo
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/cashier-flash-report/infrastructure/database/sqldb"
	"github.com/vfg2006/cashier-flash-report/infrastructure/repository"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/report"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
	"github.com/vfg2006/cashier-flash-report/pkg/utils"
)

type options struct {
	filters domain.FlashReportFilters
	format  report.Format
	level   domain.AnalyticsLevel
}

func main() {
	flags := pflag.NewFlagSet("flashreport", pflag.ExitOnError)
	flags.String("db-connection", "", "String de conexão completa com o banco de vendas")
	flags.String("db-driver", "", "Driver do banco: postgres, mysql ou sqlserver (padrão DATABASE_DRIVER)")
	dateRange := flags.String("date-range", "", "Período no formato 'YYYY-MM-DD to YYYY-MM-DD'")
	cashier := flags.String("cashier", "", "Filtra pelo UserName do caixa")
	flags.String("output", string(report.FormatConsole), "Formato de saída: console, csv ou json")
	flags.String("analytics-level", string(domain.AnalyticsLevelFull), "Nível de análise: basic ou full")
	flags.String("file-path", "", "Arquivo de saída para csv ou json")
	flags.String("log-level", "", "Nível de log (padrão LOG_LEVEL)")
	_ = flags.Parse(os.Args[1:])

	if err := config.BindFlags(flags); err != nil {
		exit("Error: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		exit("Error: %v", err)
	}
	log.Setup(cfg.App.LogLevel, os.Stderr)

	opts, err := parseOptions(*dateRange, *cashier, cfg.Report)
	if err != nil {
		exit("Error: %v", err)
	}

	fmt.Printf("Initiating report with %s analytics...\n", opts.level)

	if err := run(context.Background(), cfg, opts); err != nil {
		if errors.Is(err, repository.ErrDatabase) {
			exit("Database Error: %v", err)
		}
		exit("An unexpected error occurred: %v", err)
	}
}

func parseOptions(dateRange, cashier string, cfg config.Report) (options, error) {
	start, end, err := utils.ParseDateRange(dateRange)
	if err != nil {
		return options{}, err
	}

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return options{}, err
	}

	level, err := domain.ParseAnalyticsLevel(cfg.AnalyticsLevel)
	if err != nil {
		return options{}, err
	}

	return options{
		filters: domain.FlashReportFilters{
			StartDate: start,
			EndDate:   end,
			Cashier:   strings.TrimSpace(cashier),
		},
		format: format,
		level:  level,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(fmt.Errorf("%w: %w", repository.ErrDatabase, err), "falha ao conectar")
	}
	defer conn.Close()

	service := reporting.NewService(repository.NewCashierSalesRepository(conn, cfg.Database))

	flash, err := service.GenerateFlashReport(ctx, opts.filters, opts.level)
	if err != nil {
		return errors.Wrap(err, "falha ao gerar o relatório")
	}

	if !opts.format.IsFile() {
		return report.RenderConsole(os.Stdout, flash.Rows, flash.Summary, report.ConsoleOptions{
			RowLimit: cfg.Report.ConsoleRowLimit,
		})
	}

	path, err := report.ExportFile(cfg.Report.FilePath, opts.format, flash)
	if err != nil {
		return errors.Wrap(err, "falha ao exportar o relatório")
	}

	fmt.Printf("Report exported to %s: %s\n", strings.ToUpper(string(opts.format)), path)
	logrus.WithField("path", path).Debug("Relatório exportado")

	return nil
}

func exit(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
