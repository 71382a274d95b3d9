// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/report"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/reporting"
)

var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

// FlashReportSyncConfig representa a configuração da geração agendada do flash report
type FlashReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	Format       report.Format
	Level        domain.AnalyticsLevel
	OutputDir    string
	SyncEnabled  bool
}

// FlashReportSyncService gera e exporta o flash report dos últimos dias em horário agendado
type FlashReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              FlashReportSyncConfig
	reporter            reporting.FlashReporter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportPath      string
	lastError           string
}

func NewFlashReportSyncService(reporter reporting.FlashReporter, appConfig *config.Config) *FlashReportSyncService {
	format, err := report.ParseFormat(appConfig.FlashReportSync.Format)
	if err != nil || !format.IsFile() {
		logrus.WithField("format", appConfig.FlashReportSync.Format).Warn("Formato do flash report agendado inválido, usando csv")
		format = report.FormatCSV
	}

	level, err := domain.ParseAnalyticsLevel(appConfig.Report.AnalyticsLevel)
	if err != nil {
		level = domain.AnalyticsLevelFull
	}

	syncConfig := FlashReportSyncConfig{
		CronSchedule: appConfig.FlashReportSync.CronSchedule,
		LookbackDays: max(appConfig.FlashReportSync.LookbackDays, 1),
		Format:       format,
		Level:        level,
		OutputDir:    appConfig.Report.OutputDir,
		SyncEnabled:  appConfig.FlashReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"format":        syncConfig.Format,
		"output_dir":    syncConfig.OutputDir,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do flash report carregada")

	return &FlashReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start agenda a geração, se habilitada, e para o agendador quando ctx for cancelado
func (s *FlashReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração agendada do flash report desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do flash report")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro na geração agendada do flash report")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o flash report: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do flash report")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce gera o relatório do período configurado e grava o arquivo.
// Apenas uma execução por vez; concorrentes recebem ErrSyncAlreadyRunning.
func (s *FlashReportSyncService) RunOnce(ctx context.Context) (string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return "", ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	path, err := s.generate(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		return "", err
	}
	s.lastError = ""
	s.lastReportPath = path
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"duration": s.lastSyncCompletedAt.Sub(startTime).String(),
		"path":     path,
	}).Info("Flash report agendado concluído")

	return path, nil
}

func (s *FlashReportSyncService) generate(ctx context.Context) (string, error) {
	start, end := s.period()
	filters := domain.FlashReportFilters{StartDate: &start, EndDate: &end}

	logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	}).Info("Gerando flash report agendado")

	flash, err := s.reporter.GenerateFlashReport(ctx, filters, s.config.Level)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("cashier_report_%s_%s.%s", end.Format("20060102"), flash.ReportID, s.config.Format)
	return report.ExportFile(filepath.Join(s.config.OutputDir, fileName), s.config.Format, flash)
}

// period cobre os últimos LookbackDays dias completos, terminando ontem
func (s *FlashReportSyncService) period() (time.Time, time.Time) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return start, end
}

// TriggerManualSync dispara uma geração em segundo plano. Falso se já houver uma em andamento.
func (s *FlashReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		logrus.Info("Flash report já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual do flash report")
	go func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro na geração manual do flash report")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *FlashReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_format":            s.config.Format,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_path":       s.lastReportPath,
		"last_error":             s.lastError,
	}
}
