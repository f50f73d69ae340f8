package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/usecases/loading"
)

// ErrRefreshInProgress é retornado quando já existe uma atualização em execução
var ErrRefreshInProgress = errors.New("atualização de vendas já em andamento")

// SalesRefreshConfig representa a configuração do agendador de atualização das vendas
type SalesRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SalesRefreshService agenda a recarga periódica do snapshot de vendas
type SalesRefreshService struct {
	scheduler *gocron.Scheduler
	config    SalesRefreshConfig
	loader    loading.SnapshotLoader
	baseCtx   context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	inFlight            sync.WaitGroup
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSalesRefreshService(loader loading.SnapshotLoader, appConfig config.SalesRefresh) *SalesRefreshService {
	refreshConfig := SalesRefreshConfig{
		CronSchedule: appConfig.CronSchedule,
		SyncEnabled:  appConfig.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de vendas carregada")

	return &SalesRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		loader:    loader,
		baseCtx:   context.Background(),
	}
}

// Start faz a carga inicial das vendas e, se habilitado, agenda as próximas.
// Uma falha na carga inicial não impede a subida: o snapshot vazio continua publicado.
func (s *SalesRefreshService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if err := s.refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
		logrus.WithError(err).Warn("Carga inicial de vendas falhou, servindo snapshot vazio")
	}

	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.refresh(ctx); errors.Is(err, ErrRefreshInProgress) {
			logrus.Info("Atualização de vendas já em andamento, ignorando")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma atualização em segundo plano
func (s *SalesRefreshService) TriggerManualSync() error {
	if !s.begin() {
		return ErrRefreshInProgress
	}

	logrus.Info("Iniciando atualização manual de vendas")
	go func() {
		_ = s.run(s.baseCtx)
	}()

	return nil
}

// Wait aguarda a atualização em andamento terminar
func (s *SalesRefreshService) Wait() {
	s.inFlight.Wait()
}

// GetStatus retorna o status atual do agendador
func (s *SalesRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"loader":                 s.loader.Status(),
	}
}

func (s *SalesRefreshService) refresh(ctx context.Context) error {
	if !s.begin() {
		return ErrRefreshInProgress
	}
	return s.run(ctx)
}

func (s *SalesRefreshService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.inFlight.Add(1)

	return true
}

func (s *SalesRefreshService) run(ctx context.Context) error {
	defer s.inFlight.Done()

	snapshot, err := s.loader.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"records":     snapshot.Len(),
	}).Info("Atualização de vendas concluída")

	return nil
}
