package loading

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/internal/metrics"
	"github.com/vfg2006/sales-charts-api/pkg/utils"
)

// Service guarda o snapshot atual num ponteiro atômico: leitores nunca veem uma lista pela metade
type Service struct {
	source   SalesSource
	recorder metrics.Recorder
	current  atomic.Pointer[domain.SalesSnapshot]
	now      func() time.Time

	statusMutex       sync.Mutex
	lastAttemptAt     time.Time
	lastSuccessAt     time.Time
	lastError         error
	consecutiveErrors int
}

type Option func(*Service)

// WithClock troca o relógio usado para datas e durações das buscas
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(source SalesSource, recorder metrics.Recorder, opts ...Option) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	s := &Service{
		source:   source,
		recorder: recorder,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(domain.EmptySnapshot())

	return s
}

func (s *Service) Current() *domain.SalesSnapshot {
	return s.current.Load()
}

func (s *Service) Refresh(ctx context.Context) (*domain.SalesSnapshot, error) {
	startTime := s.now()
	sourceName := s.source.Name()

	logger := logrus.WithField("source", sourceName)
	logger.Info("Buscando registros de vendas")

	records, err := s.source.FetchSales(ctx)
	finishedAt := s.now()
	duration := finishedAt.Sub(startTime)
	s.recorder.ObserveRefresh(sourceName, duration, err)

	if err != nil {
		s.recordFailure(startTime, err)
		logger.WithError(err).Error("Erro ao buscar registros de vendas, mantendo snapshot anterior")
		return s.Current(), fmt.Errorf("erro ao buscar vendas em %s: %w", sourceName, err)
	}

	if records == nil {
		records = []domain.SaleRecord{}
	}

	id, err := utils.GenerateID()
	if err != nil {
		s.recordFailure(startTime, err)
		return s.Current(), fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.SalesSnapshot{
		ID:        id,
		Source:    sourceName,
		FetchedAt: finishedAt,
		Records:   records,
	}
	s.current.Store(snapshot)
	s.recorder.SetSnapshotRecords(len(records))
	s.recordSuccess(startTime, finishedAt)

	logger.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"records":     len(records),
		"duration":    duration.String(),
	}).Info("Snapshot de vendas atualizado")

	return snapshot, nil
}

func (s *Service) Status() LoaderStatus {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	status := LoaderStatus{
		Source:            s.source.Name(),
		Snapshot:          s.Current().Info(),
		LastAttemptAt:     s.lastAttemptAt,
		LastSuccessAt:     s.lastSuccessAt,
		ConsecutiveErrors: s.consecutiveErrors,
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}

func (s *Service) recordFailure(at time.Time, err error) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.lastAttemptAt = at
	s.lastError = err
	s.consecutiveErrors++
}

func (s *Service) recordSuccess(attemptAt, successAt time.Time) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.lastAttemptAt = attemptAt
	s.lastSuccessAt = successAt
	s.lastError = nil
	s.consecutiveErrors = 0
}
