package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
)

// ErrSyncAlreadyRunning sinaliza que uma execução da mesma entidade ainda
// está em andamento. Ticks e disparos manuais concorrentes são ignorados.
var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

// EntitySyncConfig representa a configuração do agendador de uma entidade
type EntitySyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// EntitySyncService agenda e executa a sincronização periódica de uma
// entidade. Um serviço por entidade; todos compartilham o mesmo formato de
// status e o mesmo controle de concorrência.
type EntitySyncService struct {
	scheduler *gocron.Scheduler
	config    EntitySyncConfig
	engine    *reconciling.Engine
	entity    string

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.SyncSummary
	lastError           string
}

// NewEntitySyncService cria o serviço de sincronização de uma entidade
func NewEntitySyncService(entity string, engine *reconciling.Engine, config EntitySyncConfig) *EntitySyncService {
	logrus.WithFields(logrus.Fields{
		"entity":        entity,
		"cron_schedule": config.CronSchedule,
		"sync_enabled":  config.Enabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &EntitySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    config,
		engine:    engine,
		entity:    entity,
	}
}

// Start inicia o agendador
func (s *EntitySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.WithField("entity", s.entity).Info("Sincronização desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"entity": s.entity,
		"cron":   s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).WithField("entity", s.entity).
				Error("Erro na sincronização agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de %s: %w", s.entity, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("entity", s.entity).Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma sincronização de forma síncrona e devolve o resumo.
// Usado tanto pelo tick do cron quanto pelo disparo manual via HTTP.
func (s *EntitySyncService) RunNow(ctx context.Context) (*domain.SyncSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("entity", s.entity).Info("Sincronização já em andamento, ignorando")
		return nil, ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.WithField("entity", s.entity).Info("Iniciando sincronização")

	summary, err := s.engine.Run(ctx)

	s.syncMutex.Lock()
	s.lastSummary = summary
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("entity", s.entity).Error("Sincronização falhou")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"entity":      s.entity,
		"received":    summary.Received,
		"transformed": summary.Transformed,
		"written":     summary.Written,
		"skipped":     summary.Skipped,
		"duration":    summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Sincronização concluída")

	return summary, nil
}

// GetStatus retorna o status atual do agendador
func (s *EntitySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"entity":                 s.entity,
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"engine_state":           string(s.engine.State()),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_summary"] = s.lastSummary
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
