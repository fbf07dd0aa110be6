package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sugarart/commerce-sync-api/internal/config"
	"github.com/sugarart/commerce-sync-api/internal/usecases/relaying"
)

// MailboxPollService agenda os ciclos do relay da caixa de entrada.
type MailboxPollService struct {
	scheduler *gocron.Scheduler
	relay     relaying.Service
	cron      string
	enabled   bool

	pollRunning         bool
	pollMutex           sync.Mutex
	lastPollStartedAt   time.Time
	lastPollCompletedAt time.Time
	lastReport          *relaying.Report
	lastError           string
}

func NewMailboxPollService(relay relaying.Service, cfg *config.Config) *MailboxPollService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.Mailbox.CronSchedule,
		"poll_enabled":  cfg.Mailbox.Enabled,
	}).Info("Configuração do agendador da caixa de entrada carregada")

	return &MailboxPollService{
		scheduler: gocron.NewScheduler(time.Local),
		relay:     relay,
		cron:      cfg.Mailbox.CronSchedule,
		enabled:   cfg.Mailbox.Enabled,
	}
}

// Start inicia o agendador
func (s *MailboxPollService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Monitoramento da caixa de entrada desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.cron).Info("Iniciando agendador da caixa de entrada")

	_, err := s.scheduler.Cron(s.cron).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro no ciclo agendado da caixa de entrada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o ciclo da caixa de entrada: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da caixa de entrada")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa um ciclo da caixa de entrada de forma síncrona.
func (s *MailboxPollService) RunNow(ctx context.Context) (*relaying.Report, error) {
	s.pollMutex.Lock()
	if s.pollRunning {
		s.pollMutex.Unlock()
		logrus.Info("Ciclo da caixa de entrada já em andamento, ignorando")
		return nil, ErrSyncAlreadyRunning
	}
	s.pollRunning = true
	s.lastPollStartedAt = time.Now()
	s.pollMutex.Unlock()

	defer func() {
		s.pollMutex.Lock()
		s.pollRunning = false
		s.lastPollCompletedAt = time.Now()
		s.pollMutex.Unlock()
	}()

	report, err := s.relay.ProcessInbox(ctx)

	s.pollMutex.Lock()
	s.lastReport = report
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.pollMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Ciclo da caixa de entrada falhou")
		return nil, err
	}

	return report, nil
}

// GetStatus retorna o status atual do agendador
func (s *MailboxPollService) GetStatus() map[string]any {
	s.pollMutex.Lock()
	defer s.pollMutex.Unlock()

	status := map[string]any{
		"poll_enabled":           s.enabled,
		"poll_cron":              s.cron,
		"poll_running":           s.pollRunning,
		"last_poll_started_at":   s.lastPollStartedAt,
		"last_poll_completed_at": s.lastPollCompletedAt,
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
