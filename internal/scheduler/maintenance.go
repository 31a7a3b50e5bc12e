package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/sirupsen/logrus"
)

// TokenRefresher renova a chave de leitura da Meta
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
}

// MaintenanceConfig representa a configuração das rotinas de manutenção
type MaintenanceConfig struct {
	SessionCleanupCron  string
	TokenRefreshCron    string
	TokenRefreshEnabled bool
}

// jobGuard impede que duas execuções do mesmo job se sobreponham
type jobGuard struct {
	mu      sync.Mutex
	running bool
}

func (g *jobGuard) tryStart() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return false
	}
	g.running = true
	return true
}

func (g *jobGuard) done() {
	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
}

// MaintenanceService agenda a limpeza de sessões e a renovação do token da Meta
type MaintenanceService struct {
	scheduler      *gocron.Scheduler
	config         MaintenanceConfig
	sweeper        session.Sweeper
	tokenRefresher TokenRefresher
	sweepGuard     jobGuard
	refreshGuard   jobGuard
	timeout        time.Duration
}

// NewMaintenanceService cria o serviço. sweeper nil desliga a limpeza, que só
// faz sentido para o store em memória.
func NewMaintenanceService(sweeper session.Sweeper, tokenRefresher TokenRefresher, appConfig *config.Config) *MaintenanceService {
	maintenanceConfig := MaintenanceConfig{
		SessionCleanupCron:  appConfig.Maintenance.SessionCleanupCron,
		TokenRefreshCron:    appConfig.Meta.TokenRefreshCron,
		TokenRefreshEnabled: appConfig.Meta.TokenRefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"session_cleanup_cron":  maintenanceConfig.SessionCleanupCron,
		"session_cleanup":       sweeper != nil,
		"token_refresh_cron":    maintenanceConfig.TokenRefreshCron,
		"token_refresh_enabled": maintenanceConfig.TokenRefreshEnabled,
	}).Info("Configuração das rotinas de manutenção carregada")

	return &MaintenanceService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         maintenanceConfig,
		sweeper:        sweeper,
		tokenRefresher: tokenRefresher,
		timeout:        time.Minute,
	}
}

// Start agenda os jobs habilitados e para o agendador quando o contexto acaba
func (s *MaintenanceService) Start(ctx context.Context) error {
	jobs := 0

	if s.sweeper != nil {
		if _, err := s.scheduler.Cron(s.config.SessionCleanupCron).Do(func() {
			s.SweepSessions(ctx)
		}); err != nil {
			return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
		}
		jobs++
	}

	if s.config.TokenRefreshEnabled && s.tokenRefresher != nil {
		if _, err := s.scheduler.Cron(s.config.TokenRefreshCron).Do(func() {
			s.RefreshMetaToken(ctx)
		}); err != nil {
			return fmt.Errorf("erro ao agendar renovação do token da Meta: %w", err)
		}
		jobs++
	}

	if jobs == 0 {
		logrus.Info("Nenhuma rotina de manutenção habilitada")
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de manutenção")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepSessions remove as sessões expiradas. Devolve falso se outra execução
// já estava em andamento.
func (s *MaintenanceService) SweepSessions(ctx context.Context) bool {
	if !s.sweepGuard.tryStart() {
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return false
	}
	defer s.sweepGuard.done()

	removed := s.sweeper.Sweep(ctx)
	logrus.WithField("session_removed", removed).Debug("Limpeza de sessões concluída")

	return true
}

// RefreshMetaToken renova o token da Meta. Devolve falso se outra execução
// já estava em andamento.
func (s *MaintenanceService) RefreshMetaToken(ctx context.Context) bool {
	if !s.refreshGuard.tryStart() {
		logrus.Info("Renovação do token da Meta já em andamento, ignorando")
		return false
	}
	defer s.refreshGuard.done()

	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()
	if err := s.tokenRefresher.RefreshToken(refreshCtx); err != nil {
		entry := logrus.WithError(err)
		if errors.Is(err, context.Canceled) {
			entry.Warn("Renovação do token da Meta cancelada")
		} else {
			entry.Error("Erro ao renovar token da Meta")
		}
		return true
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Renovação do token da Meta concluída")
	return true
}
