package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/api/handler"
	"github.com/insitemarketing/metryka-api/internal/api/handler/router"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/internal/usecases/funnel"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/insitemarketing/metryka-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Dependencies reúne o que os handlers precisam. FunnelService é opcional:
// nil deixa as rotas de análise fora do router.
type Dependencies struct {
	SessionStore   session.Store
	CookieCodec    *session.CookieCodec
	Authenticator  authenticating.Authenticator
	ClinicService  clinic.ClinicService
	InsightService insighting.CombinedInsighter
	FunnelService  funnel.FunnelService
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(deps.Authenticator, cfg)...),
		router.WithRoutes(handler.Clinics(deps.ClinicService)...),
		router.WithRoutes(handler.Insights(deps.InsightService)...),
	}

	if deps.FunnelService != nil {
		configs = append(configs, router.WithRoutes(handler.Analyses(deps.FunnelService)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.SessionMiddleware(deps.SessionStore, deps.CookieCodec, cfg.Session),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
