package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/database/postgres"
	"github.com/insitemarketing/metryka-api/infrastructure/database/redis"
	"github.com/insitemarketing/metryka-api/infrastructure/filestore"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google/googleclient"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/meta"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/metaclient"
	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/api"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/scheduler"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/internal/usecases/funnel"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/sirupsen/logrus"
)

// storage agrupa os repositórios escolhidos por STORAGE_DRIVER
type storage struct {
	clinics       repository.ClinicRepository
	refreshTokens repository.RefreshTokenRepository
	analyses      repository.AnalysisRepository // nil fora do postgres
	close         func()
}

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStorage(ctx, cfg)
	defer store.close()

	sessionStore, sweeper := newSessionStore(ctx, cfg)

	googleIntegrator := google.New(googleclient.NewClient(cfg))

	renderClient := config.NewRenderClient(cfg)
	tokenManager := metaclient.NewTokenManager(cfg, renderClient)
	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg, tokenManager))

	authenticator := authenticating.NewService(
		authenticating.NewGoogleOAuthConfig(cfg.Google),
		sessionStore,
		store.refreshTokens,
		googleIntegrator,
	)

	clinicService := clinic.NewService(store.clinics)
	insightService := insighting.NewService(googleIntegrator, metaIntegrator, clinicService)

	var funnelService funnel.FunnelService
	if store.analyses != nil {
		funnelService = funnel.NewService(store.analyses, clinicService)
	}

	maintenanceService := scheduler.NewMaintenanceService(sweeper, tokenManager, cfg)
	if err := maintenanceService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de manutenção")
	} else {
		logrus.Info("Agendador de manutenção iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		SessionStore:   sessionStore,
		CookieCodec:    session.NewCookieCodec(cfg.Session.Secret),
		Authenticator:  authenticator,
		ClinicService:  clinicService,
		InsightService: insightService,
		FunnelService:  funnelService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func newStorage(ctx context.Context, cfg *config.Config) *storage {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		conn := pgconn(ctx, cfg.Database)

		if cfg.Database.MigrateOnStart {
			if err := postgres.RunMigrations(conn.DB); err != nil {
				logrus.WithError(err).Fatal("Erro ao aplicar migrações")
			}
		}

		return &storage{
			clinics:       repository.NewClinicRepository(conn),
			refreshTokens: repository.NewRefreshTokenRepository(conn),
			analyses:      repository.NewAnalysisRepository(conn),
			close:         func() { _ = conn.Close() },
		}
	case config.StorageFile:
		logrus.WithFields(logrus.Fields{
			"clinic_file":        cfg.Storage.ClinicFile,
			"refresh_token_file": cfg.Storage.RefreshTokenFile,
		}).Info("Usando armazenamento em arquivo. Rotas de análise desabilitadas")

		return &storage{
			clinics:       filestore.NewClinicStore(cfg.Storage.ClinicFile),
			refreshTokens: filestore.NewRefreshTokenLog(cfg.Storage.RefreshTokenFile),
			close:         func() {},
		}
	default:
		logrus.WithField("storage_driver", cfg.Storage.Driver).Fatal("STORAGE_DRIVER desconhecido")
		return nil
	}
}

// newSessionStore devolve o store e, quando ele precisa de limpeza periódica,
// o Sweeper correspondente
func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, session.Sweeper) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		return session.NewRedisStore(client), nil
	case config.SessionStoreMemory:
		store := session.NewMemoryStore()
		return store, store
	default:
		logrus.WithField("session_store", cfg.Session.Store).Fatal("SESSION_STORE desconhecido")
		return nil, nil
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
