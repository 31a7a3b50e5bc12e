package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/infrastructure/session/mocks"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
	started chan struct{}
}

func (f *fakeRefresher) RefreshToken(ctx context.Context) error {
	f.calls.Add(1)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			TokenRefreshEnabled: true,
			TokenRefreshCron:    "0 3 * * *",
		},
		Maintenance: config.Maintenance{SessionCleanupCron: "*/15 * * * *"},
	}
}

func TestMaintenanceService_SweepSessions(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	expired := domain.NewSession("expirada", time.Now().Add(-2*time.Hour), time.Hour)
	active := domain.NewSession("ativa", time.Now(), time.Hour)
	require.NoError(t, store.Set(ctx, expired))
	require.NoError(t, store.Set(ctx, active))

	service := NewMaintenanceService(store, nil, testConfig())

	assert.True(t, service.SweepSessions(ctx))
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "ativa")
	assert.NoError(t, err)
}

func TestMaintenanceService_SweepSessions_UsaOSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mocks.NewMockSweeper(ctrl)
	sweeper.EXPECT().Sweep(gomock.Any()).Return(3).Times(2)

	service := NewMaintenanceService(sweeper, nil, testConfig())

	assert.True(t, service.SweepSessions(context.Background()))
	assert.True(t, service.SweepSessions(context.Background()))
}

func TestMaintenanceService_RefreshMetaToken(t *testing.T) {
	t.Run("chama o refresher", func(t *testing.T) {
		refresher := &fakeRefresher{}
		service := NewMaintenanceService(nil, refresher, testConfig())

		assert.True(t, service.RefreshMetaToken(context.Background()))
		assert.Equal(t, int32(1), refresher.calls.Load())
	})

	t.Run("erro do refresher não interrompe o serviço", func(t *testing.T) {
		refresher := &fakeRefresher{err: errors.New("token inválido")}
		service := NewMaintenanceService(nil, refresher, testConfig())

		assert.True(t, service.RefreshMetaToken(context.Background()))
		assert.True(t, service.RefreshMetaToken(context.Background()))
		assert.Equal(t, int32(2), refresher.calls.Load())
	})

	t.Run("execução em andamento bloqueia a segunda", func(t *testing.T) {
		refresher := &fakeRefresher{
			release: make(chan struct{}),
			started: make(chan struct{}),
		}
		service := NewMaintenanceService(nil, refresher, testConfig())

		done := make(chan bool)
		go func() {
			done <- service.RefreshMetaToken(context.Background())
		}()

		<-refresher.started
		assert.False(t, service.RefreshMetaToken(context.Background()))

		close(refresher.release)
		assert.True(t, <-done)
		assert.Equal(t, int32(1), refresher.calls.Load())
	})
}

func TestMaintenanceService_Start(t *testing.T) {
	t.Run("sem jobs habilitados não inicia o agendador", func(t *testing.T) {
		cfg := testConfig()
		cfg.Meta.TokenRefreshEnabled = false

		service := NewMaintenanceService(nil, &fakeRefresher{}, cfg)
		require.NoError(t, service.Start(context.Background()))
		assert.False(t, service.scheduler.IsRunning())
	})

	t.Run("cron inválido falha", func(t *testing.T) {
		cfg := testConfig()
		cfg.Maintenance.SessionCleanupCron = "não é cron"

		service := NewMaintenanceService(session.NewMemoryStore(), nil, cfg)
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("para quando o contexto é cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		service := NewMaintenanceService(session.NewMemoryStore(), &fakeRefresher{}, testConfig())
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
		assert.Len(t, service.scheduler.Jobs(), 2)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
