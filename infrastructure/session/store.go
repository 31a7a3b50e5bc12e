package session

import (
	"context"
	"errors"

	"github.com/insitemarketing/metryka-api/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ErrNotFound é devolvido quando a sessão não existe ou já expirou
var ErrNotFound = errors.New("session not found")

// Store guarda as sessões indexadas pelo ID que vai no cookie
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Set(ctx context.Context, sess *domain.Session) error
	Destroy(ctx context.Context, id string) error
}

// Sweeper é implementado pelos stores que precisam de limpeza periódica
type Sweeper interface {
	Sweep(ctx context.Context) int
}
