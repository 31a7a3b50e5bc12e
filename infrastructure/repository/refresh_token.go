package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/insitemarketing/metryka-api/infrastructure/database/postgres"
	"github.com/insitemarketing/metryka-api/internal/domain"
)

//go:generate mockgen -source=refresh_token.go -destination=mocks/mock_refresh_token.go -package=mocks

const refreshTokensTable = "refresh_tokens"

// RefreshTokenRepository é o log de tokens concedidos. Só aceita inserções.
type RefreshTokenRepository interface {
	Append(ctx context.Context, record domain.RefreshTokenRecord) error
}

type refreshTokenRepository struct {
	conn postgres.Queryer
}

func NewRefreshTokenRepository(conn postgres.Queryer) RefreshTokenRepository {
	return &refreshTokenRepository{
		conn: conn,
	}
}

func (r *refreshTokenRepository) Append(ctx context.Context, record domain.RefreshTokenRecord) error {
	var refreshToken *string
	if record.RefreshToken != "" {
		refreshToken = &record.RefreshToken
	}

	query, args, err := squirrel.
		Insert(refreshTokensTable).
		Columns("access_token", "refresh_token", "expiry", "created_at").
		Values(record.AccessToken, refreshToken, record.Expiry, record.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar refresh token: %w", err)
	}

	return nil
}
