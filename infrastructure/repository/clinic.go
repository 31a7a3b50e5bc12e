package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/insitemarketing/metryka-api/infrastructure/database/postgres"
	"github.com/insitemarketing/metryka-api/internal/domain"
)

//go:generate mockgen -source=clinic.go -destination=mocks/mock_clinic.go -package=mocks

const clinicsTable = "clinics"

type ClinicRepository interface {
	// InsertIfAbsent grava a clínica se nenhum nome igual (sem diferenciar
	// maiúsculas) existir. inserted é falso quando já existia.
	InsertIfAbsent(ctx context.Context, clinic *domain.Clinic) (inserted bool, err error)
	// GetByName devolve nil, nil quando a clínica não existe
	GetByName(ctx context.Context, name string) (*domain.Clinic, error)
	DeleteByName(ctx context.Context, name string) (deleted bool, err error)
	List(ctx context.Context) ([]*domain.Clinic, error)
}

type clinicRepository struct {
	conn postgres.Queryer
}

func NewClinicRepository(conn postgres.Queryer) ClinicRepository {
	return &clinicRepository{
		conn: conn,
	}
}

func lowerNameEq(name string) squirrel.Sqlizer {
	return squirrel.Expr("lower(name) = lower(?)", name)
}

func (r *clinicRepository) InsertIfAbsent(ctx context.Context, clinic *domain.Clinic) (bool, error) {
	query, args, err := squirrel.
		Insert(clinicsTable).
		Columns("id", "name", "google_ads_id", "meta_ads_id", "created_at").
		Values(clinic.ID, clinic.Name, clinic.GoogleAdsID, clinic.MetaAdsID, clinic.CreatedAt).
		Suffix("ON CONFLICT ((lower(name))) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao inserir clínica: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *clinicRepository) GetByName(ctx context.Context, name string) (*domain.Clinic, error) {
	query, args, err := squirrel.
		Select("id, name, google_ads_id, meta_ads_id, created_at").
		From(clinicsTable).
		Where(lowerNameEq(name)).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	clinic, err := scanClinic(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear clínica: %w", err)
	}

	return clinic, nil
}

func (r *clinicRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	query, args, err := squirrel.
		Delete(clinicsTable).
		Where(lowerNameEq(name)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover clínica: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *clinicRepository) List(ctx context.Context) ([]*domain.Clinic, error) {
	query, args, err := squirrel.
		Select("id, name, google_ads_id, meta_ads_id, created_at").
		From(clinicsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clínicas: %w", err)
	}
	defer rows.Close()

	clinics := make([]*domain.Clinic, 0)
	for rows.Next() {
		clinic, err := scanClinic(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear clínica: %w", err)
		}
		clinics = append(clinics, clinic)
	}

	return clinics, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClinic(row scanner) (*domain.Clinic, error) {
	clinic := &domain.Clinic{}

	var googleAdsID, metaAdsID sql.NullString
	if err := row.Scan(
		&clinic.ID,
		&clinic.Name,
		&googleAdsID,
		&metaAdsID,
		&clinic.CreatedAt,
	); err != nil {
		return nil, err
	}

	if googleAdsID.Valid {
		clinic.GoogleAdsID = &googleAdsID.String
	}
	if metaAdsID.Valid {
		clinic.MetaAdsID = &metaAdsID.String
	}

	return clinic, nil
}
