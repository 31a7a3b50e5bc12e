package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/insitemarketing/metryka-api/infrastructure/database/postgres"
	"github.com/insitemarketing/metryka-api/internal/domain"
)

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks

const analysesTable = "analyses an"

type AnalysisRepository interface {
	// Upsert grava a análise da clínica no período, substituindo a anterior
	Upsert(ctx context.Context, analysis *domain.Analysis) (*domain.Analysis, error)
	ListByClinic(ctx context.Context, clinicID string) ([]*domain.Analysis, error)
}

type analysisRepository struct {
	conn postgres.Queryer
}

func NewAnalysisRepository(conn postgres.Queryer) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

func (r *analysisRepository) Upsert(ctx context.Context, analysis *domain.Analysis) (*domain.Analysis, error) {
	query, args, err := squirrel.
		Insert("analyses").
		Columns(
			"id", "clinic_id", "start_date", "end_date",
			"leads_marketing", "leads_crm", "scheduled", "attended", "sold",
			"meta_spend", "google_spend", "meta_cpl", "google_cpl",
			"observations", "created_at", "updated_at",
		).
		Values(
			analysis.ID, analysis.ClinicID, analysis.StartDate, analysis.EndDate,
			analysis.Funnel.LeadsMarketing, analysis.Funnel.LeadsCRM, analysis.Funnel.Scheduled, analysis.Funnel.Attended, analysis.Funnel.Sold,
			analysis.Costs.MetaSpend, analysis.Costs.GoogleSpend, analysis.Costs.MetaCPL, analysis.Costs.GoogleCPL,
			analysis.Observations, analysis.CreatedAt, analysis.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (clinic_id, start_date, end_date) DO UPDATE SET
				leads_marketing = EXCLUDED.leads_marketing,
				leads_crm = EXCLUDED.leads_crm,
				scheduled = EXCLUDED.scheduled,
				attended = EXCLUDED.attended,
				sold = EXCLUDED.sold,
				meta_spend = EXCLUDED.meta_spend,
				google_spend = EXCLUDED.google_spend,
				meta_cpl = EXCLUDED.meta_cpl,
				google_cpl = EXCLUDED.google_cpl,
				observations = EXCLUDED.observations,
				updated_at = EXCLUDED.updated_at
			RETURNING id, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	// em conflito o id e a data de criação originais são mantidos
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&analysis.ID, &analysis.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar análise: %w", err)
	}

	return analysis, nil
}

func (r *analysisRepository) ListByClinic(ctx context.Context, clinicID string) ([]*domain.Analysis, error) {
	query, args, err := squirrel.
		Select(
			"an.id, an.clinic_id, c.name, an.start_date, an.end_date",
			"an.leads_marketing, an.leads_crm, an.scheduled, an.attended, an.sold",
			"an.meta_spend, an.google_spend, an.meta_cpl, an.google_cpl",
			"an.observations, an.created_at, an.updated_at",
		).
		From(analysesTable).
		Join("clinics c ON c.id = an.clinic_id").
		Where(squirrel.Eq{"an.clinic_id": clinicID}).
		OrderBy("an.start_date DESC", "an.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar análises: %w", err)
	}
	defer rows.Close()

	analyses := make([]*domain.Analysis, 0)
	for rows.Next() {
		a := &domain.Analysis{}
		var startDate, endDate time.Time

		if err := rows.Scan(
			&a.ID, &a.ClinicID, &a.ClinicName, &startDate, &endDate,
			&a.Funnel.LeadsMarketing, &a.Funnel.LeadsCRM, &a.Funnel.Scheduled, &a.Funnel.Attended, &a.Funnel.Sold,
			&a.Costs.MetaSpend, &a.Costs.GoogleSpend, &a.Costs.MetaCPL, &a.Costs.GoogleCPL,
			&a.Observations, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear análise: %w", err)
		}

		a.StartDate = startDate.Format(time.DateOnly)
		a.EndDate = endDate.Format(time.DateOnly)
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}
