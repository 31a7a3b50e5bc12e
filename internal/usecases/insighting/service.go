package insighting

import (
	"context"
	"errors"

	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/meta"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidQuery envolve os erros de validação da consulta
var ErrInvalidQuery = errors.New("invalid metrics query")

// Service implementa CombinedInsighter sobre os integradores do Google e da Meta
type Service struct {
	googleService google.GoogleAdsIntegrator
	metaService   meta.MetaIntegrator
	clinicService clinic.ClinicService
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	googleService google.GoogleAdsIntegrator,
	metaService meta.MetaIntegrator,
	clinicService clinic.ClinicService,
) CombinedInsighter {
	return &Service{
		googleService: googleService,
		metaService:   metaService,
		clinicService: clinicService,
	}
}

func invalid(err error) error {
	return errors.Join(ErrInvalidQuery, err)
}

// GetGoogleTotals valida a consulta antes de chamar a API do Google
func (s *Service) GetGoogleTotals(ctx context.Context, query domain.MetricsQuery, accessToken string) (*domain.GoogleTotals, error) {
	if err := query.Validate(); err != nil {
		return nil, invalid(err)
	}

	return s.googleService.GetTotals(ctx, query, accessToken)
}

func (s *Service) GetMetaSpend(ctx context.Context, query domain.MetricsQuery) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, invalid(err)
	}

	return s.metaService.GetAccountSpend(ctx, query)
}

func (s *Service) GetMetaConversions(ctx context.Context, query domain.MetricsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, invalid(err)
	}

	return s.metaService.GetConversions(ctx, query)
}

// GetClinicMetrics busca Google e Meta em paralelo. A falha de uma fonte não
// derruba a outra: cada uma volta com o próprio status.
func (s *Service) GetClinicMetrics(ctx context.Context, clinicName, startDate, endDate, accessToken string) (*domain.ClinicMetrics, error) {
	if err := domain.ValidateRange(startDate, endDate); err != nil {
		return nil, invalid(err)
	}

	c, err := s.clinicService.GetClinic(ctx, clinicName)
	if err != nil {
		return nil, err
	}

	result := &domain.ClinicMetrics{
		ClinicName: c.Name,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.Google = s.googleMetrics(gctx, c.GoogleAdsID, startDate, endDate, accessToken)
		return nil
	})

	g.Go(func() error {
		result.Meta = s.metaMetrics(gctx, c.MetaAdsID, startDate, endDate)
		return nil
	})

	// as goroutines nunca retornam erro, o resultado de cada fonte vai no status
	_ = g.Wait()

	result.Summarize()

	log.ForContext(ctx).WithFields(log.Fields{
		"clinic_name":   c.Name,
		"google_status": result.Google.Status,
		"meta_status":   result.Meta.Status,
	}).Debug("Métricas da clínica consolidadas")

	return result, nil
}

func (s *Service) googleMetrics(ctx context.Context, accountID *string, startDate, endDate, accessToken string) domain.SourceMetrics {
	if accountID == nil {
		return domain.SourceMetrics{Status: domain.SourceNotConfigured}
	}

	source := domain.SourceMetrics{AccountID: *accountID}
	if accessToken == "" {
		source.Status = domain.SourceUnauthenticated
		return source
	}

	query := domain.MetricsQuery{AccountID: *accountID, StartDate: startDate, EndDate: endDate}
	if err := query.Validate(); err != nil {
		source.Status = domain.SourceFailed
		source.Error = err.Error()
		return source
	}

	totals, err := s.googleService.GetTotals(ctx, query, accessToken)
	if err != nil {
		source.Status = domain.SourceFailed
		source.Error = err.Error()
		return source
	}

	source.Status = domain.SourceOK
	source.Spend = totals.Cost
	source.Conversions = totals.AllConversions
	return source
}

func (s *Service) metaMetrics(ctx context.Context, accountID *string, startDate, endDate string) domain.SourceMetrics {
	if accountID == nil {
		return domain.SourceMetrics{Status: domain.SourceNotConfigured}
	}

	source := domain.SourceMetrics{AccountID: *accountID}
	query := domain.MetricsQuery{AccountID: *accountID, StartDate: startDate, EndDate: endDate}
	if err := query.Validate(); err != nil {
		source.Status = domain.SourceFailed
		source.Error = err.Error()
		return source
	}

	spend, err := s.metaService.GetAccountSpend(ctx, query)
	if err != nil {
		source.Status = domain.SourceFailed
		source.Error = err.Error()
		return source
	}

	conversions, err := s.metaService.GetConversions(ctx, query)
	if err != nil {
		source.Status = domain.SourceFailed
		source.Error = err.Error()
		return source
	}

	source.Status = domain.SourceOK
	source.Spend = spend
	source.Conversions = float64(conversions)
	return source
}
