package funnel

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var (
	ErrInvalidAnalysis   = errors.New("invalid funnel analysis")
	ErrDatabaseOperation = errors.New("analysis storage operation error")
	ErrGenerateID        = errors.New("error generating analysis id")
)

// AnalysisInput é o formulário semanal enviado pelo painel
type AnalysisInput struct {
	ClinicName   string        `json:"clinicName"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Funnel       domain.Funnel `json:"funnel"`
	Costs        domain.Costs  `json:"costs"`
	Observations string        `json:"observacoes"`
}

func (in AnalysisInput) Validate() error {
	if strings.TrimSpace(in.ClinicName) == "" {
		return errors.Join(ErrInvalidAnalysis, clinic.ErrClinicNameRequired)
	}
	if err := domain.ValidateRange(in.StartDate, in.EndDate); err != nil {
		return errors.Join(ErrInvalidAnalysis, err)
	}
	if err := in.Funnel.Validate(); err != nil {
		return errors.Join(ErrInvalidAnalysis, err)
	}
	if err := in.Costs.Validate(); err != nil {
		return errors.Join(ErrInvalidAnalysis, err)
	}
	return nil
}

type FunnelService interface {
	SaveAnalysis(ctx context.Context, input AnalysisInput) (*domain.AnalysisReport, error)
	ListAnalyses(ctx context.Context, clinicName string) ([]*domain.AnalysisReport, error)
}

type Service struct {
	analysisRepository repository.AnalysisRepository
	clinicService      clinic.ClinicService
	now                func() time.Time
}

func NewService(analysisRepository repository.AnalysisRepository, clinicService clinic.ClinicService) FunnelService {
	return &Service{
		analysisRepository: analysisRepository,
		clinicService:      clinicService,
		now:                time.Now,
	}
}

// SaveAnalysis grava a análise do período. Reenviar o mesmo período da mesma
// clínica substitui a análise anterior.
func (s *Service) SaveAnalysis(ctx context.Context, input AnalysisInput) (*domain.AnalysisReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.clinicService.GetClinic(ctx, input.ClinicName)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Join(ErrGenerateID, err)
	}

	now := s.now().UTC()
	analysis := &domain.Analysis{
		ID:           id,
		ClinicID:     c.ID,
		ClinicName:   c.Name,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Funnel:       input.Funnel,
		Costs:        input.Costs,
		Observations: strings.TrimSpace(input.Observations),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.analysisRepository.Upsert(ctx, analysis)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("clinic_name", c.Name).Error("Erro ao gravar análise")
		return nil, errors.Join(ErrDatabaseOperation, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"clinic_name": c.Name,
		"start_date":  saved.StartDate,
		"end_date":    saved.EndDate,
	}).Info("Análise gravada")

	return report(saved), nil
}

// ListAnalyses devolve as análises da clínica, da mais recente para a mais antiga
func (s *Service) ListAnalyses(ctx context.Context, clinicName string) ([]*domain.AnalysisReport, error) {
	c, err := s.clinicService.GetClinic(ctx, clinicName)
	if err != nil {
		return nil, err
	}

	analyses, err := s.analysisRepository.ListByClinic(ctx, c.ID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("clinic_name", c.Name).Error("Erro ao listar análises")
		return nil, errors.Join(ErrDatabaseOperation, err)
	}

	reports := make([]*domain.AnalysisReport, 0, len(analyses))
	for _, a := range analyses {
		reports = append(reports, report(a))
	}

	return reports, nil
}

func report(a *domain.Analysis) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		Analysis: *a,
		Rates:    domain.CalculateRates(a.Funnel, domain.FunnelGoals),
	}
}
