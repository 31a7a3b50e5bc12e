package clinic

import (
	"context"
	"strings"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/metrics"
	"github.com/insitemarketing/metryka-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ClinicService interface {
	AddClinic(ctx context.Context, name, metaAdsID, googleAdsID string) (*domain.Clinic, error)
	GetClinic(ctx context.Context, name string) (*domain.Clinic, error)
	GetClinicIDs(ctx context.Context, name string) (*domain.ClinicIDs, error)
	DeleteClinic(ctx context.Context, name string) error
	ListClinics(ctx context.Context) ([]*domain.Clinic, error)
}

type Service struct {
	clinicRepository repository.ClinicRepository
	now              func() time.Time
}

func NewService(clinicRepository repository.ClinicRepository) ClinicService {
	return &Service{
		clinicRepository: clinicRepository,
		now:              time.Now,
	}
}

// AddClinic cadastra a clínica. A checagem de nome repetido acontece na
// própria gravação, sem busca prévia.
func (s *Service) AddClinic(ctx context.Context, name, metaAdsID, googleAdsID string) (*domain.Clinic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewClinicError(ErrClinicNameRequired, apiErrors.ErrMissingRequiredData, name, "Nome da clínica é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewClinicError(ErrGenerateID, apiErrors.ErrInternalServer, name, "Falha ao gerar identificador da clínica")
	}

	clinic := domain.NewClinic(id, name, metaAdsID, googleAdsID, s.now().UTC())
	logger := log.ForContext(ctx).WithField("clinic_name", clinic.Name)

	inserted, err := s.clinicRepository.InsertIfAbsent(ctx, clinic)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar clínica")
		metrics.ClinicWrites.WithLabelValues("create", "error").Inc()
		return nil, NewClinicError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, name, err.Error())
	}

	if !inserted {
		logger.Info("Clínica já cadastrada")
		metrics.ClinicWrites.WithLabelValues("create", "conflict").Inc()
		return nil, NewClinicError(ErrClinicAlreadyExists, apiErrors.ErrClinicAlreadyExists, name, "Clínica já existe!")
	}

	metrics.ClinicWrites.WithLabelValues("create", "ok").Inc()
	logger.Info("Clínica cadastrada")

	return clinic, nil
}

func (s *Service) GetClinic(ctx context.Context, name string) (*domain.Clinic, error) {
	// os nomes são gravados sem espaços nas pontas
	name = strings.TrimSpace(name)

	clinic, err := s.clinicRepository.GetByName(ctx, name)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("clinic_name", name).Error("Erro ao buscar clínica")
		return nil, NewClinicError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, name, err.Error())
	}

	if clinic == nil {
		log.ForContext(ctx).WithField("clinic_name", name).Warn("Clínica não encontrada")
		return nil, NewClinicError(ErrClinicNotFound, apiErrors.ErrClinicNotFound, name, "Clínica não encontrada")
	}

	return clinic, nil
}

func (s *Service) GetClinicIDs(ctx context.Context, name string) (*domain.ClinicIDs, error) {
	clinic, err := s.GetClinic(ctx, name)
	if err != nil {
		return nil, err
	}

	ids := clinic.IDs()
	return &ids, nil
}

// DeleteClinic não falha quando o nome não existe
func (s *Service) DeleteClinic(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	logger := log.ForContext(ctx).WithField("clinic_name", name)

	deleted, err := s.clinicRepository.DeleteByName(ctx, name)
	if err != nil {
		logger.WithError(err).Error("Erro ao remover clínica")
		metrics.ClinicWrites.WithLabelValues("delete", "error").Inc()
		return NewClinicError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, name, err.Error())
	}

	if !deleted {
		logger.Debug("Nenhuma clínica removida")
		metrics.ClinicWrites.WithLabelValues("delete", "noop").Inc()
		return nil
	}

	metrics.ClinicWrites.WithLabelValues("delete", "ok").Inc()
	logger.Info("Clínica removida")

	return nil
}

func (s *Service) ListClinics(ctx context.Context) ([]*domain.Clinic, error) {
	clinics, err := s.clinicRepository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clínicas")
		return nil, NewClinicError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return clinics, nil
}
