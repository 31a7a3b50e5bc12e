package funnel

import (
	"context"
	"errors"
	"testing"
	"time"

	repomocks "github.com/insitemarketing/metryka-api/infrastructure/repository/mocks"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	clinicmocks "github.com/insitemarketing/metryka-api/internal/usecases/clinic/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *repomocks.MockAnalysisRepository, *clinicmocks.MockClinicService) {
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockAnalysisRepository(ctrl)
	clinics := clinicmocks.NewMockClinicService(ctrl)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	return &Service{
		analysisRepository: repo,
		clinicService:      clinics,
		now:                func() time.Time { return now },
	}, repo, clinics
}

func validInput() AnalysisInput {
	return AnalysisInput{
		ClinicName: "Sorriso Feliz",
		StartDate:  "2025-03-03",
		EndDate:    "2025-03-09",
		Funnel: domain.Funnel{
			LeadsMarketing: 60,
			LeadsCRM:       50,
			Scheduled:      25,
			Attended:       8,
			Sold:           3,
		},
		Costs:        domain.Costs{MetaSpend: 300, GoogleSpend: 150},
		Observations: "  semana com feriado ",
	}
}

func TestService_SaveAnalysis(t *testing.T) {
	service, repo, clinics := newTestService(t)

	clinics.EXPECT().
		GetClinic(gomock.Any(), "Sorriso Feliz").
		Return(&domain.Clinic{ID: "c1", Name: "Sorriso Feliz"}, nil)

	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Analysis) (*domain.Analysis, error) {
			assert.Equal(t, "c1", a.ClinicID)
			assert.Equal(t, "semana com feriado", a.Observations)
			return a, nil
		})

	report, err := service.SaveAnalysis(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "Sorriso Feliz", report.ClinicName)
	// 25/50 = 50% >= 40
	assert.Equal(t, 50.0, report.Rates.Scheduling.Rate)
	assert.True(t, report.Rates.Scheduling.GoalMet)
	// 8/25 = 32% < 40
	assert.Equal(t, 32.0, report.Rates.Attendance.Rate)
	assert.False(t, report.Rates.Attendance.GoalMet)
	// 3/8 = 37.5% >= 30
	assert.Equal(t, 37.5, report.Rates.Closing.Rate)
	assert.True(t, report.Rates.Closing.GoalMet)
}

func TestService_SaveAnalysis_EntradaInvalida(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *AnalysisInput)
	}{
		{name: "Sem clínica", mutate: func(in *AnalysisInput) { in.ClinicName = " " }},
		{name: "Data inválida", mutate: func(in *AnalysisInput) { in.StartDate = "03/03/2025" }},
		{name: "Período invertido", mutate: func(in *AnalysisInput) { in.EndDate = "2025-03-01" }},
		{name: "Contagem negativa", mutate: func(in *AnalysisInput) { in.Funnel.Sold = -1 }},
		{name: "Custo negativo", mutate: func(in *AnalysisInput) { in.Costs.GoogleSpend = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, clinics := newTestService(t)
			clinics.EXPECT().GetClinic(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

			input := validInput()
			tt.mutate(&input)

			_, err := service.SaveAnalysis(context.Background(), input)

			assert.ErrorIs(t, err, ErrInvalidAnalysis)
		})
	}
}

func TestService_SaveAnalysis_ClinicaInexistente(t *testing.T) {
	service, repo, clinics := newTestService(t)

	clinics.EXPECT().
		GetClinic(gomock.Any(), gomock.Any()).
		Return(nil, clinic.NewClinicError(clinic.ErrClinicNotFound, "CLI_002", "x", ""))
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.SaveAnalysis(context.Background(), validInput())

	assert.ErrorIs(t, err, clinic.ErrClinicNotFound)
}

func TestService_ListAnalyses(t *testing.T) {
	service, repo, clinics := newTestService(t)

	clinics.EXPECT().
		GetClinic(gomock.Any(), "sorriso").
		Return(&domain.Clinic{ID: "c1", Name: "Sorriso Feliz"}, nil)
	repo.EXPECT().
		ListByClinic(gomock.Any(), "c1").
		Return([]*domain.Analysis{
			{ID: "a2", StartDate: "2025-03-10", Funnel: domain.Funnel{LeadsCRM: 0, Scheduled: 0}},
			{ID: "a1", StartDate: "2025-03-03", Funnel: domain.Funnel{LeadsCRM: 10, Scheduled: 4}},
		}, nil)

	reports, err := service.ListAnalyses(context.Background(), "sorriso")

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "a2", reports[0].ID)
	assert.Zero(t, reports[0].Rates.Scheduling.Rate)
	assert.Equal(t, 40.0, reports[1].Rates.Scheduling.Rate)
}

func TestService_ListAnalyses_ErroDoBanco(t *testing.T) {
	service, repo, clinics := newTestService(t)

	clinics.EXPECT().GetClinic(gomock.Any(), gomock.Any()).Return(&domain.Clinic{ID: "c1"}, nil)
	repo.EXPECT().ListByClinic(gomock.Any(), "c1").Return(nil, errors.New("timeout"))

	_, err := service.ListAnalyses(context.Background(), "x")

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
