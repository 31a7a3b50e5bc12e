package google

import (
	"context"
	"testing"

	googledomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/google/domain"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google/mocks"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildTotalsQuery(t *testing.T) {
	query := domain.MetricsQuery{AccountID: "123", StartDate: "2025-02-01", EndDate: "2025-02-28"}

	assert.Equal(t,
		"SELECT metrics.all_conversions, metrics.cost_micros FROM customer WHERE segments.date BETWEEN '2025-02-01' AND '2025-02-28'",
		BuildTotalsQuery(query),
	)
}

func TestGoogleService_GetTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)
	query := domain.MetricsQuery{AccountID: "123-456-7890", StartDate: "2025-02-01", EndDate: "2025-02-28"}

	tests := []struct {
		name     string
		batches  []googledomain.SearchStreamBatch
		expected *domain.GoogleTotals
	}{
		{
			name: "Usa apenas a primeira linha",
			batches: []googledomain.SearchStreamBatch{
				{Results: []googledomain.SearchResult{
					{Metrics: googledomain.Metrics{CostMicros: 2_500_000, AllConversions: 4}},
					{Metrics: googledomain.Metrics{CostMicros: 9_000_000, AllConversions: 1}},
				}},
			},
			expected: &domain.GoogleTotals{CostMicros: 2_500_000, Cost: 2.5, AllConversions: 4},
		},
		{
			name:     "Resultado vazio retorna zeros",
			batches:  []googledomain.SearchStreamBatch{},
			expected: &domain.GoogleTotals{},
		},
		{
			name:     "Lote sem linhas retorna zeros",
			batches:  []googledomain.SearchStreamBatch{{Results: nil}},
			expected: &domain.GoogleTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient.EXPECT().
				SearchStream(gomock.Any(), "1234567890", "token", BuildTotalsQuery(query)).
				Return(tt.batches, nil)

			totals, err := service.GetTotals(context.Background(), query, "token")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, totals)
		})
	}
}

func TestGoogleService_GetTotals_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		SearchStream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &domain.UpstreamError{Provider: domain.ProviderGoogle, StatusCode: 401})

	totals, err := service.GetTotals(context.Background(), domain.MetricsQuery{AccountID: "1"}, "token")

	assert.Nil(t, totals)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGoogleService_GetUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(mockClient)

	mockClient.EXPECT().
		GetUserInfo(gomock.Any(), "token").
		Return(&googledomain.UserInfo{Sub: "42", Email: "a@b.com", Name: "Ana"}, nil)

	info, err := service.GetUserInfo(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, &domain.UserInfo{Sub: "42", Email: "a@b.com", Name: "Ana"}, info)
}
