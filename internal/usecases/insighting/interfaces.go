package insighting

import (
	"context"

	"github.com/insitemarketing/metryka-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_insighting.go -package=mocks

// GoogleInsighter define a interface para obter métricas do Google Ads
type GoogleInsighter interface {
	// GetGoogleTotals obtém custo e conversões da conta no período
	GetGoogleTotals(ctx context.Context, query domain.MetricsQuery, accessToken string) (*domain.GoogleTotals, error)
}

// MetaInsighter define a interface para obter métricas de anúncios da Meta
type MetaInsighter interface {
	// GetMetaSpend obtém o gasto da conta no período
	GetMetaSpend(ctx context.Context, query domain.MetricsQuery) (float64, error)

	// GetMetaConversions obtém o total de conversas iniciadas no período
	GetMetaConversions(ctx context.Context, query domain.MetricsQuery) (int64, error)
}

// CombinedInsighter é a interface completa que combina Google e Meta
type CombinedInsighter interface {
	GoogleInsighter
	MetaInsighter

	// GetClinicMetrics consolida as duas fontes para uma clínica cadastrada
	GetClinicMetrics(ctx context.Context, clinicName, startDate, endDate, accessToken string) (*domain.ClinicMetrics, error)
}
