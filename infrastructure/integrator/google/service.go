package google

import (
	"context"
	"fmt"

	googledomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/google/domain"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google/googleclient"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const totalsQuery = "SELECT metrics.all_conversions, metrics.cost_micros FROM customer WHERE segments.date BETWEEN '%s' AND '%s'"

type GoogleAdsIntegrator interface {
	GetTotals(ctx context.Context, query domain.MetricsQuery, accessToken string) (*domain.GoogleTotals, error)
	GetUserInfo(ctx context.Context, accessToken string) (*domain.UserInfo, error)
}

type GoogleService struct {
	Client googleclient.Client
}

func New(client googleclient.Client) *GoogleService {
	return &GoogleService{Client: client}
}

// BuildTotalsQuery monta a consulta GAQL. As datas já chegam validadas.
func BuildTotalsQuery(query domain.MetricsQuery) string {
	return fmt.Sprintf(totalsQuery, query.StartDate, query.EndDate)
}

// GetTotals usa apenas a primeira linha do resultado. Sem linhas, devolve zeros.
func (s *GoogleService) GetTotals(ctx context.Context, query domain.MetricsQuery, accessToken string) (*domain.GoogleTotals, error) {
	logger := log.ForContext(ctx).WithField("account_id", query.GoogleCustomerID())

	batches, err := s.Client.SearchStream(ctx, query.GoogleCustomerID(), accessToken, BuildTotalsQuery(query))
	if err != nil {
		logger.WithError(err).Error("google: falha ao buscar totais da conta")
		return nil, err
	}

	row, ok := googledomain.FirstMetrics(batches)
	if !ok {
		logger.Debug("google: conta sem métricas no período")
		return domain.NewGoogleTotals(0, 0), nil
	}

	return domain.NewGoogleTotals(int64(row.CostMicros), row.AllConversions), nil
}

func (s *GoogleService) GetUserInfo(ctx context.Context, accessToken string) (*domain.UserInfo, error) {
	info, err := s.Client.GetUserInfo(ctx, accessToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("google: falha ao buscar dados do usuário")
		return nil, err
	}

	return &domain.UserInfo{
		Sub:     info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
