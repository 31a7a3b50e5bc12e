package meta

import (
	"context"
	"strconv"
	"strings"

	metadomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/domain"
	"github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/metaclient"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// conversationIndicator identifica os resultados de conversas iniciadas
// (ex.: actions:onsite_conversion.messaging_conversation_started_7d)
const conversationIndicator = "conversation"

type MetaIntegrator interface {
	GetAccountSpend(ctx context.Context, query domain.MetricsQuery) (float64, error)
	GetConversions(ctx context.Context, query domain.MetricsQuery) (int64, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaService {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountSpend devolve o gasto da primeira linha de insights, ou zero se a
// conta não teve entrega no período
func (s *MetaService) GetAccountSpend(ctx context.Context, query domain.MetricsQuery) (float64, error) {
	logger := log.ForContext(ctx).WithField("account_id", query.MetaAccountID())

	rows, err := s.Client.GetAccountInsights(ctx, query, "spend")
	if err != nil {
		logger.WithError(err).Error("meta: falha ao buscar gasto da conta")
		return 0, err
	}

	if len(rows) == 0 {
		logger.Debug("meta: conta sem insights no período")
		return 0, nil
	}

	raw := rows[0].Spend.String()
	if raw == "" {
		return 0, nil
	}

	spend, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.WithField("upstream_value", raw).Error("meta: valor de gasto inválido")
		return 0, &domain.UpstreamError{
			Provider:  domain.ProviderMeta,
			Operation: metaclient.OperationAccountInsights,
			Message:   "invalid spend value",
			Err:       err,
		}
	}

	return spend, nil
}

// GetConversions soma as conversas iniciadas das campanhas ativas e pausadas
func (s *MetaService) GetConversions(ctx context.Context, query domain.MetricsQuery) (int64, error) {
	logger := log.ForContext(ctx).WithField("account_id", query.MetaAccountID())

	rows, err := s.Client.GetCampaignResults(ctx, query)
	if err != nil {
		logger.WithError(err).Error("meta: falha ao buscar resultados das campanhas")
		return 0, err
	}

	total, ok := SumConversations(rows)
	if !ok {
		logger.WithField("campaigns", len(rows)).
			Warn("meta: campanha de conversa com valor não numérico, total considerado zero")
		return 0, nil
	}

	return total, nil
}

// SumConversations soma o primeiro valor do primeiro resultado das linhas cujo
// indicador contém "conversation". Um valor não numérico invalida a soma
// inteira e ok volta falso.
func SumConversations(rows []metadomain.CampaignResult) (total int64, ok bool) {
	for _, row := range rows {
		if !strings.Contains(row.TopIndicator(), conversationIndicator) {
			continue
		}

		value, hasValue := row.TopValue()
		if !hasValue {
			return 0, false
		}

		n, parsed := utils.ParseLeadingInt(value)
		if !parsed {
			return 0, false
		}
		total += n
	}

	return total, true
}
