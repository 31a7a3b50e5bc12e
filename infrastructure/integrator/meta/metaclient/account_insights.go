package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/domain"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

const OperationAccountInsights = "account_insights"

// GetAccountInsights busca os insights da conta no período. Uma lista vazia
// significa que a conta não teve entrega, não é erro.
func (c *MetaClient) GetAccountInsights(ctx context.Context, query domain.MetricsQuery, fields string) ([]metadomain.AccountInsight, error) {
	params := url.Values{}
	params.Set("fields", fields)

	body, err := c.get(ctx, OperationAccountInsights, c.insightsURL(query, params))
	if err != nil {
		return nil, err
	}

	var response metadomain.AccountInsightResponse
	if err := json.Unmarshal(body, &response); err != nil {
		log.ForContext(ctx).WithError(err).Error("meta: erro ao decodificar insights da conta")
		return nil, &domain.UpstreamError{
			Provider:  domain.ProviderMeta,
			Operation: OperationAccountInsights,
			Message:   "invalid response body",
			Err:       err,
		}
	}

	return response.Data, nil
}
