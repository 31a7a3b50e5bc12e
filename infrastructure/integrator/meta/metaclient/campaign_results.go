package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/domain"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

const OperationCampaignResults = "campaign_results"

// GetCampaignResults busca o campo results de cada campanha ativa ou pausada
// da conta, seguindo a paginação da Graph API
func (c *MetaClient) GetCampaignResults(ctx context.Context, query domain.MetricsQuery) ([]metadomain.CampaignResult, error) {
	params := url.Values{}
	params.Set("fields", "results,campaign_name")
	params.Set("level", "campaign")
	params.Set("effective_status", `["ACTIVE","PAUSED"]`)
	params.Set("limit", "500")

	next := c.insightsURL(query, params)
	rows := make([]metadomain.CampaignResult, 0)

	for page := 0; next != "" && page < maxPages; page++ {
		body, err := c.get(ctx, OperationCampaignResults, next)
		if err != nil {
			return nil, err
		}

		var response metadomain.CampaignResultResponse
		if err := json.Unmarshal(body, &response); err != nil {
			log.ForContext(ctx).WithError(err).Error("meta: erro ao decodificar insights de campanhas")
			return nil, &domain.UpstreamError{
				Provider:  domain.ProviderMeta,
				Operation: OperationCampaignResults,
				Message:   "invalid response body",
				Err:       err,
			}
		}

		rows = append(rows, response.Data...)
		next = response.Paging.Next
	}

	if next != "" {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": query.MetaAccountID(),
			"pages":      maxPages,
		}).Warn("meta: limite de páginas atingido ao buscar campanhas")
	}

	return rows, nil
}
