package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	metadomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/domain"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxPages limita a paginação de insights por campanha
const maxPages = 20

type Client interface {
	GetAccountInsights(ctx context.Context, query domain.MetricsQuery, fields string) ([]metadomain.AccountInsight, error)
	GetCampaignResults(ctx context.Context, query domain.MetricsQuery) ([]metadomain.CampaignResult, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) *MetaClient {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: cfg.Upstream.Timeout},
		limiter:      newLimiter(cfg.Upstream),
	}
}

func newLimiter(cfg config.Upstream) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

// insightsURL monta act_<id>/insights com o período e o token de leitura
func (c *MetaClient) insightsURL(query domain.MetricsQuery, params url.Values) string {
	timeRange, _ := json.Marshal(map[string]string{
		"since": query.StartDate,
		"until": query.EndDate,
	})

	params.Set("time_range", string(timeRange))
	params.Set("access_token", c.TokenManager.AccessToken())

	return c.Cfg.Meta.URL + "/act_" + url.PathEscape(query.MetaAccountID()) + "/insights?" + params.Encode()
}

// get faz a chamada respeitando o limitador e devolve o corpo de respostas 200
func (c *MetaClient) get(ctx context.Context, operation, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Provider: domain.ProviderMeta, Operation: operation, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: domain.ProviderMeta, Operation: operation, Err: err}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(domain.ProviderMeta, operation, 0, started)
		return nil, &domain.UpstreamError{Provider: domain.ProviderMeta, Operation: operation, Err: stripToken(err)}
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(domain.ProviderMeta, operation, resp.StatusCode, started)

	return c.TokenManager.HandleResponse(ctx, resp, operation)
}

// stripToken remove a URL (que carrega o access_token) de erros de rede
func stripToken(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
