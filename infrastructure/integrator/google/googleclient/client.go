package googleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	googledomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/google/domain"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/metrics"
	"github.com/insitemarketing/metryka-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	OperationSearchStream = "search_stream"
	OperationUserInfo     = "userinfo"
)

type Client interface {
	SearchStream(ctx context.Context, customerID, accessToken, query string) ([]googledomain.SearchStreamBatch, error)
	GetUserInfo(ctx context.Context, accessToken string) (*googledomain.UserInfo, error)
}

type GoogleClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) *GoogleClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.Upstream.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Upstream.RequestsPerSecond), max(cfg.Upstream.Burst, 1))
	}

	return &GoogleClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		limiter:    limiter,
	}
}

// SearchStream executa uma consulta GAQL na conta do cliente
func (c *GoogleClient) SearchStream(ctx context.Context, customerID, accessToken, query string) ([]googledomain.SearchStreamBatch, error) {
	payload, err := json.Marshal(googledomain.SearchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.cfg.Google.AdsURL, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.UpstreamError{Provider: domain.ProviderGoogle, Operation: OperationSearchStream, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.Google.DeveloperToken)
	if c.cfg.Google.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.Google.LoginCustomerID)
	}

	body, err := c.do(req, OperationSearchStream)
	if err != nil {
		return nil, err
	}

	var batches []googledomain.SearchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		log.ForContext(ctx).WithError(err).Error("google: erro ao decodificar resposta do searchStream")
		return nil, &domain.UpstreamError{
			Provider:  domain.ProviderGoogle,
			Operation: OperationSearchStream,
			Message:   "invalid response body",
			Err:       err,
		}
	}

	return batches, nil
}

// GetUserInfo consulta o perfil da conta Google dona do token
func (c *GoogleClient) GetUserInfo(ctx context.Context, accessToken string) (*googledomain.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Google.UserInfoURL, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: domain.ProviderGoogle, Operation: OperationUserInfo, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := c.do(req, OperationUserInfo)
	if err != nil {
		return nil, err
	}

	var info googledomain.UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, &domain.UpstreamError{
			Provider:  domain.ProviderGoogle,
			Operation: OperationUserInfo,
			Message:   "invalid response body",
			Err:       err,
		}
	}

	return &info, nil
}

func (c *GoogleClient) do(req *http.Request, operation string) ([]byte, error) {
	ctx := req.Context()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Provider: domain.ProviderGoogle, Operation: operation, Err: err}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(domain.ProviderGoogle, operation, 0, started)
		log.ForContext(ctx).WithFields(log.Fields{
			"provider":  domain.ProviderGoogle,
			"operation": operation,
			"error":     err.Error(),
		}).Error("google: falha de rede")
		return nil, &domain.UpstreamError{Provider: domain.ProviderGoogle, Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(domain.ProviderGoogle, operation, resp.StatusCode, started)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{
			Provider:   domain.ProviderGoogle,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	upstreamErr := &domain.UpstreamError{
		Provider:   domain.ProviderGoogle,
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	if details, ok := googledomain.ParseErrorResponse(body); ok {
		upstreamErr.Code = details.Status
		upstreamErr.Message = details.Message
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"provider":      domain.ProviderGoogle,
		"operation":     operation,
		"status_code":   resp.StatusCode,
		"error_code":    upstreamErr.Code,
		"response_body": utils.PrettyJson(body),
	}).Error("google: erro na resposta da API")

	return nil, upstreamErr
}
