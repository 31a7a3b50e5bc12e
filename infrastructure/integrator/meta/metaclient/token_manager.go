package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	metadomain "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/domain"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const metaTokenSecretName = "meta_read_key"

var ErrRefreshNotConfigured = errors.New("meta token refresh requires META_APP_ID and META_APP_SECRET")

// TokenManager guarda a chave de leitura da Meta e a renova sob demanda
type TokenManager struct {
	cfg        *config.Config
	mu         sync.RWMutex
	token      string
	expiresAt  time.Time
	secrets    config.SecretStorage
	httpClient *http.Client
	now        func() time.Time
}

func NewTokenManager(cfg *config.Config, secrets config.SecretStorage) *TokenManager {
	return &TokenManager{
		cfg:        cfg,
		token:      cfg.Meta.AccessToken,
		expiresAt:  cfg.Meta.TokenExpiresAt,
		secrets:    secrets,
		httpClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		now:        time.Now,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// RefreshToken troca a chave atual por uma nova de longa duração. Quando o
// Render está configurado, a chave nova é persistida lá.
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	if tm.cfg.Meta.AppID == "" || tm.cfg.Meta.AppSecret == "" {
		return ErrRefreshNotConfigured
	}

	// a troca roda fora do lock; quem lê o token não espera pela Graph API
	currentToken := tm.AccessToken()

	tokenResponse, err := GetLongLivedToken(ctx, tm.httpClient, currentToken, tm.cfg.Meta.AppID, tm.cfg.Meta.AppSecret, tm.cfg.Meta.URL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao renovar token da Meta")
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	expiresAt := CalculateTokenExpiration(tm.now(), tokenResponse.ExpiresIn)

	tm.mu.Lock()
	tm.token = tokenResponse.AccessToken
	tm.expiresAt = expiresAt
	tm.mu.Unlock()

	logrus.WithField("expires_at", expiresAt.Format(time.RFC3339)).Info("Token da Meta renovado com sucesso")

	if tm.secrets != nil && tm.secrets.Enabled() {
		if err := tm.secrets.AddOrUpdateSecret(ctx, metaTokenSecretName, tokenResponse.AccessToken); err != nil {
			// o token novo continua valendo em memória
			logrus.WithError(err).Error("Erro ao persistir token da Meta no Render")
		}
	}

	return nil
}

// HandleResponse devolve o corpo de respostas 200. Qualquer outro status vira
// um UpstreamError com o erro da Graph API já decodificado.
func (tm *TokenManager) HandleResponse(ctx context.Context, resp *http.Response, operation string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{
			Provider:   domain.ProviderMeta,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("erro ao ler resposta: %w", err),
		}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	upstreamErr := &domain.UpstreamError{
		Provider:   domain.ProviderMeta,
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var errorResp metadomain.ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Error.Code != 0 {
		upstreamErr.Code = strconv.Itoa(errorResp.Error.Code)
		upstreamErr.Message = errorResp.Error.Message
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider":      domain.ProviderMeta,
		"operation":     operation,
		"status_code":   resp.StatusCode,
		"error_code":    upstreamErr.Code,
		"fbtrace_id":    errorResp.Error.FBTraceID,
		"response_body": utils.PrettyJson(body),
	})

	if errorResp.IsTokenExpired() {
		logger.Error("meta: chave de leitura expirada ou inválida. Renove o META_READ_KEY")
	} else {
		logger.Error("meta: erro na resposta da Graph API")
	}

	return nil, upstreamErr
}
