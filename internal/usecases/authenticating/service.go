package authenticating

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google"
	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const stateBytes = 32

// CallbackParams são os parâmetros que o Google envia para a callback
type CallbackParams struct {
	Code  string
	State string
	Error string
}

type Authenticator interface {
	Authorize(ctx context.Context, sess *domain.Session) (string, error)
	CompleteAuthorization(ctx context.Context, sess *domain.Session, params CallbackParams) error
	SessionStatus(sess *domain.Session) bool
	Logout(ctx context.Context, sess *domain.Session) error
	GetUserInfo(ctx context.Context, sess *domain.Session) (*domain.UserInfo, error)
}

type Service struct {
	provider     OAuthProvider
	store        session.Store
	refreshLog   repository.RefreshTokenRepository
	googleClient google.GoogleAdsIntegrator
	now          func() time.Time
}

func NewService(
	provider OAuthProvider,
	store session.Store,
	refreshLog repository.RefreshTokenRepository,
	googleClient google.GoogleAdsIntegrator,
) Authenticator {
	return &Service{
		provider:     provider,
		store:        store,
		refreshLog:   refreshLog,
		googleClient: googleClient,
		now:          time.Now,
	}
}

// Authorize grava um nonce novo na sessão e devolve a URL de consentimento
func (s *Service) Authorize(ctx context.Context, sess *domain.Session) (string, error) {
	state, err := newState()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Falha ao gerar state")
	}

	sess.State = state
	if err := s.store.Set(ctx, sess); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar state na sessão")
		return "", NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	return s.provider.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// CompleteAuthorization valida a callback e troca o código por token. O nonce
// é descartado em qualquer resultado, então uma callback repetida falha.
func (s *Service) CompleteAuthorization(ctx context.Context, sess *domain.Session, params CallbackParams) error {
	logger := log.ForContext(ctx).WithField("session_id", sess.ID)

	expected := sess.ConsumeState()
	if err := s.store.Set(ctx, sess); err != nil {
		logger.WithError(err).Error("Erro ao descartar state da sessão")
		return NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	if params.Error != "" {
		logger.WithField("error", params.Error).Warn("Google recusou a autorização")
		return NewAuthError(ErrProviderError, apiErrors.ErrProviderRejected, params.Error)
	}

	if params.Code == "" {
		logger.Warn("Callback OAuth sem código")
		return NewAuthError(ErrMissingCode, apiErrors.ErrInvalidRequest, "Parâmetro code ausente")
	}

	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(params.State)) != 1 {
		logger.Warn("State do OAuth não confere. Possível CSRF")
		return NewAuthError(ErrStateMismatch, apiErrors.ErrStateMismatch, "State mismatch. Possible CSRF attack")
	}

	token, err := s.provider.Exchange(ctx, params.Code)
	if err != nil {
		logExchangeError(logger, err)
		return NewAuthError(ErrTokenExchange, apiErrors.ErrTokenExchange, "Falha ao obter token do Google")
	}

	sess.AccessToken = token.AccessToken
	sess.TokenExpiry = token.Expiry
	if err := s.store.Set(ctx, sess); err != nil {
		logger.WithError(err).Error("Erro ao gravar token na sessão")
		return NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}

	record := domain.RefreshTokenRecord{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		CreatedAt:    s.now().UTC(),
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		record.Expiry = &expiry
	}

	// o login continua válido mesmo se o log falhar
	if err := s.refreshLog.Append(ctx, record); err != nil {
		logger.WithError(err).Error("Erro ao gravar refresh token")
	}

	logger.WithField("session_has_refresh", token.RefreshToken != "").Info("Login Google concluído")

	return nil
}

func (s *Service) SessionStatus(sess *domain.Session) bool {
	return sess.IsAuthenticated()
}

func (s *Service) Logout(ctx context.Context, sess *domain.Session) error {
	if err := s.store.Destroy(ctx, sess.ID); err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sess.ID).Error("Erro ao remover sessão")
		return NewAuthError(ErrSessionStore, apiErrors.ErrInternalServer, err.Error())
	}
	return nil
}

func (s *Service) GetUserInfo(ctx context.Context, sess *domain.Session) (*domain.UserInfo, error) {
	if !sess.IsAuthenticated() {
		return nil, NewAuthError(ErrNotAuthenticated, apiErrors.ErrInvalidToken, "Faça login com o Google")
	}

	return s.googleClient.GetUserInfo(ctx, sess.AccessToken)
}

func newState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func logExchangeError(logger log.Logger, err error) {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		fields := log.Fields{
			"error":             retrieveErr.ErrorCode,
			"error_description": retrieveErr.ErrorDescription,
			"upstream_body":     string(retrieveErr.Body),
		}
		if retrieveErr.Response != nil {
			fields["status_code"] = retrieveErr.Response.StatusCode
		}
		logger.WithFields(fields).Error("Erro na troca do código OAuth")
		return
	}

	logger.WithError(err).Error("Erro na troca do código OAuth")
}
