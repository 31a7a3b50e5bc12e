package authenticating_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	googlemocks "github.com/insitemarketing/metryka-api/infrastructure/integrator/google/mocks"
	repomocks "github.com/insitemarketing/metryka-api/infrastructure/repository/mocks"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	sessionmocks "github.com/insitemarketing/metryka-api/infrastructure/session/mocks"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating/mocks"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

type fixture struct {
	service    *authenticating.Service
	provider   *mocks.MockOAuthProvider
	store      *session.MemoryStore
	refreshLog *repomocks.MockRefreshTokenRepository
	google     *googlemocks.MockGoogleAdsIntegrator
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		provider:   mocks.NewMockOAuthProvider(ctrl),
		store:      session.NewMemoryStore(),
		refreshLog: repomocks.NewMockRefreshTokenRepository(ctrl),
		google:     googlemocks.NewMockGoogleAdsIntegrator(ctrl),
	}
	f.service = authenticating.NewServiceWithClock(
		f.provider,
		f.store,
		f.refreshLog,
		f.google,
		func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) },
	)
	return f
}

func newSession() *domain.Session {
	return domain.NewSession("sess-1", time.Now(), time.Hour)
}

func TestService_Authorize(t *testing.T) {
	f := newFixture(t)
	sess := newSession()

	f.provider.EXPECT().
		AuthCodeURL(gomock.Any(), oauth2.AccessTypeOffline, oauth2.ApprovalForce).
		DoAndReturn(func(state string, _ ...oauth2.AuthCodeOption) string {
			return "https://accounts.google.com/o/oauth2/auth?state=" + state
		})

	redirect, err := f.service.Authorize(context.Background(), sess)

	require.NoError(t, err)
	assert.Len(t, sess.State, 64)
	assert.Contains(t, redirect, "state="+sess.State)

	stored, err := f.store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.State, stored.State, "o nonce precisa estar persistido antes do redirect")
}

func TestService_Authorize_NonceNovoACadaChamada(t *testing.T) {
	f := newFixture(t)
	sess := newSession()

	f.provider.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("u").Times(2)

	_, err := f.service.Authorize(context.Background(), sess)
	require.NoError(t, err)
	first := sess.State

	_, err = f.service.Authorize(context.Background(), sess)
	require.NoError(t, err)

	assert.NotEqual(t, first, sess.State)
}

func TestService_GoogleConsentURL(t *testing.T) {
	f := newFixture(t)
	f.service.SetProvider(authenticating.NewGoogleOAuthConfig(config.Google{
		ClientID:    "client-id",
		RedirectURL: "http://localhost:4000/api/endAuth",
	}))

	redirect, err := f.service.Authorize(context.Background(), newSession())
	require.NoError(t, err)

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Contains(t, query.Get("scope"), "https://www.googleapis.com/auth/adwords")
	assert.Contains(t, query.Get("scope"), "userinfo.email")
}

func TestService_CompleteAuthorization_Rejeicoes(t *testing.T) {
	tests := []struct {
		name         string
		state        string
		params       authenticating.CallbackParams
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Google retornou erro",
			state:        "nonce",
			params:       authenticating.CallbackParams{Error: "access_denied", Code: "code", State: "nonce"},
			expectedErr:  authenticating.ErrProviderError,
			expectedCode: apiErrors.ErrProviderRejected,
		},
		{
			name:         "Código ausente",
			state:        "nonce",
			params:       authenticating.CallbackParams{State: "nonce"},
			expectedErr:  authenticating.ErrMissingCode,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "State diferente",
			state:        "nonce",
			params:       authenticating.CallbackParams{Code: "code", State: "outro"},
			expectedErr:  authenticating.ErrStateMismatch,
			expectedCode: apiErrors.ErrStateMismatch,
		},
		{
			name:         "Sessão sem nonce emitido",
			state:        "",
			params:       authenticating.CallbackParams{Code: "code", State: ""},
			expectedErr:  authenticating.ErrStateMismatch,
			expectedCode: apiErrors.ErrStateMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			sess := newSession()
			sess.State = tt.state

			// nenhuma troca de código nem gravação de token pode acontecer
			f.provider.EXPECT().Exchange(gomock.Any(), gomock.Any()).Times(0)
			f.refreshLog.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

			err := f.service.CompleteAuthorization(context.Background(), sess, tt.params)

			assert.ErrorIs(t, err, tt.expectedErr)
			var authErr *authenticating.AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.expectedCode, authErr.Code)

			assert.Empty(t, sess.State, "o nonce é descartado em qualquer resultado")
			assert.False(t, sess.IsAuthenticated())
		})
	}
}

func TestService_CompleteAuthorization_Sucesso(t *testing.T) {
	f := newFixture(t)
	sess := newSession()
	sess.State = "nonce-valido"
	expiry := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)

	f.provider.EXPECT().
		Exchange(gomock.Any(), "auth-code").
		Return(&oauth2.Token{AccessToken: "ya29.a", RefreshToken: "1//r", Expiry: expiry}, nil)

	f.refreshLog.EXPECT().
		Append(gomock.Any(), domain.RefreshTokenRecord{
			AccessToken:  "ya29.a",
			RefreshToken: "1//r",
			Expiry:       &expiry,
			CreatedAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		}).
		Return(nil)

	err := f.service.CompleteAuthorization(context.Background(), sess, authenticating.CallbackParams{Code: "auth-code", State: "nonce-valido"})

	require.NoError(t, err)
	assert.True(t, f.service.SessionStatus(sess))
	assert.Empty(t, sess.State)

	stored, err := f.store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a", stored.AccessToken)
	assert.Equal(t, expiry, stored.TokenExpiry)
}

func TestService_CompleteAuthorization_CallbackRepetida(t *testing.T) {
	f := newFixture(t)
	sess := newSession()
	sess.State = "nonce"

	f.provider.EXPECT().Exchange(gomock.Any(), "code").Return(&oauth2.Token{AccessToken: "t"}, nil).Times(1)
	f.refreshLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	params := authenticating.CallbackParams{Code: "code", State: "nonce"}
	require.NoError(t, f.service.CompleteAuthorization(context.Background(), sess, params))

	err := f.service.CompleteAuthorization(context.Background(), sess, params)
	assert.ErrorIs(t, err, authenticating.ErrStateMismatch)
}

func TestService_CompleteAuthorization_FalhaNaTroca(t *testing.T) {
	f := newFixture(t)
	sess := newSession()
	sess.State = "nonce"

	f.provider.EXPECT().
		Exchange(gomock.Any(), "code").
		Return(nil, &oauth2.RetrieveError{
			Response:         &http.Response{StatusCode: http.StatusBadRequest},
			Body:             []byte(`{"error":"invalid_grant"}`),
			ErrorCode:        "invalid_grant",
			ErrorDescription: "Bad Request",
		})
	f.refreshLog.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.CompleteAuthorization(context.Background(), sess, authenticating.CallbackParams{Code: "code", State: "nonce"})

	assert.ErrorIs(t, err, authenticating.ErrTokenExchange)
	var authErr *authenticating.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, apiErrors.ErrTokenExchange, authErr.Code)
	assert.False(t, sess.IsAuthenticated())
}

func TestService_CompleteAuthorization_FalhaNoLogNaoImpedeLogin(t *testing.T) {
	f := newFixture(t)
	sess := newSession()
	sess.State = "nonce"

	f.provider.EXPECT().Exchange(gomock.Any(), "code").Return(&oauth2.Token{AccessToken: "t"}, nil)
	f.refreshLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := f.service.CompleteAuthorization(context.Background(), sess, authenticating.CallbackParams{Code: "code", State: "nonce"})

	assert.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
}

func TestService_Logout(t *testing.T) {
	f := newFixture(t)
	sess := newSession()
	require.NoError(t, f.store.Set(context.Background(), sess))

	require.NoError(t, f.service.Logout(context.Background(), sess))

	_, err := f.store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestService_GetUserInfo(t *testing.T) {
	f := newFixture(t)

	t.Run("Sem login", func(t *testing.T) {
		info, err := f.service.GetUserInfo(context.Background(), newSession())

		assert.Nil(t, info)
		assert.ErrorIs(t, err, authenticating.ErrNotAuthenticated)
	})

	t.Run("Com login", func(t *testing.T) {
		sess := newSession()
		sess.AccessToken = "ya29.a"

		f.google.EXPECT().
			GetUserInfo(gomock.Any(), "ya29.a").
			Return(&domain.UserInfo{Email: "gestor@clinica.com"}, nil)

		info, err := f.service.GetUserInfo(context.Background(), sess)

		require.NoError(t, err)
		assert.Equal(t, "gestor@clinica.com", info.Email)
	})
}

func TestService_FalhaNoStoreDeSessao(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sessionmocks.NewMockStore(ctrl)
	provider := mocks.NewMockOAuthProvider(ctrl)

	service := authenticating.NewService(provider, store, repomocks.NewMockRefreshTokenRepository(ctrl), googlemocks.NewMockGoogleAdsIntegrator(ctrl))

	t.Run("authorize não gera URL sem gravar o state", func(t *testing.T) {
		store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

		redirect, err := service.Authorize(context.Background(), newSession())

		assert.Empty(t, redirect)
		var authErr *authenticating.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, authenticating.ErrSessionStore)
		assert.Equal(t, apiErrors.ErrInternalServer, authErr.Code)
	})

	t.Run("callback não troca o código sem descartar o state", func(t *testing.T) {
		sess := newSession()
		sess.State = "abc"
		store.EXPECT().Set(gomock.Any(), sess).Return(errors.New("redis: connection refused"))

		err := service.CompleteAuthorization(context.Background(), sess, authenticating.CallbackParams{Code: "c", State: "abc"})

		assert.ErrorIs(t, err, authenticating.ErrSessionStore)
	})

	t.Run("logout propaga a falha", func(t *testing.T) {
		store.EXPECT().Destroy(gomock.Any(), "sess-1").Return(errors.New("redis: connection refused"))

		err := service.Logout(context.Background(), newSession())

		assert.ErrorIs(t, err, authenticating.ErrSessionStore)
	})
}
