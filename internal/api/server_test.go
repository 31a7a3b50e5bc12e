package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/filestore"
	googlemocks "github.com/insitemarketing/metryka-api/infrastructure/integrator/google/mocks"
	metamocks "github.com/insitemarketing/metryka-api/infrastructure/integrator/meta/mocks"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

// fakeProvider faz o papel do Google no fluxo authorization-code
type fakeProvider struct{}

func (fakeProvider) AuthCodeURL(state string, _ ...oauth2.AuthCodeOption) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + url.QueryEscape(state)
}

func (fakeProvider) Exchange(_ context.Context, code string, _ ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	if code != "codigo-bom" {
		return nil, errors.New("invalid_grant")
	}
	return &oauth2.Token{
		AccessToken:  "ya29.acesso",
		RefreshToken: "1//refresh",
		Expiry:       time.Now().Add(time.Hour),
	}, nil
}

type testApp struct {
	handler     http.Handler
	refreshFile string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		App:    config.App{LandingURL: "/painel"},
		Server: config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
		Session: config.Session{
			Secret:     "segredo-de-teste",
			TTL:        time.Hour,
			CookieName: "metryka.sid",
		},
	}

	ctrl := gomock.NewController(t)
	googleService := googlemocks.NewMockGoogleAdsIntegrator(ctrl)
	metaService := metamocks.NewMockMetaIntegrator(ctrl)

	store := session.NewMemoryStore()
	refreshFile := filepath.Join(dir, "refreshTokens.jsonl")

	clinicService := clinic.NewService(filestore.NewClinicStore(filepath.Join(dir, "clinicList.json")))

	deps := Dependencies{
		SessionStore:   store,
		CookieCodec:    session.NewCookieCodec(cfg.Session.Secret),
		Authenticator:  authenticating.NewService(fakeProvider{}, store, filestore.NewRefreshTokenLog(refreshFile), googleService),
		ClinicService:  clinicService,
		InsightService: insighting.NewService(googleService, metaService, clinicService),
	}

	return &testApp{
		handler:     NewHandler(cfg, deps),
		refreshFile: refreshFile,
	}
}

func (a *testApp) do(t *testing.T, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "metryka.sid" {
			return c
		}
	}
	t.Fatal("cookie de sessão não emitido")
	return nil
}

func TestFluxoOAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/auth", "", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	cookie := sessionCookie(t, rec)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.Len(t, state, 64)

	rec = app.do(t, http.MethodGet, "/api/auth/status", "", cookie)
	assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/endAuth?code=codigo-bom&state="+state, "", cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/painel", rec.Header().Get("Location"))

	rec = app.do(t, http.MethodGet, "/api/auth/status", "", cookie)
	assert.JSONEq(t, `{"loggedIn":true}`, rec.Body.String())

	content, err := os.ReadFile(app.refreshFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "1//refresh")

	t.Run("callback repetida falha porque o state já foi usado", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/endAuth?code=codigo-bom&state="+state, "", cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("logout remove a sessão", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/auth/logout", "", cookie)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.do(t, http.MethodGet, "/api/auth/status", "", cookie)
		assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())
	})
}

func TestFluxoOAuth_Falhas(t *testing.T) {
	testCases := []struct {
		name           string
		query          func(state string) string
		expectedStatus int
	}{
		{
			name:           "state divergente",
			query:          func(string) string { return "?code=codigo-bom&state=forjado" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "provedor recusou",
			query:          func(state string) string { return "?error=access_denied&state=" + state },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "sem código",
			query:          func(state string) string { return "?state=" + state },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "troca do código falhou",
			query:          func(state string) string { return "?code=codigo-ruim&state=" + state },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)

			rec := app.do(t, http.MethodGet, "/api/auth", "", nil)
			cookie := sessionCookie(t, rec)
			location, err := url.Parse(rec.Header().Get("Location"))
			require.NoError(t, err)

			rec = app.do(t, http.MethodGet, "/api/endAuth"+tc.query(location.Query().Get("state")), "", cookie)
			assert.Equal(t, tc.expectedStatus, rec.Code)

			rec = app.do(t, http.MethodGet, "/api/auth/status", "", cookie)
			assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())
		})
	}
}

func TestCadastroDeClinicas(t *testing.T) {
	app := newTestApp(t)

	body := `{"name":"Clínica Sorriso","metaAdsId":"act_123","googleAdsId":"123-456-7890"}`

	rec := app.do(t, http.MethodPost, "/api/clinics", body, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/clinics", `{"name":"clínica sorriso"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":"CLI_001","message":"Clínica já existe!"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/clinics?clinicName="+url.QueryEscape("CLÍNICA SORRISO"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"GoogleAdsId":"123-456-7890","MetaAdsId":"act_123"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/clinics/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Clínica Sorriso")

	rec = app.do(t, http.MethodDelete, "/api/clinics?clinicName="+url.QueryEscape("Clínica Sorriso"), "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/clinics?clinicName="+url.QueryEscape("Clínica Sorriso"), "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/clinics?clinicName="+url.QueryEscape("Clínica Sorriso"), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRotasProtegidas(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/google/totalData?accountId=1234567890&startDate=2024-01-01&endDate=2024-01-31", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidacaoAntesDoProvedor(t *testing.T) {
	app := newTestApp(t)

	// o mock da Meta não tem expectativas: qualquer chamada falharia o teste
	rec := app.do(t, http.MethodGet, "/api/meta/accountSpend?accountId=act_123&startDate=2024-13-01&endDate=2024-01-31", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/meta/conversions?accountId=abc&startDate=2024-01-01&endDate=2024-01-31", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRotasDeAnaliseSemPostgres(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/analyses?clinicName=Sorriso", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCorsPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/clinics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestHealthcheck(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
