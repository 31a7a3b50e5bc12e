package googleclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Google.AdsURL = server.URL + "/v22"
	cfg.Google.UserInfoURL = server.URL + "/userinfo"
	cfg.Google.DeveloperToken = "dev-token"
	cfg.Google.LoginCustomerID = "9998887777"
	cfg.Upstream.Timeout = 5 * time.Second

	return NewClient(cfg)
}

func TestGoogleClient_SearchStream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v22/customers/1234567890/googleAds:searchStream", r.URL.Path)
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "9998887777", r.Header.Get("login-customer-id"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"SELECT metrics.cost_micros FROM customer"}`, string(body))

		_, _ = w.Write([]byte(`[{"results":[{"metrics":{"costMicros":"12500000","allConversions":3.5}}],"fieldMask":"metrics.costMicros,metrics.allConversions"}]`))
	})

	batches, err := client.SearchStream(context.Background(), "1234567890", "ya29.token", "SELECT metrics.cost_micros FROM customer")

	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Results, 1)
	assert.EqualValues(t, 12500000, batches[0].Results[0].Metrics.CostMicros)
	assert.Equal(t, 3.5, batches[0].Results[0].Metrics.AllConversions)
}

func TestGoogleClient_SearchStream_Erro(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedCode string
	}{
		{
			name:         "Envelope em array",
			status:       http.StatusUnauthorized,
			body:         `[{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}]`,
			expectedCode: "UNAUTHENTICATED",
		},
		{
			name:         "Envelope simples",
			status:       http.StatusForbidden,
			body:         `{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`,
			expectedCode: "PERMISSION_DENIED",
		},
		{
			name:   "Corpo não JSON",
			status: http.StatusBadGateway,
			body:   `upstream connect error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			batches, err := client.SearchStream(context.Background(), "1", "token", "SELECT")

			assert.Nil(t, batches)
			var upstreamErr *domain.UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
			assert.Equal(t, domain.ProviderGoogle, upstreamErr.Provider)
			assert.Equal(t, OperationSearchStream, upstreamErr.Operation)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
			assert.Equal(t, tt.expectedCode, upstreamErr.Code)
			assert.Equal(t, tt.body, upstreamErr.Body)
		})
	}
}

func TestGoogleClient_GetUserInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/userinfo", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"sub":"1","email":"gestor@clinica.com","name":"Gestor"}`))
	})

	info, err := client.GetUserInfo(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "gestor@clinica.com", info.Email)
	assert.Equal(t, "Gestor", info.Name)
}

func TestGoogleClient_ContextoCancelado(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a requisição não deveria chegar ao servidor")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUserInfo(ctx, "abc")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
