package config

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_AddOrUpdateSecret(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewRenderClient(&Config{Render: Render{APIKey: "key", ServiceID: "srv-1"}})
	client.BaseURL = srv.URL

	require.True(t, client.Enabled())
	require.NoError(t, client.AddOrUpdateSecret(context.Background(), "meta_read_key", "tok"))

	assert.Equal(t, "/services/srv-1/secret-files/meta_read_key", gotPath)
	assert.Equal(t, "Bearer key", gotAuth)
	assert.JSONEq(t, `{"content":"tok"}`, gotBody)
}

func TestRenderClient_AddOrUpdateSecretError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("unauthorized"))
	}))
	defer srv.Close()

	client := NewRenderClient(&Config{Render: Render{APIKey: "key", ServiceID: "srv-1"}})
	client.BaseURL = srv.URL

	err := client.AddOrUpdateSecret(context.Background(), "meta_read_key", "tok")
	assert.ErrorContains(t, err, "status 401")
}

func TestRenderClient_Disabled(t *testing.T) {
	client := NewRenderClient(&Config{})
	assert.False(t, client.Enabled())
}
