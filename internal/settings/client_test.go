package settings

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"onboardctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(site string) config.OnboardConfig {
	cfg := config.GetDefaultConfig()
	cfg.Site = site
	cfg.API.Username = "admin"
	cfg.API.Password = "secret"
	cfg.API.RetryMax = 1
	cfg.API.Timeout = 5 * time.Second
	return cfg
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)
	c.http.RetryWaitMin = time.Millisecond
	c.http.RetryWaitMax = time.Millisecond
	t.Cleanup(c.http.HTTPClient.CloseIdleConnections)
	return c
}

func TestNewClient_RequiresSite(t *testing.T) {
	_, err := NewClient(config.GetDefaultConfig())
	assert.Error(t, err)
}

func TestClient_FetchSquare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/wc_square/settings", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)
		_, _ = io.WriteString(w, `{"is_connected": true, "environment": "sandbox", "enable_inventory_sync": "yes"}`)
	}))
	defer srv.Close()

	s, err := newTestClient(t, srv).FetchSquare(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsConnected)
	assert.Equal(t, "sandbox", s.Environment)
	assert.Equal(t, "yes", s.Raw["enable_inventory_sync"])
}

func TestClient_SaveGateway(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/wc/v3/wc_square/payment_settings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(t, srv).SaveGateway(context.Background(), GatewaySettings{"enabled": true})
	require.NoError(t, err)
	assert.Equal(t, true, got["enabled"])
}

func TestClient_SaveSquareKeepsUnknownFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	s := SquareSettings{IsConnected: true, Raw: map[string]any{"debug_logging_enabled": "no", "is_connected": true}}
	require.NoError(t, newTestClient(t, srv).SaveSquare(context.Background(), s))
	assert.Equal(t, "no", got["debug_logging_enabled"])
	assert.NotContains(t, got, "is_connected")
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"code":"rest_forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).FetchGateway(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 403")
	assert.Contains(t, err.Error(), "rest_forbidden")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ServerErrorIsRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"is_connected": false}`)
	}))
	defer srv.Close()

	s, err := newTestClient(t, srv).FetchSquare(context.Background())
	require.NoError(t, err)
	assert.False(t, s.IsConnected)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).FetchSquare(context.Background())
	assert.Error(t, err)
}
