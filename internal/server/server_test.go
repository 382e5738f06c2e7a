package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"devconnector/internal/config"
	"devconnector/internal/notifications"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestHealthChecks(t *testing.T) {
	app := newTestServer(t).App()

	resp := call(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.Status)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	resp = call(t, app, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}

func TestReadiness_RedisDown(t *testing.T) {
	s := newTestServer(t)
	mr := miniredis.RunT(t)
	s.redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = s.redis.Close() })
	mr.Close()

	resp := call(t, s.App(), http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestServer(t).App()
	call(t, app, http.MethodGet, "/health/live", "", nil)

	resp := call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, string(resp.Body), "http_requests_total")
}

func TestNewServerWithDeps_RequiresDatabase(t *testing.T) {
	_, err := NewServerWithDeps(&config.Config{}, nil, nil)
	assert.Error(t, err)
}

func TestShutdown(t *testing.T) {
	s := newTestServer(t)
	_ = s.App()
	require.NoError(t, s.Shutdown(context.Background()))

	_, err := s.hub.Register(uuid.New(), nil)
	assert.ErrorIs(t, err, notifications.ErrHubShutdown)
}
