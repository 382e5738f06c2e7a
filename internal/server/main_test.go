package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"devconnector/internal/cache"
	"devconnector/internal/config"
	"devconnector/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		JWTSecret:       testSecret,
		TokenTTLSeconds: 3600,
		BcryptCost:      4,
		DBDriver:        config.DriverSQLite,
		FeatureFlags:    "live_feed=on",
		Env:             "test",
	}
}

// newTestServer returns a server over a private sqlite database and no Redis.
func newTestServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()
	cache.SetClient(nil)

	cfg := testConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "api.db")
	for _, m := range mutate {
		m(cfg)
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.shutdownFn()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return s
}

type apiResponse struct {
	Status int
	Body   []byte
}

func (r apiResponse) decode(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, dst), string(r.Body))
}

func (r apiResponse) msg(t *testing.T) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	r.decode(t, &body)
	return body.Msg
}

func (r apiResponse) errorMsgs(t *testing.T) []string {
	t.Helper()
	var body struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	r.decode(t, &body)
	out := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		out = append(out, e.Msg)
	}
	return out
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{Status: resp.StatusCode, Body: raw}
}

func register(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
	var body struct {
		Token string `json:"token"`
	}
	resp.decode(t, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
