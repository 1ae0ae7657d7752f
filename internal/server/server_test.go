package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaggy/edge/internal/config"
	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/features"
	"github.com/quaggy/edge/internal/modules/users"
)

func newTestServer(t *testing.T) (*Server, *http.Cookie) {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	userStore := users.NewStore(logger)
	sessions := auth.NewSessionStore(time.Hour, logger)
	cache := features.NewCache(logger)
	engine := features.NewEngine(cache, logger)

	u := users.New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("hunter22"))
	userStore.Commit(u)
	token := sessions.Create("quaggy")

	srv := New(Config{
		Port:      0,
		Log:       logger,
		Config:    &config.Config{Port: 0},
		DevMode:   true,
		UserStore: userStore,
		Sessions:  sessions,
		Cache:     cache,
		Engine:    engine,
	})
	return srv, &http.Cookie{Name: auth.CookieName, Value: token}
}

func serve(srv *Server, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPing(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, "GET", "/api/ping?hello=world", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := body(t, w)
	assert.Equal(t, "pong", resp["message"])
	payload := resp["payload"].(map[string]any)
	assert.Equal(t, "world", payload["hello"])

	w = serve(srv, "POST", "/api/ping", `{"echo": 1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = body(t, w)
	payload = resp["payload"].(map[string]any)
	assert.Equal(t, float64(1), payload["echo"])
}

func TestSecurePingGating(t *testing.T) {
	srv, cookie := newTestServer(t)

	w := serve(srv, "GET", "/api/secure_ping", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, float64(-6), body(t, w)["status_code"])

	w = serve(srv, "GET", "/api/secure_ping", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "secure_pong", body(t, w)["message"])
}

func TestInsecurePingGating(t *testing.T) {
	srv, cookie := newTestServer(t)

	w := serve(srv, "GET", "/api/insecure_ping", "", cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, float64(-6), body(t, w)["status_code"])

	w = serve(srv, "GET", "/api/insecure_ping", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "insecure_pong", body(t, w)["message"])
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, "GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := body(t, w)
	assert.Equal(t, float64(0), resp["status_code"])
	health := resp["health"].(map[string]any)
	assert.Contains(t, health, "uptime_seconds")
	assert.Contains(t, health, "cache")
	assert.Equal(t, float64(1), health["users"])
	assert.Equal(t, float64(1), health["sessions"])
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, "GET", "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
