package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/users"
)

const validFilterJSON = `{
	"deal_filter": {
		"HistoryDays": 5,
		"BuyMode": "Instant",
		"SellMode": "Bid",
		"SortBy": "MeanProfit",
		"SortOrder": "Desc",
		"Types": ["CraftingMaterial", "Bag", "Mini", "Gizmo"],
		"Bounds": {
			"MeanProfit": {"Min": 0.1},
			"OurBuyPrice": {"Min": 70},
			"NumBuyOrders": {"Min": 200},
			"NumSellOrders": {"Min": 200}
		}
	}
}`

type fixture struct {
	router   *chi.Mux
	sessions *auth.SessionStore
	cookie   *http.Cookie
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	userStore := users.NewStore(logger)
	sessions := auth.NewSessionStore(time.Hour, logger)

	u := users.New()
	u.Name = "quaggy"
	require.NoError(t, u.SetPassword("hunter22"))
	userStore.Commit(u)
	token := sessions.Create("quaggy")

	router := chi.NewRouter()
	NewHandler(userStore, logger).RegisterRoutes(router, sessions)
	return &fixture{
		router:   router,
		sessions: sessions,
		cookie:   &http.Cookie{Name: auth.CookieName, Value: token},
	}
}

func (f *fixture) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authed {
		req.AddCookie(f.cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func filtersFrom(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "filters")
	return body["filters"].(map[string]any)
}

func TestFiltersRequireLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "GET", "/api/filters", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, "POST", "/api/filters", validFilterJSON, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetFiltersEmpty(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "GET", "/api/filters", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, filtersFrom(t, w))
}

func TestAddFilters(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "POST", "/api/filters", validFilterJSON, true)
	require.Equal(t, http.StatusOK, w.Code)

	stored := filtersFrom(t, w)
	require.Contains(t, stored, "deal_filter")
	fil := stored["deal_filter"].(map[string]any)
	assert.Equal(t, float64(5), fil["HistoryDays"])
	assert.Equal(t, "Instant", fil["BuyMode"])

	// The filter persists across requests.
	w = f.do(t, "GET", "/api/filters", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, filtersFrom(t, w), "deal_filter")
}

func TestAddFiltersOverwritesByName(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, "POST", "/api/filters", validFilterJSON, true)
	require.Equal(t, http.StatusOK, w.Code)

	replacement := strings.Replace(validFilterJSON, `"HistoryDays": 5`, `"HistoryDays": 10`, 1)
	w = f.do(t, "POST", "/api/filters", replacement, true)
	require.Equal(t, http.StatusOK, w.Code)

	stored := filtersFrom(t, w)
	require.Len(t, stored, 1)
	fil := stored["deal_filter"].(map[string]any)
	assert.Equal(t, float64(10), fil["HistoryDays"])
}

func TestAddFiltersRejectsInvalid(t *testing.T) {
	f := newFixture(t)

	invalid := strings.Replace(validFilterJSON, `"Instant"`, `"Sideways"`, 1)
	w := f.do(t, "POST", "/api/filters", invalid, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(-7), body["status_code"])

	// Nothing was stored.
	w = f.do(t, "GET", "/api/filters", "", true)
	assert.Empty(t, filtersFrom(t, w))
}
