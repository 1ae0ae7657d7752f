// Package handlers provides HTTP handlers for feature ingestion and
// feature queries.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/domain"
	"github.com/quaggy/edge/internal/httpx"
	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/features"
	"github.com/quaggy/edge/internal/modules/users"
	"github.com/quaggy/edge/internal/validate"
)

// Handler handles feature HTTP requests
type Handler struct {
	cache     *features.Cache
	engine    *features.Engine
	userStore *users.Store
	log       zerolog.Logger
}

// NewHandler creates a new features handler
func NewHandler(cache *features.Cache, engine *features.Engine, userStore *users.Store, log zerolog.Logger) *Handler {
	return &Handler{
		cache:     cache,
		engine:    engine,
		userStore: userStore,
		log:       log.With().Str("handler", "features").Logger(),
	}
}

// HandleDigest handles POST /backend/digest
// Ingests a flat digest produced by the upstream engine. Keys are
// Feature:ItemId:BuyMode:SellMode:HistoryDays; values are raw scalars.
func (h *Handler) HandleDigest(w http.ResponseWriter, r *http.Request) {
	payload := httpx.ParsePayload(r)

	if err := h.cache.Ingest(payload); err != nil {
		h.log.Error().Err(err).Msg("Digest ingestion failed")
		httpx.WriteError(w, r, apierr.Internal())
		return
	}
	httpx.WriteValid(w, nil)
}

// HandleCacheDump handles GET /backend/cache
// Exposes the full nested cache for introspection.
func (h *Handler) HandleCacheDump(w http.ResponseWriter, r *http.Request) {
	httpx.WriteValid(w, map[string]any{"all": h.cache.All()})
}

// HandleGetFeatures handles GET /api/features
// Validates the query parameters as a plan and returns the feature
// vector it addresses. An absent path yields an empty vector.
func (h *Handler) HandleGetFeatures(w http.ResponseWriter, r *http.Request) {
	payload := httpx.ParsePayload(r)

	plan, err := (validate.Plan{}).Validate(payload)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	vector, ok := h.cache.Lookup(plan.BuyMode, plan.SellMode, strconv.Itoa(plan.HistoryDays), strconv.Itoa(plan.Id))
	if !ok {
		vector = domain.FeatureVector{}
	}
	httpx.WriteValid(w, map[string]any{"feature_vector": vector})
}

// HandleApplyFilter handles GET /api/features/filter
// Looks up the named filter on the authenticated user and evaluates it
// against the cache. Results are unsorted.
func (h *Handler) HandleApplyFilter(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UsernameFrom(r.Context())
	payload := httpx.ParsePayload(r)

	filterName, _, err := (validate.String{FieldName: "filter_name", ForbidNone: true}).Validate(payload["filter_name"])
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	user, ok := h.userStore.FindByName(username)
	if !ok {
		httpx.WriteError(w, r, apierr.NeedCredentials())
		return
	}
	filter, ok := user.Filters[filterName]
	if !ok {
		httpx.WriteError(w, r, apierr.ValidationError(filterName+" is not a valid filter for this user"))
		return
	}

	results, err := h.engine.Apply(filter)
	if err != nil {
		h.log.Error().Err(err).Str("filter", filterName).Msg("Filter evaluation failed")
		httpx.WriteError(w, r, apierr.Internal())
		return
	}
	httpx.WriteValid(w, map[string]any{"results": results})
}
