package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/quaggy/edge/internal/httpx"
	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/features"
	"github.com/quaggy/edge/internal/modules/users"
)

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log       zerolog.Logger
	cache     *features.Cache
	userStore *users.Store
	sessions  *auth.SessionStore
	startedAt time.Time
}

// NewSystemHandlers creates system handlers
func NewSystemHandlers(log zerolog.Logger, cache *features.Cache, userStore *users.Store, sessions *auth.SessionStore) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		cache:     cache,
		userStore: userStore,
		sessions:  sessions,
		startedAt: time.Now(),
	}
}

// HandleHealth handles GET /api/health
// Reports process and store health: uptime, system load, cache
// occupancy, user and session counts.
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.systemLoad()
	stats := h.cache.Stats()

	httpx.WriteValid(w, map[string]any{
		"health": map[string]any{
			"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
			"cpu_percent":    cpuPercent,
			"memory_percent": memPercent,
			"cache":          stats,
			"users":          h.userStore.Len(),
			"sessions":       h.sessions.Len(),
		},
	})
}

// systemLoad samples CPU and memory usage. Failures degrade to zero
// rather than failing the health endpoint.
func (h *SystemHandlers) systemLoad() (float64, float64) {
	var cpuValue float64
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil || len(cpuPercent) == 0 {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
	} else {
		cpuValue = cpuPercent[0]
	}

	var memValue float64
	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
	} else {
		memValue = memStat.UsedPercent
	}

	return cpuValue, memValue
}
