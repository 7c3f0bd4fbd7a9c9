package api

import (
	"net/http"
	"time"

	"github.com/erazemk/najdeno/internal/store"
)

// StatsHandler serves board statistics.
type StatsHandler struct {
	Store *store.Store
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.Stats(r.Context())
	if err != nil {
		storeError(w, err, "fetching statistics")
		return
	}
	jsonResponse(w, http.StatusOK, envelope{Success: true, Data: stats})
}

// Health handles GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, envelope{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
