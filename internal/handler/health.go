package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/bbs/internal/logger"
)

const readinessTimeout = 2 * time.Second

// Health is a liveness probe. It never touches storage.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// Ready reports 503 until storage answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}` + "\n"))
		return
	}
	writeJSON(w, map[string]string{"status": "ready"})
}
