package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/logger"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(); err != nil {
		logger.Log.Error("health check failed", "error", err)
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}
