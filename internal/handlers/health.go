package handlers

import "net/http"

// HealthCheck reports store connectivity and current cache statistics.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK

	if err := h.store.Health(); err != nil {
		h.logger.Error("store health check failed", err)
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	h.writeJSON(w, httpStatus, map[string]interface{}{
		"status": status,
		"cache":  h.cache.Stats(),
	})
}
