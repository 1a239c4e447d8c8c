package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Cache diagnostics and maintenance handlers.

// GetCacheStats returns the cache statistics snapshot.
func (h *Handlers) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.cache.Stats())
}

// GetCacheEntries returns a flat key -> data export of the non-expired
// cache contents, optionally filtered by the agent_id query parameter.
// It carries no internal metadata and does not disturb cache state.
func (h *Handlers) GetCacheEntries(w http.ResponseWriter, r *http.Request) {
	agentID := r.URL.Query().Get("agent_id")

	entries := h.cache.Entries(agentID)
	flat := make(map[string]map[string]interface{}, len(entries))
	for key, data := range entries {
		flat[key.String()] = data
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(flat),
		"entries": flat,
	})
}

// CleanupCache sweeps expired entries out of the cache on demand.
func (h *Handlers) CleanupCache(w http.ResponseWriter, r *http.Request) {
	removed := h.cache.CleanupExpired()
	h.writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// ClearAgentCache drops an agent's cached entries; durable records are
// untouched.
func (h *Handlers) ClearAgentCache(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	removed := h.memories.Invalidate(vars["agentID"])
	h.writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// ClearCache empties the cache and resets its counters.
func (h *Handlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.cache.ClearAll()
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
