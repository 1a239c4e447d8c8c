// Package handlers exposes the HTTP API: agent-memory CRUD backed by the
// cache-aside manager, plus cache diagnostics and maintenance endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"memory-cache/internal/cache"
	"memory-cache/internal/common/errors"
	"memory-cache/internal/common/logging"
	"memory-cache/internal/memories"
	"memory-cache/internal/storage"
)

type Handlers struct {
	cache    *cache.Cache
	memories *memories.Manager
	store    storage.Storage
	logger   logging.Logger
}

func New(c *cache.Cache, manager *memories.Manager, store storage.Storage, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Handlers{
		cache:    c,
		memories: manager,
		store:    store,
		logger:   logger.WithFields(logging.String("component", "handlers")),
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
