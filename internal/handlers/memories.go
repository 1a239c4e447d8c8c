package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"memory-cache/internal/common/errors"
)

// GetMemory returns a single memory, cache-aside.
func (h *Handlers) GetMemory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	content, err := h.memories.Get(vars["agentID"], vars["memoryType"], vars["memoryKey"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, content)
}

// PutMemory stores a memory in the record store and refreshes the cache.
// The body must be a JSON object.
func (h *Handlers) PutMemory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var content map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		h.writeError(w, errors.ValidationError("request body must be a JSON object"))
		return
	}

	if err := h.memories.Save(vars["agentID"], vars["memoryType"], vars["memoryKey"], content); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// DeleteMemory removes a memory from the store and the cache.
func (h *Handlers) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	existed, err := h.memories.Delete(vars["agentID"], vars["memoryType"], vars["memoryKey"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !existed {
		h.writeError(w, errors.NotFoundError("memory"))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListMemories returns all durable records for an agent.
func (h *Handlers) ListMemories(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	records, err := h.memories.List(vars["agentID"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"agent_id": vars["agentID"],
		"count":    len(records),
		"memories": records,
	})
}
