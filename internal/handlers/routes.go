package handlers

import "github.com/gorilla/mux"

// RegisterRoutes attaches all API routes to the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	// Agent memories (cache-aside CRUD)
	api.HandleFunc("/memories/{agentID}/{memoryType}/{memoryKey}", h.GetMemory).Methods("GET")
	api.HandleFunc("/memories/{agentID}/{memoryType}/{memoryKey}", h.PutMemory).Methods("PUT")
	api.HandleFunc("/memories/{agentID}/{memoryType}/{memoryKey}", h.DeleteMemory).Methods("DELETE")
	api.HandleFunc("/memories/{agentID}", h.ListMemories).Methods("GET")

	// Cache diagnostics and maintenance
	api.HandleFunc("/cache/stats", h.GetCacheStats).Methods("GET")
	api.HandleFunc("/cache/entries", h.GetCacheEntries).Methods("GET")
	api.HandleFunc("/cache/cleanup", h.CleanupCache).Methods("POST")
	api.HandleFunc("/cache/clear", h.ClearCache).Methods("POST")
	api.HandleFunc("/cache/agents/{agentID}", h.ClearAgentCache).Methods("DELETE")

	// Health check
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}
