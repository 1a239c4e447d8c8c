// Package storage defines the durable record store behind the cache.
//
// The store is an external collaborator: the cache never calls it.
// Callers follow the cache-aside pattern - consult the cache, load from
// the store on a miss, then populate the cache.
package storage

import "time"

// Storage is the contract every record store backend implements.
type Storage interface {
	// Load returns the content stored for the given memory, or a
	// not-found error (errors.IsNotFound) when no record exists.
	Load(agentID, memoryType, memoryKey string) (map[string]interface{}, error)

	// Save inserts or replaces the record for the given memory.
	Save(agentID, memoryType, memoryKey string, content map[string]interface{}) error

	// Delete removes the record and reports whether it existed.
	Delete(agentID, memoryType, memoryKey string) (bool, error)

	// ListAgent returns all records belonging to an agent.
	ListAgent(agentID string) ([]*MemoryRecord, error)

	// Health checks the backend connection.
	Health() error

	// Close releases the backend connection.
	Close() error
}

// MemoryRecord is a durable agent memory as returned by ListAgent.
type MemoryRecord struct {
	AgentID    string                 `json:"agent_id"`
	MemoryType string                 `json:"memory_type"`
	MemoryKey  string                 `json:"memory_key"`
	Content    map[string]interface{} `json:"content"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// StorageConfig is backend-specific configuration.
type StorageConfig interface {
	Validate() error
	GetType() string
}

// StorageFactory builds a Storage from its configuration.
type StorageFactory interface {
	Create(config StorageConfig) (Storage, error)
	GetType() string
}

// GenericConfig is a map-based StorageConfig used by the top-level
// factory, so this package never imports the backend packages.
type GenericConfig map[string]interface{}

func (gc GenericConfig) Validate() error {
	return nil // backends validate their own typed configs
}

func (gc GenericConfig) GetType() string {
	if t, ok := gc["type"].(string); ok {
		return t
	}
	return "unknown"
}

// GetString returns the string value at key, or "" when absent.
func (gc GenericConfig) GetString(key string) string {
	if v, ok := gc[key].(string); ok {
		return v
	}
	return ""
}
