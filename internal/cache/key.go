package cache

import "fmt"

// Key identifies a cached memory by agent, memory type and memory key.
// It is a comparable struct used directly as the map key: equality is
// field-wise, never a concatenated string, so a separator appearing
// inside one part cannot make two distinct keys collide.
type Key struct {
	AgentID    string
	MemoryType string
	MemoryKey  string
}

// NewKey builds a Key from its three parts.
func NewKey(agentID, memoryType, memoryKey string) Key {
	return Key{AgentID: agentID, MemoryType: memoryType, MemoryKey: memoryKey}
}

// String renders the key for logs and diagnostic exports. It is never
// used for identity.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.AgentID, k.MemoryType, k.MemoryKey)
}
