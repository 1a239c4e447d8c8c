// Package sqlite implements the record store on SQLite, the backend the
// service ships with by default.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"memory-cache/internal/common/errors"
	"memory-cache/internal/storage"
)

type Adapter struct {
	db     *sql.DB
	config *Config
}

func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SQLite config: %w", err)
	}

	db, err := sql.Open("sqlite3", config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	adapter := &Adapter{
		db:     db,
		config: config,
	}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return adapter, nil
}

func (a *Adapter) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS agent_memories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			agent_id TEXT NOT NULL,
			memory_type TEXT NOT NULL,
			memory_key TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(agent_id, memory_type, memory_key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_agent_memories_agent
			ON agent_memories(agent_id)`,
	}

	for _, query := range queries {
		if _, err := a.db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (a *Adapter) Load(agentID, memoryType, memoryKey string) (map[string]interface{}, error) {
	var raw string
	err := a.db.QueryRow(
		`SELECT content FROM agent_memories
		 WHERE agent_id = ? AND memory_type = ? AND memory_key = ?`,
		agentID, memoryType, memoryKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundError("memory")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load memory: %w", err)
	}

	var content map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to decode memory content: %w", err)
	}
	return content, nil
}

func (a *Adapter) Save(agentID, memoryType, memoryKey string, content map[string]interface{}) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode memory content: %w", err)
	}

	_, err = a.db.Exec(
		`INSERT INTO agent_memories (agent_id, memory_type, memory_key, content)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(agent_id, memory_type, memory_key)
		 DO UPDATE SET content = excluded.content, updated_at = CURRENT_TIMESTAMP`,
		agentID, memoryType, memoryKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}
	return nil
}

func (a *Adapter) Delete(agentID, memoryType, memoryKey string) (bool, error) {
	result, err := a.db.Exec(
		`DELETE FROM agent_memories
		 WHERE agent_id = ? AND memory_type = ? AND memory_key = ?`,
		agentID, memoryType, memoryKey,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete memory: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (a *Adapter) ListAgent(agentID string) ([]*storage.MemoryRecord, error) {
	rows, err := a.db.Query(
		`SELECT agent_id, memory_type, memory_key, content, updated_at
		 FROM agent_memories WHERE agent_id = ?
		 ORDER BY memory_type, memory_key`,
		agentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	defer rows.Close()

	var records []*storage.MemoryRecord
	for rows.Next() {
		var record storage.MemoryRecord
		var raw string
		if err := rows.Scan(&record.AgentID, &record.MemoryType, &record.MemoryKey, &raw, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory row: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &record.Content); err != nil {
			return nil, fmt.Errorf("failed to decode memory content: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

func (a *Adapter) Health() error {
	return a.db.Ping()
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
