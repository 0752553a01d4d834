// Package audit journals register changes through lifecycle hooks.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tcnursery/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID         id.ID           `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   id.ID           `json:"entityId"`
	Action     Action          `json:"action"`
	RequestID  string          `json:"requestId,omitempty"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Journal stores audit entries.
type Journal interface {
	// Log appends an entry
	Log(ctx context.Context, entry Entry) error

	// List returns the newest entries of entityType first; limit 0 means all
	List(ctx context.Context, entityType string, limit int) ([]Entry, error)

	// History returns the newest entries of one record first
	History(ctx context.Context, entityType string, entityID id.ID, limit int) ([]Entry, error)
}

// Diff calculates the difference between old and new record states.
func Diff(oldState, newState map[string]any) map[string]any {
	changes := make(map[string]any)

	for key, newVal := range newState {
		oldVal, exists := oldState[key]
		if !exists {
			changes[key] = map[string]any{"old": nil, "new": newVal}
		} else if !equal(oldVal, newVal) {
			changes[key] = map[string]any{"old": oldVal, "new": newVal}
		}
	}

	for key, oldVal := range oldState {
		if _, exists := newState[key]; !exists {
			changes[key] = map[string]any{"old": oldVal, "new": nil}
		}
	}

	return changes
}

// equal compares two decoded JSON values.
func equal(a, b any) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

// toMap flattens a record into its JSON field map.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return m, nil
}
