// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"encoding/json"
	"time"

	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
	"tcnursery/internal/domain/audit"
	"tcnursery/internal/domain/filter"
)

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Base DTOs ---

// BaseResponse contains the bookkeeping fields of every record.
type BaseResponse struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromRecord creates BaseResponse from entity.Record.
func FromRecord(r entity.Record) BaseResponse {
	return BaseResponse{
		ID:        r.ID.String(),
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// --- Filter bar / record selector ---

// FilterQuery is the query string of the filter bar endpoint.
type FilterQuery struct {
	Field1 string `form:"field1"`
	Field2 string `form:"field2"`
	Search bool   `form:"search"`
}

// FilterStateResponse mirrors the filter bar selections.
type FilterStateResponse struct {
	Field1     string `json:"field1"`
	Field2     string `json:"field2"`
	IsFiltered bool   `json:"isFiltered"`
}

// FilterResponse carries everything the filter bar and table render.
type FilterResponse struct {
	Fields        map[string]string   `json:"fields"`
	State         FilterStateResponse `json:"state"`
	Field1Options []filter.Option     `json:"field1Options"`
	Field2Options []filter.Option     `json:"field2Options"`
	Items         any                 `json:"items"`
	Count         int                 `json:"count"`
}

// FromFilterState converts the cascade state.
func FromFilterState(s filter.State) FilterStateResponse {
	return FilterStateResponse{
		Field1:     s.Field1,
		Field2:     s.Field2,
		IsFiltered: s.IsFiltered,
	}
}

// SelectQuery is the query string of the record selector endpoint.
type SelectQuery struct {
	Date       string `form:"date"`
	Identifier string `form:"identifier"`
}

// SelectResponse is the edit dialog state. Record is null when nothing is selected.
type SelectResponse struct {
	Fields      map[string]string `json:"fields"`
	Date        string            `json:"date"`
	Identifier  string            `json:"identifier"`
	Identifiers []string          `json:"identifiers"`
	HasRecords  bool              `json:"hasRecords"`
	Record      any               `json:"record"`
}

// --- Audit ---

// AuditEntryResponse is one journal entry.
type AuditEntryResponse struct {
	ID        string         `json:"id"`
	EntityID  string         `json:"entityId"`
	Action    audit.Action   `json:"action"`
	RequestID string         `json:"requestId,omitempty"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// FromAuditEntry creates AuditEntryResponse from audit.Entry.
// Undecodable change payloads are passed through as a raw string.
func FromAuditEntry(e audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID.String(),
		EntityID:  e.EntityID.String(),
		Action:    e.Action,
		RequestID: e.RequestID,
		Changes:   decodeChanges(e.Changes),
		CreatedAt: e.CreatedAt,
	}
}

func decodeChanges(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"raw": string(raw)}
	}
	return m
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}
