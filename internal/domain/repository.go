// Package domain provides the generic register service and the contracts its storage must meet.
package domain

import (
	"context"

	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
	"tcnursery/internal/domain/filter"
)

// ListFilter contains filtering options for list operations.
type ListFilter struct {
	// AdvancedFilters are field/operator/value rows, all of which must match
	AdvancedFilters []filter.Item

	// Pagination (Limit 0 = no limit)
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{Limit: 50}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// Repository is the storage contract of one register.
//
// The collection is copy-on-write: Snapshot returns the records in insertion
// order and no later mutation changes a snapshot already handed out.
type Repository[T entity.Entity[T]] interface {
	// Create appends a new record
	Create(ctx context.Context, record T) error

	// GetByID retrieves a copy of the record
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update replaces the record; record's Version must equal the stored one
	Update(ctx context.Context, record T) error

	// Delete removes the record
	Delete(ctx context.Context, id id.ID) error

	// Snapshot returns the whole collection
	Snapshot(ctx context.Context) ([]T, error)
}
