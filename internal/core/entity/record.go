// Package entity defines the fields every nursery record shares and the
// contract the generic register service relies on.
package entity

import (
	"context"
	"time"

	"tcnursery/internal/core/id"
)

// Validatable is implemented by records that support self-validation.
// Validation checks internal invariants only (required fields, date layout).
type Validatable interface {
	Validate(ctx context.Context) error
}

// Entity is the constraint for register records. T is the record's own pointer type.
type Entity[T any] interface {
	Validatable

	// Base exposes the shared bookkeeping fields for the store.
	Base() *Record

	// Clone returns an independent copy so stored snapshots are never aliased.
	Clone() T
}

// Record contains the bookkeeping fields of every register row.
type Record struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `json:"id"`

	// Version for optimistic locking (incremented on each update)
	Version int `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRecord creates a Record with a generated ID.
func NewRecord() Record {
	now := time.Now().UTC()
	return Record{
		ID:        id.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Base implements Entity for every type embedding Record.
func (r *Record) Base() *Record {
	return r
}

// Touch bumps the version and update timestamp.
func (r *Record) Touch() {
	r.Version++
	r.UpdatedAt = time.Now().UTC()
}
