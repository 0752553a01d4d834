// Package id provides identifiers for nursery records.
// Records use UUIDv7 so ids sort by creation time.
package id

import (
	"github.com/google/uuid"
)

// ID identifies a record in any register.
type ID = uuid.UUID

// New generates a new UUIDv7, falling back to a random UUID.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error. Tests only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil checks if ID is zero-value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
