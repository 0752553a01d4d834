package numerator

import (
	"context"
	"time"
)

// Generator hands out sequential batch numbers. Implementations live in the infrastructure layer.
type Generator interface {
	// GetNextNumber returns the next number for cfg in the given period,
	// e.g. MB-2024-00001.
	GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)

	// SetNextNumber moves a sequence forward (used after seeding demo data).
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}
