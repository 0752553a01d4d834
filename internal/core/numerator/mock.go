package numerator

import (
	"context"
	"time"
)

// MockGenerator is a test implementation of Generator.
type MockGenerator struct {
	GetNextNumberFunc func(ctx context.Context, cfg Config, period time.Time) (string, error)
	SetNextNumberFunc func(ctx context.Context, cfg Config, period time.Time, value int64) error
}

// GetNextNumber implements Generator.
func (m *MockGenerator) GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error) {
	if m.GetNextNumberFunc != nil {
		return m.GetNextNumberFunc(ctx, cfg, period)
	}
	return cfg.Prefix + "-MOCK-00001", nil
}

// SetNextNumber implements Generator.
func (m *MockGenerator) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	if m.SetNextNumberFunc != nil {
		return m.SetNextNumberFunc(ctx, cfg, period, value)
	}
	return nil
}

var _ Generator = (*MockGenerator)(nil)
