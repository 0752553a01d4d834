// Package numerator provides the in-memory implementation of batch auto-numbering.
// It implements core/numerator.Generator.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	corenumerator "tcnursery/internal/core/numerator"
)

// Service keeps one counter per sequence key (prefix + reset period).
type Service struct {
	mu       sync.Mutex
	counters map[string]int64
}

var _ corenumerator.Generator = (*Service)(nil)

// New creates an empty numerator.
func New() *Service {
	return &Service{counters: make(map[string]int64)}
}

// GetNextNumber implements corenumerator.Generator.
func (s *Service) GetNextNumber(ctx context.Context, cfg corenumerator.Config, period time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Prefix == "" {
		return "", fmt.Errorf("numerator: empty prefix")
	}

	key := buildKey(cfg, period)

	s.mu.Lock()
	s.counters[key]++
	next := s.counters[key]
	s.mu.Unlock()

	return formatNumber(cfg, period, next), nil
}

// SetNextNumber makes the following GetNextNumber return value.
// Sequences only move forward.
func (s *Service) SetNextNumber(ctx context.Context, cfg corenumerator.Config, period time.Time, value int64) error {
	if value < 1 {
		return fmt.Errorf("numerator: next value must be positive, got %d", value)
	}
	key := buildKey(cfg, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if value-1 > s.counters[key] {
		s.counters[key] = value - 1
	}
	return nil
}

// buildKey creates the sequence key based on config and period.
func buildKey(cfg corenumerator.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case corenumerator.ResetMonth:
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case corenumerator.ResetYear:
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

func formatNumber(cfg corenumerator.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts the counter from a formatted number, -1 if it has none.
func ParseNumber(formatted string) int64 {
	i := strings.LastIndex(formatted, "-")
	if i < 0 || i == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[i+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}
