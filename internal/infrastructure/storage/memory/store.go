// Package memory provides the in-memory, copy-on-write record store backing every register.
//
// Readers never see a collection change under them: each mutation builds a new
// slice and swaps it in, so a snapshot taken earlier stays valid.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
)

var tracer = otel.Tracer("tcnursery/storage/memory")

// Store holds one register's collection in insertion order.
type Store[T entity.Entity[T]] struct {
	name string

	mu      sync.RWMutex
	records []T
}

// NewStore creates an empty store for the named register.
func NewStore[T entity.Entity[T]](name string) *Store[T] {
	return &Store[T]{name: name, records: []T{}}
}

// Create appends a copy of record. A nil ID is assigned, a duplicate ID is rejected.
func (s *Store[T]) Create(ctx context.Context, record T) error {
	base := record.Base()
	if id.IsNil(base.ID) {
		base.ID = id.New()
	}
	if base.Version == 0 {
		base.Version = 1
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = time.Now().UTC()
		base.UpdatedAt = base.CreatedAt
	}

	return s.mutate(ctx, "create", base.ID, func(current []T) ([]T, error) {
		if indexOf(current, base.ID) >= 0 {
			return nil, apperror.NewDuplicate(s.name, "id", base.ID.String())
		}
		next := make([]T, len(current), len(current)+1)
		copy(next, current)
		return append(next, record.Clone()), nil
	})
}

// GetByID returns a copy of the record.
func (s *Store[T]) GetByID(ctx context.Context, recordID id.ID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.records, recordID)
	if i < 0 {
		return zero, apperror.NewNotFound(s.name, recordID.String())
	}
	return s.records[i].Clone(), nil
}

// Update replaces the stored record when versions agree and bumps record's version.
func (s *Store[T]) Update(ctx context.Context, record T) error {
	base := record.Base()

	return s.mutate(ctx, "update", base.ID, func(current []T) ([]T, error) {
		i := indexOf(current, base.ID)
		if i < 0 {
			return nil, apperror.NewNotFound(s.name, base.ID.String())
		}
		stored := current[i].Base()
		if stored.Version != base.Version {
			return nil, apperror.NewConcurrentModification(s.name, base.ID.String()).
				WithDetail("expectedVersion", stored.Version).
				WithDetail("actualVersion", base.Version)
		}

		base.CreatedAt = stored.CreatedAt
		base.Touch()

		next := make([]T, len(current))
		copy(next, current)
		next[i] = record.Clone()
		return next, nil
	})
}

// Delete removes the record.
func (s *Store[T]) Delete(ctx context.Context, recordID id.ID) error {
	return s.mutate(ctx, "delete", recordID, func(current []T) ([]T, error) {
		i := indexOf(current, recordID)
		if i < 0 {
			return nil, apperror.NewNotFound(s.name, recordID.String())
		}
		next := make([]T, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...), nil
	})
}

// Snapshot returns copies of all records in insertion order.
func (s *Store[T]) Snapshot(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	current := s.records
	s.mu.RUnlock()

	out := make([]T, len(current))
	for i, r := range current {
		out[i] = r.Clone()
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// mutate swaps in the collection produced by fn. fn must not modify current.
func (s *Store[T]) mutate(ctx context.Context, op string, recordID id.ID, fn func(current []T) ([]T, error)) error {
	ctx, span := tracer.Start(ctx, "memory."+op,
		trace.WithAttributes(
			attribute.String("register", s.name),
			attribute.String("record.id", recordID.String()),
		))
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "context done")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, fmt.Sprintf("%s %s failed", op, s.name))
		return err
	}
	s.records = next
	span.SetAttributes(attribute.Int("register.size", len(next)))
	return nil
}

func indexOf[T entity.Entity[T]](records []T, recordID id.ID) int {
	for i, r := range records {
		if r.Base().ID == recordID {
			return i
		}
	}
	return -1
}
