package domain

import (
	"context"
	"fmt"
	"sync"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
	"tcnursery/internal/domain/filter"
	"tcnursery/pkg/logger"
)

// RegisterService provides the business operations shared by every register:
// CRUD over the register's collection plus the filter bar and record selector.
//
// Writes are serialized: a write's before-hooks, the store mutation and its
// after-hooks run as one unit, so hooks that check the collection
// (uniqueness, stock) see no concurrent write of the same register.
type RegisterService[T entity.Entity[T]] struct {
	repo  Repository[T]
	def   Definition[T]
	hooks *HookRegistry[T]

	writeMu sync.Mutex
}

// NewRegisterService creates a new register service.
func NewRegisterService[T entity.Entity[T]](repo Repository[T], def Definition[T]) *RegisterService[T] {
	return &RegisterService[T]{
		repo:  repo,
		def:   def,
		hooks: NewHookRegistry[T](),
	}
}

// Hooks returns the hook registry for external registration.
func (s *RegisterService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Definition returns the register definition.
func (s *RegisterService[T]) Definition() Definition[T] {
	return s.def
}

func (s *RegisterService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *RegisterService[T]) normalizeGetErr(err error, recordID id.ID) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.def.Name, recordID.String())
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.def.Name).WithDetail("id", recordID.String())
}

// Create validates and appends a new record.
func (s *RegisterService[T]) Create(ctx context.Context, record T) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// Before-create hooks fill generated fields (batch numbers), so they run first.
	if err := s.hooks.Run(ctx, BeforeCreate, record); err != nil {
		return err
	}
	if err := record.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("create %s: %w", s.def.Name, err)
	}

	if err := s.hooks.Run(ctx, AfterCreate, record); err != nil {
		logger.Warn(ctx, "after-create hook failed", "register", s.def.Name, "error", err)
	}
	return nil
}

// GetByID retrieves a record by ID.
func (s *RegisterService[T]) GetByID(ctx context.Context, recordID id.ID) (T, error) {
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return record, s.normalizeGetErr(err, recordID)
	}
	return record, nil
}

// Update validates and replaces an existing record.
func (s *RegisterService[T]) Update(ctx context.Context, record T) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.hooks.Run(ctx, BeforeUpdate, record); err != nil {
		return err
	}
	if err := record.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.repo.Update(ctx, record); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("update %s: %w", s.def.Name, err)
	}

	if err := s.hooks.Run(ctx, AfterUpdate, record); err != nil {
		logger.Warn(ctx, "after-update hook failed", "register", s.def.Name, "error", err)
	}
	return nil
}

// Delete removes a record.
func (s *RegisterService[T]) Delete(ctx context.Context, recordID id.ID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return s.normalizeGetErr(err, recordID)
	}

	if err := s.hooks.Run(ctx, BeforeDelete, record); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, recordID); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("delete %s: %w", s.def.Name, err)
	}

	if err := s.hooks.Run(ctx, AfterDelete, record); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "register", s.def.Name, "error", err)
	}
	return nil
}

// Records returns the whole collection in insertion order.
func (s *RegisterService[T]) Records(ctx context.Context) ([]T, error) {
	records, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.def.Name, err)
	}
	return records, nil
}

// List applies advanced filters, then paginates.
func (s *RegisterService[T]) List(ctx context.Context, f ListFilter) (ListResult[T], error) {
	records, err := s.Records(ctx)
	if err != nil {
		return ListResult[T]{}, err
	}

	matched, err := filter.Apply(records, s.def.Fields, f.AdvancedFilters)
	if err != nil {
		return ListResult[T]{}, err
	}

	return ListResult[T]{
		Items:      paginate(matched, f.Limit, f.Offset),
		TotalCount: int64(len(matched)),
		Limit:      f.Limit,
		Offset:     f.Offset,
	}, nil
}

func paginate[T any](records []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []T{}
	}
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end]
}

// FilterQuery is one interaction with the filter bar: the two selections
// and whether Search was pressed.
type FilterQuery struct {
	Field1 string
	Field2 string
	Search bool
}

// FilterView is everything the filter bar and table need to render.
type FilterView[T any] struct {
	State         filter.State
	Field1Options []filter.Option
	Field2Options []filter.Option
	Items         []T
}

// Filter replays q against a fresh cascade over the current collection.
func (s *RegisterService[T]) Filter(ctx context.Context, q FilterQuery) (FilterView[T], error) {
	records, err := s.Records(ctx)
	if err != nil {
		return FilterView[T]{}, err
	}

	cascade := filter.NewCascade(s.def.Field1.Get, s.def.Field2.Get)
	cascade.SetField1(q.Field1)
	cascade.SetField2(q.Field2)
	if q.Search {
		cascade.Search()
	}

	return FilterView[T]{
		State:         cascade.State(),
		Field1Options: cascade.Field1Options(records),
		Field2Options: cascade.Field2Options(records),
		Items:         cascade.VisibleRecords(records),
	}, nil
}

// Selection is the edit dialog state for one date/identifier pair.
type Selection[T any] struct {
	Date        string
	Identifier  string
	Identifiers []string
	HasRecords  bool
	Record      T
	Found       bool
}

// Select resolves the identifiers available on date and, when identifier is
// given, the record to edit.
func (s *RegisterService[T]) Select(ctx context.Context, date, identifier string) (Selection[T], error) {
	records, err := s.Records(ctx)
	if err != nil {
		return Selection[T]{}, err
	}

	selector := filter.NewSelector(s.def.Date.Get, s.def.Identifier.Get)
	record, found := selector.SelectedRecord(records, date, identifier)

	return Selection[T]{
		Date:        date,
		Identifier:  identifier,
		Identifiers: selector.AvailableIdentifiers(records, date),
		HasRecords:  selector.HasRecordsForDate(records, date),
		Record:      record,
		Found:       found,
	}, nil
}
