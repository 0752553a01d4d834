package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	appctx "tcnursery/internal/core/context"
	"tcnursery/internal/core/entity"
	"tcnursery/internal/core/id"
	"tcnursery/internal/domain"
)

// Attach journals every create, update and delete of svc's register.
//
// Creates and deletes record the full row; updates record only the fields
// that changed, computed against the stored row before the write.
func Attach[T entity.Entity[T]](svc *domain.RegisterService[T], journal Journal) {
	entityType := svc.Definition().Name
	hooks := svc.Hooks()

	var (
		mu      sync.Mutex
		pending = make(map[id.ID]map[string]any)
	)

	hooks.OnAfterCreate(func(ctx context.Context, record T) error {
		return logState(ctx, journal, entityType, ActionCreate, record)
	})

	hooks.OnBeforeUpdate(func(ctx context.Context, record T) error {
		stored, err := svc.GetByID(ctx, record.Base().ID)
		if err != nil {
			// The update itself reports the missing record.
			return nil
		}
		oldState, err := toMap(stored)
		if err != nil {
			return err
		}
		newState, err := toMap(record)
		if err != nil {
			return err
		}
		delete(oldState, "version")
		delete(oldState, "updatedAt")
		delete(newState, "version")
		delete(newState, "updatedAt")

		mu.Lock()
		pending[record.Base().ID] = Diff(oldState, newState)
		mu.Unlock()
		return nil
	})

	hooks.OnAfterUpdate(func(ctx context.Context, record T) error {
		mu.Lock()
		changes, ok := pending[record.Base().ID]
		delete(pending, record.Base().ID)
		mu.Unlock()
		if !ok {
			return logState(ctx, journal, entityType, ActionUpdate, record)
		}
		return logChanges(ctx, journal, entityType, record.Base().ID, ActionUpdate, changes)
	})

	hooks.OnAfterDelete(func(ctx context.Context, record T) error {
		return logState(ctx, journal, entityType, ActionDelete, record)
	})
}

func logState[T entity.Entity[T]](ctx context.Context, journal Journal, entityType string, action Action, record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", entityType, err)
	}
	return journal.Log(ctx, Entry{
		EntityType: entityType,
		EntityID:   record.Base().ID,
		Action:     action,
		RequestID:  appctx.GetRequestID(ctx),
		Changes:    data,
	})
}

func logChanges(ctx context.Context, journal Journal, entityType string, entityID id.ID, action Action, changes map[string]any) error {
	data, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}
	return journal.Log(ctx, Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		RequestID:  appctx.GetRequestID(ctx),
		Changes:    data,
	})
}
