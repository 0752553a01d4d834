package incubation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/numerator"
	"tcnursery/internal/domain"
	"tcnursery/internal/domain/filter"
	"tcnursery/internal/infrastructure/storage/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore[*Batch]("incubation"), &numerator.MockGenerator{})
}

func TestBatch_Validate(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewBatch("2024-04-10", "Banana", 120).Validate(ctx))
	assert.Error(t, NewBatch("2024-04-10", "", 120).Validate(ctx))
	assert.Error(t, NewBatch("2024-04-10", "Banana", -1).Validate(ctx))

	b := NewBatch("2024-04-10", "Banana", 120)
	b.LightHours = 25
	assert.Error(t, b.Validate(ctx))
}

func TestService_CreateUsesNumerator(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	b := NewBatch("2024-04-10", "Banana", 120)
	require.NoError(t, svc.Create(ctx, b))
	assert.Equal(t, "IN-MOCK-00001", b.BatchNumber)
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	b := NewBatch("2024-04-10", "Banana", 120)
	b.BatchNumber = "IN-2024-00001"
	require.NoError(t, svc.Create(ctx, b))

	edit, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	stale := edit.Clone()

	edit.Bottles = 118
	require.NoError(t, svc.Update(ctx, edit))
	assert.Equal(t, 2, edit.Version)

	stale.Bottles = 100
	err = svc.Update(ctx, stale)
	assert.True(t, apperror.IsConcurrentModification(err))

	require.NoError(t, svc.Delete(ctx, b.ID))
	_, err = svc.GetByID(ctx, b.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(svc.Delete(ctx, b.ID)))
}

func TestService_ListAdvancedFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for i, crop := range []string{"Banana", "Ginger", "Banana", "Aloe"} {
		b := NewBatch("2024-04-1"+string(rune('0'+i)), crop, 10*(i+1))
		b.BatchNumber = "IN-" + crop + "-" + string(rune('0'+i))
		require.NoError(t, svc.Create(ctx, b))
	}

	res, err := svc.List(ctx, domain.ListFilter{
		AdvancedFilters: []filter.Item{{Field: "cropName", Operator: filter.Equal, Value: "Banana"}},
		Limit:           1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalCount)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2024-04-10", res.Items[0].Date)

	res, err = svc.List(ctx, domain.ListFilter{
		AdvancedFilters: []filter.Item{{Field: "bottles", Operator: filter.InList, Value: []any{"20", "40"}}},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Ginger", res.Items[0].CropName)
	assert.Equal(t, "Aloe", res.Items[1].CropName)

	_, err = svc.List(ctx, domain.ListFilter{
		AdvancedFilters: []filter.Item{{Field: "colour", Operator: filter.Equal, Value: "x"}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetHTTPStatus(err))
}
