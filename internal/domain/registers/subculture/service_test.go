package subculture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/core/types"
	"tcnursery/internal/domain"
	numeratorimpl "tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/infrastructure/storage/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore[*Transfer]("subculture"), numeratorimpl.New())
}

func TestDefinition_Roles(t *testing.T) {
	assert.Equal(t, map[string]string{
		"field1":     "cropName",
		"field2":     "batchNumber",
		"date":       "date",
		"identifier": "batchNumber",
	}, Definition().Roles())
}

func TestService_NumbersBatches(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first := NewTransfer("2024-03-04", "Banana G9", StageMultiplication)
	require.NoError(t, svc.Create(ctx, first))
	assert.Equal(t, "SC-2024-00001", first.BatchNumber)

	second := NewTransfer("2024-03-11", "Ginger", StageInitiation)
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, "SC-2024-00002", second.BatchNumber)

	manual := NewTransfer("2025-01-06", "Ginger", StageRooting)
	manual.BatchNumber = "SC-LEGACY-7"
	require.NoError(t, svc.Create(ctx, manual))
	assert.Equal(t, "SC-LEGACY-7", manual.BatchNumber)

	next := NewTransfer("2025-01-06", "Turmeric", StageInitiation)
	require.NoError(t, svc.Create(ctx, next))
	assert.Equal(t, "SC-2025-00001", next.BatchNumber)
}

func TestService_MultiplicationRateThroughService(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tr := NewTransfer("2024-03-04", "Banana G9", StageMultiplication)
	tr.MotherBottles = 10
	tr.NewBottles = 40
	tr.Contaminated = 4
	require.NoError(t, svc.Create(ctx, tr))

	stored, err := svc.GetByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, stored.MultiplicationRate().Equal(types.MustQuantity("3.6")), stored.MultiplicationRate().String())

	stored.Contaminated = 10
	require.NoError(t, svc.Update(ctx, stored))

	updated, err := svc.GetByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, updated.MultiplicationRate().Equal(types.MustQuantity("3")), updated.MultiplicationRate().String())
}

func TestService_FilterAndSelect(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, tr := range []*Transfer{
		NewTransfer("2024-03-04", "Banana G9", StageMultiplication),
		NewTransfer("2024-03-04", "Ginger", StageInitiation),
		NewTransfer("2024-03-11", "Banana G9", StageRooting),
	} {
		require.NoError(t, svc.Create(ctx, tr))
	}

	view, err := svc.Filter(ctx, domain.FilterQuery{Field1: "Banana G9", Search: true})
	require.NoError(t, err)
	assert.True(t, view.State.IsFiltered)
	require.Len(t, view.Items, 2)
	require.Len(t, view.Field2Options, 2)
	assert.Equal(t, "SC-2024-00001", view.Field2Options[0].Value)
	assert.Equal(t, "SC-2024-00003", view.Field2Options[1].Value)

	sel, err := svc.Select(ctx, "2024-03-04", "SC-2024-00002")
	require.NoError(t, err)
	assert.Equal(t, []string{"SC-2024-00001", "SC-2024-00002"}, sel.Identifiers)
	require.True(t, sel.Found)
	assert.Equal(t, "Ginger", sel.Record.CropName)
}
