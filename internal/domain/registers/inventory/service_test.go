package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/core/apperror"
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain"
	numeratorimpl "tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/infrastructure/storage/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore[*Movement]("inventory"), numeratorimpl.New())
}

func TestMovement_Validate(t *testing.T) {
	ctx := context.Background()

	m := NewMovement("2024-02-01", "Agar", "Chemicals", DirectionIn, types.MustQuantity("5"), "kg")
	assert.NoError(t, m.Validate(ctx))

	m.Quantity = types.Zero()
	assert.Error(t, m.Validate(ctx))

	m.Quantity = types.MustQuantity("1")
	m.Direction = "sideways"
	assert.Error(t, m.Validate(ctx))
}

func TestBalances(t *testing.T) {
	movements := []*Movement{
		NewMovement("2024-02-01", "Sucrose", "Chemicals", DirectionIn, types.MustQuantity("25"), "kg"),
		NewMovement("2024-02-01", "Agar", "Chemicals", DirectionIn, types.MustQuantity("5.5"), "kg"),
		NewMovement("2024-02-03", "Agar", "Chemicals", DirectionOut, types.MustQuantity("1.25"), "kg"),
		NewMovement("2024-02-04", "Culture bottles", "Glassware", DirectionIn, types.MustQuantity("500"), "pcs"),
	}

	got := Balances(movements)
	require.Len(t, got, 3)

	assert.Equal(t, "Agar", got[0].ItemName)
	assert.Equal(t, "5.5", got[0].In.String())
	assert.Equal(t, "1.25", got[0].Out.String())
	assert.Equal(t, "4.25", got[0].Quantity.String())
	assert.Equal(t, "Sucrose", got[1].ItemName)
	assert.Equal(t, "Culture bottles", got[2].ItemName)

	assert.Equal(t, "4.25", OnHand(movements, "Agar").String())
	assert.True(t, OnHand(movements, "Charcoal").IsZero())
}

func TestService_ReferencesAndStockCheck(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	receipt := NewMovement("2024-02-01", "Agar", "Chemicals", DirectionIn, types.MustQuantity("5"), "kg")
	require.NoError(t, svc.Create(ctx, receipt))
	assert.Equal(t, "GRN-2024-00001", receipt.Reference)

	issue := NewMovement("2024-02-02", "Agar", "Chemicals", DirectionOut, types.MustQuantity("3"), "kg")
	require.NoError(t, svc.Create(ctx, issue))
	assert.Equal(t, "ISS-2024-00001", issue.Reference)

	tooMuch := NewMovement("2024-02-03", "Agar", "Chemicals", DirectionOut, types.MustQuantity("2.5"), "kg")
	err := svc.Create(ctx, tooMuch)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, "2", appErr.Details["available"])

	// Editing an issue does not count the issue against itself.
	edit, err := svc.GetByID(ctx, issue.ID)
	require.NoError(t, err)
	edit.Quantity = types.MustQuantity("5")
	require.NoError(t, svc.Update(ctx, edit))

	balances, err := svc.Balances(ctx)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.True(t, balances[0].Quantity.IsZero())
}

func TestService_FilterCategoryThenItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, m := range []*Movement{
		NewMovement("2024-02-01", "Agar", "Chemicals", DirectionIn, types.MustQuantity("5"), "kg"),
		NewMovement("2024-02-01", "Jars", "Glassware", DirectionIn, types.MustQuantity("100"), "pcs"),
		NewMovement("2024-02-02", "Sucrose", "Chemicals", DirectionIn, types.MustQuantity("20"), "kg"),
	} {
		require.NoError(t, svc.Create(ctx, m))
	}

	view, err := svc.Filter(ctx, domain.FilterQuery{Field1: "Chemicals"})
	require.NoError(t, err)
	assert.False(t, view.State.IsFiltered)
	assert.Len(t, view.Items, 3)
	require.Len(t, view.Field2Options, 2)
	assert.Equal(t, "Agar", view.Field2Options[0].Value)
	assert.Equal(t, "Sucrose", view.Field2Options[1].Value)

	sel, err := svc.Select(ctx, "2024-02-01", "GRN-2024-00002")
	require.NoError(t, err)
	require.True(t, sel.Found)
	assert.Equal(t, "Jars", sel.Record.ItemName)
}

func TestService_ReceiptChangesKeepStockNonNegative(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	receipt := NewMovement("2024-02-01", "Agar", "Chemicals", DirectionIn, types.MustQuantity("5"), "kg")
	require.NoError(t, svc.Create(ctx, receipt))
	issue := NewMovement("2024-02-02", "Agar", "Chemicals", DirectionOut, types.MustQuantity("4"), "kg")
	require.NoError(t, svc.Create(ctx, issue))

	t.Run("shrinking a receipt below issued stock", func(t *testing.T) {
		edit, err := svc.GetByID(ctx, receipt.ID)
		require.NoError(t, err)
		edit.Quantity = types.MustQuantity("1")

		err = svc.Update(ctx, edit)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
		assert.Equal(t, "4", appErr.Details["requested"])
		assert.Equal(t, "1", appErr.Details["available"])
	})

	t.Run("moving a receipt to another item", func(t *testing.T) {
		edit, err := svc.GetByID(ctx, receipt.ID)
		require.NoError(t, err)
		edit.ItemName = "Sucrose"

		err = svc.Update(ctx, edit)
		assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientStock), "%v", err)
	})

	t.Run("deleting a receipt with issues against it", func(t *testing.T) {
		err := svc.Delete(ctx, receipt.ID)
		assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientStock), "%v", err)
	})

	t.Run("shrinking within stock is allowed", func(t *testing.T) {
		edit, err := svc.GetByID(ctx, receipt.ID)
		require.NoError(t, err)
		edit.Quantity = types.MustQuantity("4")
		require.NoError(t, svc.Update(ctx, edit))
	})

	t.Run("deleting the issue first frees the receipt", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, issue.ID))
		require.NoError(t, svc.Delete(ctx, receipt.ID))
	})

	balances, err := svc.Balances(ctx)
	require.NoError(t, err)
	assert.Empty(t, balances)
}
