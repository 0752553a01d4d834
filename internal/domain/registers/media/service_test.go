package media

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
	return NewService(memory.NewStore[*Preparation]("media"), numeratorimpl.New())
}

func prep(date, name string) *Preparation {
	p := NewPreparation(date, "MS-01", name)
	p.VolumeLiters = types.MustQuantity("2.5")
	p.PH = types.MustQuantity("5.8")
	return p
}

func TestPreparation_Validate(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, prep("2024-03-01", "MS").Validate(ctx))

	bad := prep("01/03/2024", "MS")
	assert.Error(t, bad.Validate(ctx))

	noName := prep("2024-03-01", "")
	assert.Error(t, noName.Validate(ctx))

	acid := prep("2024-03-01", "MS")
	acid.PH = types.MustQuantity("14.5")
	err := acid.Validate(ctx)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "ph", appErr.Details["field"])
}

func TestService_CreateGeneratesBatchNumbers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first := prep("2024-03-01", "MS")
	second := prep("2024-03-02", "MS")
	manual := prep("2024-03-02", "WPM")
	manual.BatchNumber = "LEGACY-7"

	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))
	require.NoError(t, svc.Create(ctx, manual))

	assert.Equal(t, "MB-2024-00001", first.BatchNumber)
	assert.Equal(t, "MB-2024-00002", second.BatchNumber)
	assert.Equal(t, "LEGACY-7", manual.BatchNumber)
}

func TestService_FilterAndSelect(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, p := range []*Preparation{
		prep("2024-03-01", "MS"),
		prep("2024-03-01", "WPM"),
		prep("2024-03-02", "MS"),
	} {
		require.NoError(t, svc.Create(ctx, p))
	}

	view, err := svc.Filter(ctx, domain.FilterQuery{Field1: "MS", Search: true})
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "MB-2024-00001", view.Items[0].BatchNumber)
	assert.Equal(t, "MB-2024-00003", view.Items[1].BatchNumber)
	require.Len(t, view.Field2Options, 2)
	assert.Equal(t, "MB-2024-00001", view.Field2Options[0].Value)

	sel, err := svc.Select(ctx, "2024-03-01", "MB-2024-00002")
	require.NoError(t, err)
	assert.Equal(t, []string{"MB-2024-00001", "MB-2024-00002"}, sel.Identifiers)
	require.True(t, sel.Found)
	assert.Equal(t, "WPM", sel.Record.MediaName)
}
