package hardening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	numeratorimpl "tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/infrastructure/storage/memory"
)

func TestBatch_SurvivalRate(t *testing.T) {
	b := NewBatch("2024-07-01", StagePrimary, "Banana", 400)
	b.Mortality = 30

	assert.Equal(t, 370, b.Survivors())
	assert.Equal(t, "0.925", b.SurvivalRate().String())

	empty := NewBatch("2024-07-01", StagePrimary, "Banana", 0)
	assert.True(t, empty.SurvivalRate().IsZero())
}

func TestBatch_Validate(t *testing.T) {
	ctx := context.Background()

	b := NewBatch("2024-07-01", StageSecondary, "Banana", 100)
	assert.NoError(t, b.Validate(ctx))

	b.Mortality = 101
	assert.Error(t, b.Validate(ctx))

	wrong := NewBatch("2024-07-01", "tertiary", "Banana", 100)
	assert.Error(t, wrong.Validate(ctx))
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore[*Batch]("hardening"), numeratorimpl.New())

	p1 := NewBatch("2024-07-01", StagePrimary, "Banana", 300)
	p1.Mortality = 20
	p2 := NewBatch("2024-07-03", StagePrimary, "Ginger", 100)
	p2.Mortality = 20
	s1 := NewBatch("2024-07-20", StageSecondary, "Banana", 200)

	for _, b := range []*Batch{p1, p2, s1} {
		require.NoError(t, svc.Create(ctx, b))
	}
	assert.Equal(t, "HB-2024-00001", p1.BatchNumber)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, StagePrimary, summary[0].Stage)
	assert.Equal(t, 2, summary[0].Batches)
	assert.Equal(t, 400, summary[0].Plants)
	assert.Equal(t, "0.9", summary[0].SurvivalRate.String())

	assert.Equal(t, 1, summary[1].Batches)
	assert.Equal(t, "1", summary[1].SurvivalRate.String())
}
