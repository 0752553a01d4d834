package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corenumerator "tcnursery/internal/core/numerator"
)

func TestService_GetNextNumber_Sequence(t *testing.T) {
	svc := New()
	ctx := context.Background()
	period := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.DefaultConfig("MB")

	first, err := svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	second, err := svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)

	assert.Equal(t, "MB-2024-00001", first)
	assert.Equal(t, "MB-2024-00002", second)
}

func TestService_GetNextNumber_ResetsPerYear(t *testing.T) {
	svc := New()
	ctx := context.Background()
	cfg := corenumerator.DefaultConfig("SMP")

	_, err := svc.GetNextNumber(ctx, cfg, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	next, err := svc.GetNextNumber(ctx, cfg, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "SMP-2025-00001", next)
}

func TestService_SetNextNumber(t *testing.T) {
	svc := New()
	ctx := context.Background()
	period := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := corenumerator.Config{Prefix: "INV", PadWidth: 3, ResetPeriod: corenumerator.ResetNever}

	require.NoError(t, svc.SetNextNumber(ctx, cfg, period, 40))
	got, err := svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-040", got)

	// never moves backwards
	require.NoError(t, svc.SetNextNumber(ctx, cfg, period, 2))
	got, err = svc.GetNextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-041", got)

	assert.Error(t, svc.SetNextNumber(ctx, cfg, period, 0))
}

func TestService_Concurrent(t *testing.T) {
	svc := New()
	ctx := context.Background()
	period := time.Now()
	cfg := corenumerator.DefaultConfig("SC")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := svc.GetNextNumber(ctx, cfg, period)
			assert.NoError(t, err)
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestService_Errors(t *testing.T) {
	svc := New()
	_, err := svc.GetNextNumber(context.Background(), corenumerator.Config{}, time.Now())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.GetNextNumber(ctx, corenumerator.DefaultConfig("MB"), time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(12), ParseNumber("MB-2024-00012"))
	assert.Equal(t, int64(7), ParseNumber("INV-007"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
}
