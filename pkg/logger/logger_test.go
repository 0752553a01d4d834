package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "tcnursery/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestFromContext_AddsTraceFields(t *testing.T) {
	log, logs := observed()
	ctx := WithLogger(context.Background(), log)
	ctx = appctx.WithTrace(ctx, appctx.NewTraceContext("trace-1", "req-1"))

	Info(ctx, "media batch created", "batch", "MB-2024-00001")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "trace-1", fields["trace_id"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "MB-2024-00001", fields["batch"])
	}
}

func TestWithComponent(t *testing.T) {
	log, logs := observed()

	log.WithComponent("seed").Infow("loaded")

	assert.Equal(t, "seed", logs.All()[0].ContextMap()["component"])
}

func TestNew_FallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	assert.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestFromContext_Default(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, NewNop())
}
