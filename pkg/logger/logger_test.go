package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "supplierintake/internal/core/context"
)

func TestFromContext_AddsTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := &Logger{zap.New(core).Sugar()}

	trace := appctx.NewTraceContext("req-1")
	ctx := appctx.WithTrace(WithLogger(context.Background(), base), trace)

	Info(ctx, "delivery value calculated", "delivery_value", 615.0)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "delivery value calculated", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, trace.TraceID, fields["trace_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, 615.0, fields["delivery_value"])
}

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := (&Logger{zap.New(core).Sugar()}).WithComponent("manifest")

	l.Infow("parsed")
	l.Debugw("dropped below level")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "manifest", logs.All()[0].ContextMap()["component"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}
