package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing.
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe replaces the global logger with one that records entries in memory.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func fieldsOf(entry observer.LoggedEntry) map[string]any {
	return entry.ContextMap()
}

func TestInit(t *testing.T) {
	t.Run("initializes with a valid level", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			require.NoError(t, Init(level))
			assert.NotNil(t, baseLogger)
		}
	})

	t.Run("rejects an invalid level", func(t *testing.T) {
		resetLogger()
		assert.Error(t, Init("verbose"))
		assert.Nil(t, baseLogger)
	})

	t.Run("initializes only once", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("debug"))
		first := baseLogger

		require.NoError(t, Init("error"))
		assert.Same(t, first, baseLogger)
	})
}

func TestSync(t *testing.T) {
	t.Run("is a no-op without init", func(t *testing.T) {
		resetLogger()
		assert.NoError(t, Sync())
	})

	t.Run("does not panic after init", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))
		assert.NotPanics(t, func() { _ = Sync() })
	})
}

func TestDerive(t *testing.T) {
	t.Run("attaches fields to every entry", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "queue.entry_id", "1-2-0xabc")
		Info(ctx, "entry claimed", "retry_count", 0)

		require.Equal(t, 1, logs.Len())
		fields := fieldsOf(logs.All()[0])
		assert.Equal(t, "1-2-0xabc", fields["queue.entry_id"])
		assert.EqualValues(t, 0, fields["retry_count"])
	})

	t.Run("stacks derived contexts", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "chain.id", int64(1))
		ctx = Derive(ctx, "block.number", uint64(42))
		Warn(ctx, "catch-up slow")

		fields := fieldsOf(logs.All()[0])
		assert.EqualValues(t, 1, fields["chain.id"])
		assert.EqualValues(t, 42, fields["block.number"])
	})

	t.Run("works before init", func(t *testing.T) {
		resetLogger()
		assert.NotPanics(t, func() {
			ctx := Derive(context.Background(), "k", "v")
			Info(ctx, "dropped")
		})
	})
}

func TestTraceFields(t *testing.T) {
	t.Run("adds trace and span ids when a span is active", func(t *testing.T) {
		logs := observe(t)

		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
		spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(t.Context(), spanCtx)

		Error(ctx, "submission failed")

		fields := fieldsOf(logs.All()[0])
		assert.Equal(t, traceID.String(), fields["trace_id"])
		assert.Equal(t, spanID.String(), fields["span_id"])
	})

	t.Run("omits trace fields without a span", func(t *testing.T) {
		logs := observe(t)

		Debug(t.Context(), "tick")

		fields := fieldsOf(logs.All()[0])
		assert.NotContains(t, fields, "trace_id")
		assert.NotContains(t, fields, "span_id")
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t)
	ctx := t.Context()

	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	assert.Panics(t, func() { Panic(ctx, "p") })
}

func TestFatal(t *testing.T) {
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		Fatal(context.Background(), "fatal error for test", "key", "value")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stdout.String(), `"level":"fatal"`)
	assert.Contains(t, stdout.String(), `"key":"value"`)
}
