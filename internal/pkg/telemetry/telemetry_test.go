package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("sets the service name", func(t *testing.T) {
		res, err := newResource("bridge-relayer")
		require.NoError(t, err)

		value, ok := res.Set().Value(semconv.ServiceNameKey)
		require.True(t, ok)
		assert.Equal(t, "bridge-relayer", value.AsString())
	})

	t.Run("accepts an empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	t.Cleanup(func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
	})

	t.Run("returns a shutdown function or an exporter error", func(t *testing.T) {
		shutdown, err := Init(context.Background(), "bridge-relayer")
		if err != nil {
			t.Logf("Init() failed without an OTLP endpoint: %v", err)
			return
		}
		require.NotNil(t, shutdown)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			t.Logf("shutdown returned error without an OTLP endpoint: %v", err)
		}
	})
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop(t.Context()))
}

func TestMeter(t *testing.T) {
	original := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(original) })

	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	counter, err := Meter("queueproc").Int64Counter("relayer.submissions")
	require.NoError(t, err)
	counter.Add(t.Context(), 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, InstrumentationScope+"/queueproc", rm.ScopeMetrics[0].Scope.Name)
	assert.Equal(t, "relayer.submissions", rm.ScopeMetrics[0].Metrics[0].Name)
}

func TestTracer(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	otel.SetTracerProvider(sdktrace.NewTracerProvider())

	_, span := Tracer("queueproc").Start(t.Context(), "submit")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
}
