package metric

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope for every storefront instrument.
const MeterName = "github.com/narender/cellar-store"

const (
	OperationsTotalMetric = "app.operations.total"
	DurationMetric        = "app.operations.duration_milliseconds"
	ErrorsTotalMetric     = "app.operations.errors.total"
)

var (
	meter           = otel.Meter(MeterName)
	operationsTotal metric.Int64Counter
	durationMillis  metric.Float64Histogram
	errorsTotal     metric.Int64Counter
)

// Instruments are created against the global delegating meter, so they start
// exporting once telemetry.Init installs a real provider.
func init() {
	var err error

	operationsTotal, err = meter.Int64Counter(
		OperationsTotalMetric,
		metric.WithDescription("Total number of operations executed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		slog.Error("Failed to initialize operations counter", slog.Any("error", err))
	}

	durationMillis, err = meter.Float64Histogram(
		DurationMetric,
		metric.WithDescription("Duration of operations in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		slog.Error("Failed to initialize duration histogram", slog.Any("error", err))
	}

	errorsTotal, err = meter.Int64Counter(
		ErrorsTotalMetric,
		metric.WithDescription("Total number of operations that resulted in an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		slog.Error("Failed to initialize errors counter", slog.Any("error", err))
	}
}

// RecordOperationMetrics records count, latency and failure of one
// layer/operation pair.
func RecordOperationMetrics(ctx context.Context, layer, operation string, start time.Time, err error, attrs ...attribute.KeyValue) {
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	isError := err != nil

	all := append([]attribute.KeyValue{
		attribute.String("app.layer", layer),
		attribute.String("app.operation", operation),
		attribute.Bool("app.error", isError),
	}, attrs...)
	opt := metric.WithAttributes(all...)

	if operationsTotal != nil {
		operationsTotal.Add(ctx, 1, opt)
	}
	if durationMillis != nil {
		durationMillis.Record(ctx, durationMs, opt)
	}
	if isError && errorsTotal != nil {
		errorsTotal.Add(ctx, 1, opt)
	}
}
