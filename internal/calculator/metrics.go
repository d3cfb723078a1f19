package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	calcCounter   metric.Int64Counter     = noop.Int64Counter{}
	calcHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter  metric.Int64Counter     = noop.Int64Counter{}
)

// InitMetrics registers the calculator's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	calcCounter, err = meter.Int64Counter("calculator.calculations.total",
		metric.WithDescription("Total number of calculations by path and outcome"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("calculator.calculation.duration",
		metric.WithDescription("Duration of calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
