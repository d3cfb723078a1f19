package game

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	turnCounter      metric.Int64Counter = noop.Int64Counter{}
	completedCounter metric.Int64Counter = noop.Int64Counter{}
	errorCounter     metric.Int64Counter = noop.Int64Counter{}
)

// InitMetrics registers the game's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("game")

	var err error

	turnCounter, err = meter.Int64Counter("game.turns.total",
		metric.WithDescription("Total number of instructions issued"),
		metric.WithUnit("{turn}"),
	)
	if err != nil {
		return fmt.Errorf("creating turn counter: %w", err)
	}

	completedCounter, err = meter.Int64Counter("game.completed.total",
		metric.WithDescription("Total number of games that reached the reveal"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return fmt.Errorf("creating completed counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("game.errors.total",
		metric.WithDescription("Total number of unreadable game states and rejected requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
