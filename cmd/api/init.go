package main

import (
	"context"
	"errors"

	"fun-numbers/internal/calculator"
	"fun-numbers/internal/config"
	"fun-numbers/internal/game"
	"fun-numbers/internal/observability"
	"fun-numbers/internal/webhook"
)

// initTelemetry starts the OTLP providers the config enables and creates the
// domain metric instruments. Add new domain InitMetrics calls here as the
// project grows.
func initTelemetry(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.ExportersEnabled {
		// Tracing
		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		// Metrics
		metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, metricShutdown)
	}

	if cfg.LogsEnabled {
		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	for _, initMetrics := range []func() error{
		calculator.InitMetrics,
		game.InitMetrics,
		webhook.InitMetrics,
	} {
		if err := initMetrics(); err != nil {
			shutdown(ctx)
			return nil, err
		}
	}

	return shutdown, nil
}
