package webhook

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// actionsTotal counts handled turns per route, scraped from /metrics.
var actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "funnumbers_webhook_actions_total",
	Help: "Webhook turns handled, by action.",
}, []string{"action"})

var errorCounter metric.Int64Counter = noop.Int64Counter{}

// InitMetrics registers the webhook's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("webhook")

	var err error
	errorCounter, err = meter.Int64Counter("webhook.errors.total",
		metric.WithDescription("Total number of rejected webhook requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}
	return nil
}
