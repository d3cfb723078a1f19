package observability

import (
	"context"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging tees Logger into an OTLP log exporter; stdout output is kept.
// Call it after InitLogger so the configured level applies to both cores.
func InitLogging(ctx context.Context, serviceName string) (func(context.Context) error, error) {

	exporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(
			sdklog.NewBatchProcessor(exporter),
		),
	)

	stdout := Logger.Core()
	otelCore := otelzap.NewCore(serviceName, otelzap.WithLoggerProvider(provider))

	// The bridge core has no level of its own; gate it with stdout's.
	Logger = zap.New(zapcore.NewTee(stdout, levelGated{Core: otelCore, enabler: stdout}))

	return provider.Shutdown, nil
}

// levelGated filters a core by another core's level.
type levelGated struct {
	zapcore.Core
	enabler zapcore.LevelEnabler
}

func (l levelGated) Enabled(lvl zapcore.Level) bool {
	return l.enabler.Enabled(lvl) && l.Core.Enabled(lvl)
}

func (l levelGated) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if l.Enabled(e.Level) {
		return ce.AddCore(e, l)
	}
	return ce
}

func (l levelGated) With(fields []zapcore.Field) zapcore.Core {
	return levelGated{Core: l.Core.With(fields), enabler: l.enabler}
}
