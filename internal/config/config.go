// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"fun-numbers/internal/responses"
)

type Config struct {
	Port        string
	ServiceName string
	LogLevel    string

	// LogsEnabled tees the zap logger into an OTLP log exporter.
	LogsEnabled bool
	// ExportersEnabled turns on OTLP trace and metric export.
	ExportersEnabled bool

	// ResponsesFile optionally overrides reply pools from a YAML file.
	ResponsesFile string

	ShutdownTimeout time.Duration
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) (bool, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", k, v)
	}
	return b, nil
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	d, err := cast.ToDurationE(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", k, v)
	}
	return d, nil
}

// Load reads the configuration. Malformed values are errors rather than
// silently replaced by defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "fun-numbers"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ResponsesFile: getEnv("RESPONSES_FILE", ""),
	}

	var err error
	if cfg.LogsEnabled, err = getBool("OTEL_LOGS_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.ExportersEnabled, err = getBool("OTEL_EXPORTERS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Responses returns the reply table: the embedded defaults, overridden by
// ResponsesFile when set.
func (c *Config) Responses() (responses.Table, error) {
	if c.ResponsesFile == "" {
		return responses.Default(), nil
	}
	return responses.Load(c.ResponsesFile)
}
