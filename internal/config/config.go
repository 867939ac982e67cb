package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/deliveryroute/dijkstra"
	"github.com/katalvlaran/deliveryroute/matrix"
)

// Config aggregates application configuration values.
type Config struct {
	Route   RouteConfig
	Logging LoggingConfig
}

// RouteConfig governs graph limits and route printing.
type RouteConfig struct {
	MaxVertices   int
	PathSeparator string
	ZeroAsAbsent  bool
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
// A value that is set but does not parse is an error.
func Load() (Config, error) {
	cfg := Config{
		Route: RouteConfig{
			MaxVertices:   matrix.DefaultMaxVertices,
			PathSeparator: valueOrDefault("ROUTE_PATH_SEPARATOR", dijkstra.DefaultSeparator),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL value %q", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT value %q", cfg.Logging.Format)
	}
	if v := os.Getenv("LOG_INCLUDE_CALLER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_INCLUDE_CALLER value %q: %w", v, err)
		}
		cfg.Logging.IncludeCaller = b
	}

	if v := os.Getenv("ROUTE_MAX_VERTICES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROUTE_MAX_VERTICES value %q: %w", v, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("ROUTE_MAX_VERTICES %d must be positive", n)
		}
		cfg.Route.MaxVertices = n
	}

	if v := os.Getenv("ROUTE_ZERO_AS_ABSENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROUTE_ZERO_AS_ABSENT value %q: %w", v, err)
		}
		cfg.Route.ZeroAsAbsent = b
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
