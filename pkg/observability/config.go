// Package observability wires structured logging, OpenTelemetry tracing and
// build metrics for leafgen.
package observability

import "log/slog"

const defaultShutdownTimeoutSec = 5

// Config holds observability settings.
type Config struct {
	ServiceName    string
	ServiceVersion string

	// OTLPEndpoint is the gRPC collector address. Empty selects no-op
	// tracer and meter providers.
	OTLPEndpoint string
	OTLPHeaders  map[string]string
	OTLPInsecure bool

	// MetricsFile, when set, receives a Prometheus textfile snapshot of all
	// metrics at shutdown.
	MetricsFile string

	LogLevel slog.Level
	LogJSON  bool

	ShutdownTimeoutSec int
}

// DefaultConfig returns a Config with no export and warn-level text logs.
func DefaultConfig() Config {
	return Config{
		ServiceName:        "leafgen",
		LogLevel:           slog.LevelWarn,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
