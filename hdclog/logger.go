// File: logger.go
// Role: Config -> zerolog.Logger construction. Level parsing and the
// json/console output-writer switch follow tomtom215-cartographus's
// internal/logging/logger.go; the difference is this returns a value the
// caller owns and injects, rather than mutating a package-level global.

package hdclog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config configures one Logger build.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error,
	// fatal, panic, or disabled. Default: info.
	Level string
	// Format is "json" or "console". Default: json.
	Format string
	// Caller includes the calling file:line in each record.
	Caller bool
	// Timestamp adds a timestamp field to each record. Default: true.
	Timestamp bool
	// Output is the destination writer. Default: os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the package's documented defaults.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

// New builds a zerolog.Logger from cfg, filling in DefaultConfig's values
// for an empty Level or Format and a nil Output. The boolean fields are
// used as given, so a zero Config logs without timestamps.
func New(cfg Config) zerolog.Logger {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(output).Level(parseLevel(cfg.Level))
	builder := logger.With()
	if cfg.Timestamp {
		builder = builder.Timestamp()
	}
	if cfg.Caller {
		builder = builder.Caller()
	}
	return builder.Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	case "", "info":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
