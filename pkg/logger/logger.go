package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// New returns the process-wide structured logger: JSON on stdout, tagged
// with the service name. Level follows APP_ENV — local and dev log at debug,
// staging and production at info.
func New(appEnv string) *slog.Logger {
	level := slog.LevelInfo
	switch appEnv {
	case "local", "dev":
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "fabrika-api")
}

// ShutdownFlush is the graceful-shutdown hook. stdout needs no flushing;
// the hook exists so a buffered sink can be swapped in without touching main.
func ShutdownFlush(_ context.Context, _ time.Duration) error { return nil }
