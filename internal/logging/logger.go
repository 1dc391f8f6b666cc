// Package logging provides structured, correlation-ID-aware logging for world
// generation runs.
package logging

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	loggerKey contextKey = "logger"
)

// Init configures the global zerolog logger. verbose switches the console
// writer to debug level; otherwise info and above are emitted.
func Init(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// WithRun attaches a run ID (one per Generate call) to a new context-scoped
// logger, so every stage log line can be correlated back to a single world.
func WithRun(ctx context.Context, runID uuid.UUID) context.Context {
	logger := log.With().Str("run_id", runID.String()).Logger()
	ctx = context.WithValue(ctx, runIDKey, runID.String())
	ctx = context.WithValue(ctx, loggerKey, logger)
	return ctx
}

// FromContext returns the logger scoped to ctx, or the global logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return &logger
	}
	return &log.Logger
}

// RunID returns the run ID stashed in ctx by WithRun, or "".
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// StageTimer logs a stage's start and, via the returned func, its completion
// and duration.
func StageTimer(ctx context.Context, stage string) func() {
	logger := FromContext(ctx)
	start := time.Now()
	logger.Debug().Str("stage", stage).Msg("stage started")
	return func() {
		logger.Debug().Str("stage", stage).Dur("elapsed", time.Since(start)).Msg("stage completed")
	}
}

// Warn logs a warning with structured fields, used for the taxonomy's
// "logged, but recovered" error class (A* exhaustion falling back to a
// lake).
func Warn(ctx context.Context, message string, fields map[string]any) {
	event := FromContext(ctx).Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// LogError logs a fatal-class error with its underlying cause.
func LogError(ctx context.Context, err error, message string) {
	FromContext(ctx).Error().Err(err).Msg(message)
}
