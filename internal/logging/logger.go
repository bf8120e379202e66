// Package logging builds the zerolog loggers used across unitconv.
//
// Loggers are configured once per command invocation from the merged
// configuration (file, environment, flags) and carried through
// context.Context. Each log line from a command carries a trace id so one
// invocation can be followed in a shared log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output destinations.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes where and how to log.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when log lines go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when file output was requested but stderr is used instead.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg. File output that cannot be
// opened falls back to stderr and reports why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("creating log directory: %v", err),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("opening log file: %v", err),
		}
	}

	// File output is always JSON; the console writer's escape codes do not belong in files.
	fileCfg := cfg
	fileCfg.Format = FormatJSON
	return LogPathResult{
		Logger:    NewLogger(fileCfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintFallbackWarning tells the user that file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}

type traceIDKey struct{}

// ContextWithTraceID stores a trace id in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored in ctx, if any.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace id in ctx or a new ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}
