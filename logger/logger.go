package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// LevelFatal sits above [log/slog.LevelError] for failures the process cannot recover from.
const LevelFatal = slog.Level(12)

// The number of frames between the caller of a Logger method and runtime.Callers.
const knownFrames = 3

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	// LogLevel reports the lowest level the Logger emits.
	LogLevel() slog.Level
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

// AppLogger implements Logger by writing through a [*log/slog.Logger].
type AppLogger struct {
	l    *slog.Logger
	skip int
}

// New constructs an *AppLogger writing to l.
// If l is nil, [log/slog.Default] is used.
func New(l *slog.Logger) *AppLogger {
	if l == nil {
		l = slog.Default()
	}

	return &AppLogger{l: l}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *AppLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *AppLogger) Debug(msg string, ctx *LogContext) { l.log(slog.LevelDebug, msg, ctx) }

// Error writes an error log.
func (l *AppLogger) Error(msg string, ctx *LogContext) { l.log(slog.LevelError, msg, ctx) }

// Fatal writes a fatal log.
// Fatal does not exit; calling code decides what a fatal error means.
func (l *AppLogger) Fatal(msg string, ctx *LogContext) { l.log(LevelFatal, msg, ctx) }

// Info writes an info log.
func (l *AppLogger) Info(msg string, ctx *LogContext) { l.log(slog.LevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *AppLogger) Warn(msg string, ctx *LogContext) { l.log(slog.LevelWarn, msg, ctx) }

// LogLevel returns the lowest level enabled on the underlying handler.
func (l *AppLogger) LogLevel() slog.Level {
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.l.Enabled(context.Background(), lvl) {
			return lvl
		}
	}

	return LevelFatal
}

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *AppLogger) Skip() int { return l.skip }

// log builds the record by hand so the source points at the caller of the Logger method
// rather than this package.
func (l *AppLogger) log(level slog.Level, msg string, lc *LogContext) {
	ctx := context.Background()
	if !l.l.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(knownFrames+l.skip, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if lc != nil {
		r.AddAttrs(slog.Any(logContextKey, lc))
	}

	_ = l.l.Handler().Handle(ctx, r)
}
