package logger

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/xy-planning-network/hostcfg"
)

const logContextKey = "log_context"

var _ slog.LogValuer = LogContext{}

// LogUser is the interface exposing attributes of a user to a LogContext.
type LogUser interface {
	// GetName retrieves the application's identifier for a user.
	GetName() string
}

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the call site the log reports, e.g., for goroutines
	// logging on behalf of the code that spawned them.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request

	// User is the user whose session was active during the logging event.
	User LogUser
}

// LogValue groups the set fields of a LogContext, eliding zero values.
// Passwords in request query params are masked.
//
// LogValue implements [log/slog.LogValuer].
func (lc LogContext) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	if lc.Caller != "" {
		attrs = append(attrs, slog.String("caller", lc.Caller))
	}

	if lc.Data != nil {
		attrs = append(attrs, slog.Any("data", lc.Data))
	}

	if lc.Error != nil {
		attrs = append(attrs, slog.String("error", lc.Error.Error()))
	}

	if lc.Request != nil {
		reqAttrs := []any{slog.String("method", lc.Request.Method)}
		if lc.Request.URL != nil {
			u := *lc.Request.URL
			q := u.Query()
			hostcfg.Mask(q, "password")
			u.RawQuery = q.Encode()
			reqAttrs = append(reqAttrs, slog.String("url", u.String()))
		}

		if id, ok := lc.Request.Context().Value(hostcfg.RequestIDKey).(string); ok {
			reqAttrs = append(reqAttrs, slog.String("id", id))
		}

		attrs = append(attrs, slog.Group("request", reqAttrs...))
	}

	if lc.User != nil && lc.User.GetName() != "" {
		attrs = append(attrs, slog.Group("user", slog.String("name", lc.User.GetName())))
	}

	return slog.GroupValue(attrs...)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", trimSource(file), line)
}
