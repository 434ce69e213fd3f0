/*
Package logger provides logging to a hostcfg server by defining the required behavior in [Logger]
and providing an implementation of it over [log/slog] with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
An [AppLogger] emits a message only when its [log/slog.Handler] is enabled for that level,
so the handler configured by calling code decides verbosity and format.

Each message may carry a [*LogContext].
Its set fields are logged under the "log_context" key:

	time=2026-10-15T12:00:00.000Z level=WARN source=api/configurations.go:58 msg="Configuration tiger not found." log_context.error="Configuration tiger not found." log_context.request.method=GET

# SkipLogger

Sometimes the file and line number in a log need to point further up the stack than the caller,
e.g., when a responder logs on behalf of a handler.
[SkipLogger] sets the number of frames to skip back in order to reach the desired caller.

# Sentry

[NewSentryLogger] wraps a [SkipLogger], additionally reporting warnings and errors
whose [LogContext] holds an error.
*/
package logger
