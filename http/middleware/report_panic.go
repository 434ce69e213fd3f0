package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/logger"
)

// ReportPanic reports panics to Sentry before re-panicking,
// so Recover still writes the response.
//
// In development and testing, ReportPanic does nothing.
func ReportPanic(env hostcfg.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
	})

	return sh.Handle
}

// Recover turns a panic into a 500 with a JSON message body, logging the panic with l.
//
// If l is nil, the panic is still recovered but goes unlogged.
func Recover(l logger.Logger) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if l != nil {
					err := fmt.Errorf("%w: panic: %v", hostcfg.ErrUnexpected, rec)
					l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
				}

				w.Header().Set("Content-Type", "application/json; charset=UTF-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": http.StatusText(http.StatusInternalServerError)})
			}()

			h.ServeHTTP(w, r)
		})
	}
}
