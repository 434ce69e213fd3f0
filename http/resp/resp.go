package resp

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/logger"
)

// newLogContext helps structure a logger.LogContext from the provided parts.
func newLogContext(r *http.Request, err error, data any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := new(logger.LogContext)
	if r != nil {
		ctx.Request = r
		if u, ok := r.Context().Value(hostcfg.CurrentUserKey).(hostcfg.User); ok {
			ctx.User = u
		}
	}

	if err != nil {
		ctx.Error = err
	}

	if mapped, ok := data.(map[string]any); ok {
		ctx.Data = mapped
	}

	return ctx
}

// isBusiness reports whether err is one of the closed set of failures
// a caller can provoke, as opposed to something having gone wrong with the API itself.
func isBusiness(err error) bool {
	var e *hostcfg.Error
	return errors.As(err, &e)
}
