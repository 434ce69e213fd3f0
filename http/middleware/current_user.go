package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/xy-planning-network/hostcfg"
)

// A TokenValidator resolves an auth token to the User it was issued to.
type TokenValidator interface {
	Validate(token string) (hostcfg.User, error)
}

// CurrentUser reads the auth token from the header named by header,
// and, when the token is valid, stashes its User in the request context under hostcfg.CurrentUserKey.
//
// CurrentUser never rejects a request itself.
// Handlers decide how a missing or invalid token is reported;
// see CurrentUserFromContext.
//
// If v is nil or header is empty, NoopAdapter returns and this middleware does nothing.
func CurrentUser(header string, v TokenValidator) Adapter {
	if v == nil || header == "" {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(header))
			if token == "" {
				h.ServeHTTP(w, r)
				return
			}

			user, err := v.Validate(token)
			if err != nil {
				h.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), hostcfg.CurrentUserKey, user)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// CurrentUserFromContext retrieves the User CurrentUser stashed in ctx.
func CurrentUserFromContext(ctx context.Context) (hostcfg.User, bool) {
	u, ok := ctx.Value(hostcfg.CurrentUserKey).(hostcfg.User)
	return u, ok
}
