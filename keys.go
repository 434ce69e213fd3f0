package hostcfg

type Key string

const (
	// CurrentUserKey stashes the User authenticated by a request's auth token.
	CurrentUserKey Key = "CurrentUserKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "hostcfg context key: " + string(k)
}
