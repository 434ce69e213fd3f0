package hostcfg

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// An Environment is a different context in which a hostcfg server operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

// Valid asserts e is one of the known Environments.
func (e Environment) Valid() error {
	switch e {
	case Development, Production, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsTesting() bool { return e == Testing }

// EnvVarOrBool returns true or false when the environment variable for key
// is "true" or "false", ignoring case, and def otherwise.
func EnvVarOrBool(key string, def bool) bool {
	return envVarOr(key, def, func(val string) (bool, error) {
		switch strings.ToLower(val) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, ErrBadFormat
		}
	})
}

// EnvVarOrDuration parses the environment variable for key as a [time.Duration],
// returning def when it is unset or malformed.
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	return envVarOr(key, def, time.ParseDuration)
}

// EnvVarOrEnv reads the environment variable for key as an [Environment], ignoring case,
// returning def when it names no known [Environment].
func EnvVarOrEnv(key string, def Environment) Environment {
	return envVarOr(key, def, func(val string) (Environment, error) {
		env := Environment(strings.ToUpper(val))
		return env, env.Valid()
	})
}

// EnvVarOrInt parses the environment variable for key as an int,
// returning def when it is unset or malformed.
func EnvVarOrInt(key string, def int) int {
	return envVarOr(key, def, strconv.Atoi)
}

// EnvVarOrLogLevel parses the environment variable for key as a [log/slog.Level],
// returning def when it is unset or names no level.
func EnvVarOrLogLevel(key string, def slog.Level) slog.Level {
	return envVarOr(key, def, NewLogLevel)
}

// EnvVarOrString gets the environment variable for key, or def when it is unset or empty.
func EnvVarOrString(key, def string) string {
	return envVarOr(key, def, func(val string) (string, error) { return val, nil })
}

// envVarOr parses the environment variable for key with parse.
// An empty value or a parse failure yields def.
func envVarOr[T any](key string, def T, parse func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	v, err := parse(val)
	if err != nil {
		return def
	}

	return v
}
