package ranger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/configuration"
	"github.com/xy-planning-network/hostcfg/http/api"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"
	defaultEnv        = hostcfg.Development

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = slog.LevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// API defaults
	resourcesDirEnvVar  = "RESOURCES_DIR"
	DefaultResourcesDir = "resources"
	tokenHeaderEnvVar   = "AUTH_TOKEN_HEADER"
	seedCountEnvVar     = "SEED_COUNT"
)

// A Config holds every setting a Ranger needs to assemble a hostcfg server.
type Config struct {
	// BaseURL is the origin CORS allows; empty disables CORS.
	BaseURL string

	Env      hostcfg.Environment
	LogJSON  bool
	LogLevel slog.Level

	// SentryDSN enables reporting to Sentry when set.
	SentryDSN string

	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ResourcesDir holds the word lists seeding Configurations.
	ResourcesDir string

	// TokenHeader names the request header carrying auth tokens.
	TokenHeader string

	// SeedCount is how many Configurations a User starts out with.
	SeedCount int
}

// NewConfig snapshots the environment variables configuring a Ranger,
// applying defaults for any left unset.
func NewConfig() Config {
	return Config{
		BaseURL:      os.Getenv(BaseURLEnvVar),
		Env:          hostcfg.EnvVarOrEnv(environmentEnvVar, defaultEnv),
		LogJSON:      hostcfg.EnvVarOrBool(logJSONEnvVar, defaultLogJSON),
		LogLevel:     hostcfg.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl),
		SentryDSN:    os.Getenv(sentryDsnEnvVar),
		Host:         hostcfg.EnvVarOrString(hostEnvVar, DefaultHost),
		Port:         hostcfg.EnvVarOrString(portEnvVar, DefaultPort),
		ReadTimeout:  hostcfg.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: hostcfg.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:  hostcfg.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ResourcesDir: hostcfg.EnvVarOrString(resourcesDirEnvVar, DefaultResourcesDir),
		TokenHeader:  hostcfg.EnvVarOrString(tokenHeaderEnvVar, api.DefaultTokenHeader),
		SeedCount:    hostcfg.EnvVarOrInt(seedCountEnvVar, configuration.DefaultSeedCount),
	}
}

// Addr joins Host and Port into the address the web server listens on.
// A Port without a leading colon gets one.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}

	if port[0] != ':' {
		port = ":" + port
	}

	return c.Host + port
}

// Valid reports whether c can assemble a Ranger.
func (c Config) Valid() error {
	if err := c.Env.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", hostcfg.ErrBadConfig, c.Env)
	}

	if c.ResourcesDir == "" {
		return fmt.Errorf("%w: no resources directory", hostcfg.ErrBadConfig)
	}

	if c.TokenHeader == "" {
		return fmt.Errorf("%w: no auth token header", hostcfg.ErrBadConfig)
	}

	if c.SeedCount < 0 {
		return fmt.Errorf("%w: seed count %d is negative", hostcfg.ErrBadConfig, c.SeedCount)
	}

	return nil
}
