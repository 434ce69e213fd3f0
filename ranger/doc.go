/*
Package ranger assembles and runs a hostcfg server with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New] using a [Config],
most often the one [NewConfig] reads from the environment.

[*Ranger.Guide] begins the web server.
By default, it listens on [DefaultHost][DefaultPort] (localhost:8000).
Stop that web server with [*Ranger.Shutdown],
cancel the context passed to [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - AUTH_TOKEN_HEADER: the request header carrying auth tokens; default: Auth-Token
  - BASE_URL: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT; cf. [hostcfg.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_JSON: log JSON in development too; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO
  - PORT: the port the application should listen on; default: :8000
  - RESOURCES_DIR: the directory holding names.txt, nouns.txt, and adjectives.txt; default: resources
  - SEED_COUNT: how many Configurations a User starts out with; default: 30
  - SENTRY_DSN: the DSN to report errors and panics to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout, as understood by [time.ParseDuration], for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for writing HTTP responses; default: 5s
*/
package ranger
