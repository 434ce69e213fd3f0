package ranger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/hostcfg/configuration"
	"github.com/xy-planning-network/hostcfg/logger"
)

// A RangerOption configures a *Ranger under construction.
// Options run before New fills in defaults for anything left unset.
type RangerOption func(rng *Ranger) error

// WithContext sets the context.Context the web server hands every request.
// Canceling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		rng.ctx = ctx
		return nil
	}
}

// WithGenerator sets the configuration.Generator seeding each User's Configurations,
// in place of word lists read from Config.ResourcesDir.
func WithGenerator(gen configuration.Generator) RangerOption {
	return func(rng *Ranger) error {
		if gen == nil {
			return fmt.Errorf("nil generator")
		}

		rng.gen = gen
		return nil
	}
}

// WithHTTPLogger sets the *slog.Logger every request is logged with.
func WithHTTPLogger(l *slog.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.httpLog = l
		return nil
	}
}

// WithLogger sets the logger.Logger the application logs with.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithLogOutput sets where default loggers write.
// By default, os.Stdout.
func WithLogOutput(w io.Writer) RangerOption {
	return func(rng *Ranger) error {
		if w == nil {
			return fmt.Errorf("nil log output")
		}

		rng.out = w
		return nil
	}
}

// WithServer sets the *http.Server Guide runs.
// Its Handler is replaced by the Ranger's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}
