package ranger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/configuration"
	"github.com/xy-planning-network/hostcfg/http/api"
	"github.com/xy-planning-network/hostcfg/http/middleware"
	"github.com/xy-planning-network/hostcfg/http/resp"
	"github.com/xy-planning-network/hostcfg/http/router"
	"github.com/xy-planning-network/hostcfg/logger"
	"github.com/xy-planning-network/hostcfg/session"
	"github.com/xy-planning-network/hostcfg/user"
)

const shutdownTimeout = 5 * time.Second

// A Ranger assembles the components of a hostcfg server and runs it.
type Ranger struct {
	*router.Router

	cfg      Config
	configs  *configuration.Store
	ctx      context.Context
	gen      configuration.Generator
	httpLog  *slog.Logger
	l        logger.Logger
	out      io.Writer
	sessions *session.Service
	srv      *http.Server
	users    *user.Store
}

// New constructs a Ranger from cfg and the provided options.
// Options run first; New fills in defaults for whatever they leave unset.
//
// Unless WithGenerator is passed, New reads the word lists in cfg.ResourcesDir,
// failing if any is missing or empty.
func New(cfg Config, opts ...RangerOption) (*Ranger, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}

	r := &Ranger{cfg: cfg, out: os.Stdout}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", hostcfg.ErrBadConfig, err)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	if r.l == nil {
		r.l = defaultAppLogger(cfg, r.out)
	}

	if r.httpLog == nil {
		r.httpLog = defaultHTTPLogger(cfg, r.out)
	}

	if r.gen == nil {
		gen, err := configuration.LoadWords(os.DirFS(cfg.ResourcesDir))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", hostcfg.ErrBadConfig, err)
		}

		r.gen = gen
	}

	r.users = user.NewStore()
	r.sessions = session.NewService(r.users)
	r.configs = configuration.NewStore(r.gen, configuration.WithSeedCount(cfg.SeedCount))

	h := api.NewHandler(
		r.users,
		r.sessions,
		r.configs,
		api.WithResponder(resp.NewResponder(resp.WithLogger(r.l))),
		api.WithTokenHeader(cfg.TokenHeader),
	)

	r.Router = defaultRouter([]middleware.Adapter{
		middleware.RequestID(),
		middleware.LogRequest(r.httpLog),
		middleware.Recover(r.l),
		middleware.ReportPanic(cfg.Env),
		middleware.CORS(cfg.BaseURL, cfg.TokenHeader),
		middleware.CurrentUser(cfg.TokenHeader, r.sessions),
	})
	r.HandleRoutes(h.Routes())

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, cfg)
	}
	r.srv.Handler = r.Router

	r.l.Debug(fmt.Sprintf("configured for %s", cfg.Env), nil)

	return r, nil
}

// EmitLogger exposes the logger.Logger the Ranger logs with.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Guide begins the web server.
//
// These, canceling the context.Context passed to WithContext, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		r.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			r.l.Error(err.Error(), &logger.LogContext{Error: err})
			return err
		}

		return nil

	case <-ctx.Done():
		r.l.Info("received shutdown signal", nil)
		return r.Shutdown()
	}
}

// Shutdown shuts down the web server, waiting on open requests for up to five seconds.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
