package ranger

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/http/middleware"
	"github.com/xy-planning-network/hostcfg/http/router"
	"github.com/xy-planning-network/hostcfg/logger"
)

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
func defaultAppLogger(cfg Config, output io.Writer) logger.Logger {
	slogger := newSlogger(hostcfg.AppLogKind, cfg, output)
	al := logger.New(slogger)
	al.Debug("setting up app logger", nil)

	var l logger.Logger = al
	if cfg.SentryDSN != "" {
		l = logger.NewSentryLogger(cfg.Env, al, cfg.SentryDSN)
		l.Debug("using SentryLogger for app logger", nil)
	}

	slog.SetDefault(slogger)

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP request logging.
func defaultHTTPLogger(cfg Config, output io.Writer) *slog.Logger {
	sl := newSlogger(hostcfg.HTTPLogKind, cfg, output)
	sl.Debug("setting up HTTP request logger")

	return sl
}

// newSlogger toggles constructing the specific [*log/slog.Logger]
// from the given parameters.
//
// Development logs go through charmbracelet/log unless LOG_JSON is set;
// every other environment logs JSON.
func newSlogger(kind slog.Value, cfg Config, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(cfg.LogLevel)

	useJSON := !cfg.Env.IsDevelopment() || cfg.LogJSON
	isHTTP := kind.String() == hostcfg.HTTPLogKind.String()

	var handler slog.Handler
	switch {
	case useJSON && !isHTTP:
		opts := &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.ReplaceFatalLevel(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	case !useJSON && !isHTTP:
		handler = log.NewWithOptions(out, log.Options{
			Level:           log.Level(cfg.LogLevel),
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02 15:04:05.000",
		})

	case useJSON && isHTTP:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	default:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewTextHandler(out, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		{Key: hostcfg.LogKindKey, Value: kind},
	})

	return slog.New(handler)
}

// defaultRouter constructs a [*router.Router] running mws ahead of every request.
func defaultRouter(mws []middleware.Adapter) *router.Router {
	route := router.New()
	route.OnEveryRequest(mws...)

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
