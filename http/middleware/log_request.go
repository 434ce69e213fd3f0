package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/hostcfg"
)

// A LogRequestRecord is the shape of the record LogRequest writes for each request.
type LogRequestRecord struct {
	BodySize       int64  `json:"bodySize"`
	Duration       int64  `json:"duration"`
	Host           string `json:"host"`
	ID             string `json:"id"`
	IPAddr         string `json:"ipAddr"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer"`
	ReqContentType string `json:"reqContentType"`
	Scheme         string `json:"scheme"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent"`
}

// LogRequest logs a LogRequestRecord for every request once the wrapped handler returns.
//
// LogRequest masks values for the "password" query param.
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			uri := r.URL.Path
			q := r.URL.Query()
			hostcfg.Mask(q, "password")
			if len(q) > 0 {
				uri += "?" + q.Encode()
			}

			id, _ := r.Context().Value(hostcfg.RequestIDKey).(string)

			l.LogAttrs(
				context.Background(),
				slog.LevelInfo,
				"",
				slog.Int64("bodySize", m.Written),
				slog.Int64("duration", m.Duration.Milliseconds()),
				slog.String("host", r.Host),
				slog.String("id", id),
				slog.String("ipAddr", ClientIP(r)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("protocol", r.Proto),
				slog.String("referrer", r.Referer()),
				slog.String("reqContentType", r.Header.Get("Content-Type")),
				slog.String("scheme", r.URL.Scheme),
				slog.Int("status", m.Code),
				slog.String("uri", uri),
				slog.String("userAgent", r.UserAgent()),
			)
		})
	}
}
