package hostcfg

import (
	"fmt"
	"log/slog"
	"net/url"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	AppLogKind  = slog.StringValue("app")
	HTTPLogKind = slog.StringValue("http")

	// MaskedLogValue is a convenience [log/slog.Value]
	// to be used in implementations of [log/slog.LogValuer]
	// to hide sensitive data from log messages.
	MaskedLogValue = slog.StringValue(LogMaskVal)
)

// Mask replaces every value set for key in vals with a single LogMaskVal.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}

// NewLogLevel parses val (e.g., "debug", "WARN") into a [log/slog.Level].
func NewLogLevel(val string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(val)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrNotValid, val)
	}

	return lvl, nil
}
