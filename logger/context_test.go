package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/logger"
)

func resolve(t *testing.T, lc logger.LogContext) map[string]any {
	t.Helper()

	b := new(bytes.Buffer)
	slog.New(slog.NewJSONHandler(b, nil)).Info("test", slog.Any("lc", lc))

	var m struct {
		LC map[string]any `json:"lc"`
	}
	require.Nil(t, json.Unmarshal(b.Bytes(), &m))

	return m.LC
}

func TestLogContextLogValue(t *testing.T) {
	// Arrange + Act
	actual := resolve(t, logger.LogContext{})

	// Assert
	require.Empty(t, actual)

	// Arrange + Act
	actual = resolve(t, logger.LogContext{Data: map[string]any{"test": "data"}})

	// Assert
	require.Equal(t, map[string]any{"data": map[string]any{"test": "data"}}, actual)

	// Arrange + Act
	actual = resolve(t, logger.LogContext{Error: errors.New("test")})

	// Assert
	require.Equal(t, map[string]any{"error": "test"}, actual)

	// Arrange + Act
	actual = resolve(t, logger.LogContext{User: hostcfg.User{Name: "tom", Password: "hunter2"}})

	// Assert
	require.Equal(t, map[string]any{"user": map[string]any{"name": "tom"}}, actual)

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login?password=hunter2", nil)
	r = r.Clone(context.WithValue(r.Context(), hostcfg.RequestIDKey, "test-id"))

	// Act
	actual = resolve(t, logger.LogContext{Request: r})

	// Assert
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/login?password=" + hostcfg.LogMaskVal,
			"id":     "test-id",
		},
	}
	require.Equal(t, expected, actual)
}

func TestCurrentCaller(t *testing.T) {
	var actual string
	func() { actual = logger.CurrentCaller() }()

	require.Regexp(t, `^logger/context_test\.go:\d+$`, actual)
}
