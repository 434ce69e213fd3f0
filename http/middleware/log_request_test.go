package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/http/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	ip := "1.1.1.1"
	testID := "test-id"
	useragent := "hostcfg/test"
	content := "application/json"
	referrer := "example.com/referrer"
	respBody := "test"
	newExpected := func(expected middleware.LogRequestRecord) middleware.LogRequestRecord {
		expected.BodySize = int64(len(respBody))
		expected.Host = "example.com"
		expected.ID = testID
		expected.Protocol = "HTTP/1.1"
		expected.Referrer = referrer
		expected.ReqContentType = content
		expected.Scheme = "http"
		expected.Status = http.StatusOK
		expected.UserAgent = useragent

		return expected
	}

	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		expected middleware.LogRequestRecord
	}{
		{
			"Zero-Value",
			http.MethodGet,
			"",
			&url.URL{Path: "/"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: "192.0.2.1",
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/",
			}),
		},
		{
			"With-IP",
			http.MethodPost,
			ip,
			&url.URL{Path: "/"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodPost,
				Path:   "/",
				URI:    "/",
			}),
		},
		{
			"With-Query-Params",
			http.MethodGet,
			ip,
			&url.URL{Path: "/configurations/alice", RawQuery: "sort=name"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/configurations/alice",
				URI:    "/configurations/alice?sort=name",
			}),
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			ip,
			&url.URL{Path: "/", RawQuery: "param=true&password=hunter2"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/?param=true&password=" + hostcfg.LogMaskVal,
			}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			h := slog.New(slog.NewJSONHandler(b, nil))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "http://example.com"+tc.url.RequestURI(), new(bytes.Reader))
			r = r.Clone(context.WithValue(r.Context(), hostcfg.RequestIDKey, testID))

			r.Header.Set("User-Agent", useragent)
			r.Header.Set("Content-Type", content)
			r.Header.Set("Referer", referrer)

			if tc.ip != "" {
				r.Header.Set("X-Forwarded-For", tc.ip)
			}

			var actual middleware.LogRequestRecord

			// Act
			middleware.LogRequest(h)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				fmt.Fprint(wx, respBody)
			})).ServeHTTP(w, r)

			// Assert
			require.Nil(t, json.Unmarshal(b.Bytes(), &actual))
			expected := tc.expected
			expected.Duration = actual.Duration
			require.Equal(t, expected, actual)
		})
	}
}
