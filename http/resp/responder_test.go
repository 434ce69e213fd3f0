package resp_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/http/resp"
	"github.com/xy-planning-network/hostcfg/logger"
)

const jsonMediaType = "application/json; charset=UTF-8"

func newResponder(b *bytes.Buffer) *resp.Responder {
	l := logger.New(slog.New(slog.NewJSONHandler(b, nil)))
	return resp.NewResponder(resp.WithLogger(l))
}

func TestResponderDo(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder()

		// Act
		err := d.Json(w, r, resp.Code(http.StatusTeapot))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestResponderJson(t *testing.T) {
	tcs := []struct {
		name         string
		opts         []resp.Fn
		expectedCode int
		expectedBody string
	}{
		{"Zero-Value", nil, http.StatusOK, "null\n"},
		{
			"With-Data",
			[]resp.Fn{resp.Data(hostcfg.Configuration{Name: "web", Hostname: "h", Port: 8080, Username: "alice"})},
			http.StatusOK,
			"{\n  \"name\": \"web\",\n  \"hostname\": \"h\",\n  \"port\": 8080,\n  \"username\": \"alice\"\n}\n",
		},
		{
			"With-Message",
			[]resp.Fn{resp.Message("Config created")},
			http.StatusOK,
			"{\n  \"message\": \"Config created\"\n}\n",
		},
		{
			"With-Code",
			[]resp.Fn{resp.Code(http.StatusCreated), resp.Data([]int{1})},
			http.StatusCreated,
			"[\n  1\n]\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			d := resp.NewResponder()

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))
			require.Equal(t, tc.expectedBody, w.Body.String())
		})
	}

	t.Run("Unencodable", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Act
		err := newResponder(b).Json(w, r, resp.Data(make(chan int)))

		// Assert
		require.NotNil(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, b.String(), `"level":"ERROR"`)
	})
}

func TestResponderErr(t *testing.T) {
	tcs := []struct {
		name          string
		err           error
		opts          []resp.Fn
		expectedCode  int
		expectedMsg   string
		expectedLevel string
	}{
		{
			"Business",
			hostcfg.Errorf(hostcfg.ErrNotFound, "Configuration %s not found.", "web"),
			[]resp.Fn{resp.Code(http.StatusNotFound)},
			http.StatusNotFound,
			"Configuration web not found.",
			"WARN",
		},
		{
			"Unexpected",
			errors.New("oops"),
			nil,
			http.StatusInternalServerError,
			"oops",
			"ERROR",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "https://example.com", strings.NewReader("{}"))
			r = r.Clone(context.WithValue(r.Context(), hostcfg.CurrentUserKey, hostcfg.User{Name: "alice"}))

			// Act
			newResponder(b).Err(w, r, tc.err, tc.opts...)

			// Assert
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))
			require.JSONEq(t, `{"message":"`+tc.expectedMsg+`"}`, w.Body.String())
			require.Contains(t, b.String(), `"level":"`+tc.expectedLevel+`"`)
			require.Contains(t, b.String(), `"name":"alice"`)
		})
	}
}

func TestResponderNoContent(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/logout", nil)

	// Act
	resp.NewResponder().NoContent(w, r)

	// Assert
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Zero(t, w.Body.Len())
}
