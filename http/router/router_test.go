package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg/http/middleware"
	"github.com/xy-planning-network/hostcfg/http/router"
)

// echo writes its name and captures so tests can see which Route answered.
func echo(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, name+":"+strings.Join(router.Vars(r), ","))
	}
}

func TestRouterMatch(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: echo("root")},
		{Path: "/a/{}/{}", Method: http.MethodGet, Handler: echo("pair")},
		{Path: "/configurations/{}", Method: http.MethodGet, Handler: echo("list")},
		{Path: "/configurations/{}", Method: http.MethodPost, Handler: echo("create")},
		{Path: "/configurations/{}/{}", Method: http.MethodGet, Handler: echo("one")},
		{Path: "/c.d", Method: http.MethodGet, Handler: echo("dot")},
	})

	tcs := []struct {
		name     string
		method   string
		path     string
		expected string
	}{
		{"Root", http.MethodGet, "/", "root:"},
		{"Captures-In-Order", http.MethodGet, "/a/x/y", "pair:x,y"},
		{"Trailing-Slash", http.MethodGet, "/configurations/alice/", "list:alice"},
		{"Ignores-Case", http.MethodGet, "/CONFIGURATIONS/alice", "list:alice"},
		{"Keeps-Capture-Case", http.MethodGet, "/configurations/Alice/Web", "one:Alice,Web"},
		{"Method-Selects", http.MethodPost, "/configurations/alice", "create:alice"},
		{"End-Anchored", http.MethodGet, "/api/configurations/alice", "list:alice"},
		{"Literal-Dot", http.MethodGet, "/c.d", "dot:"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.path, nil)

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tc.expected, w.Body.String())
		})
	}
}

func TestRouterNotFound(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.Handle(router.Route{Path: "/configurations/{}", Method: http.MethodGet, Handler: echo("list")})
	rt.Handle(router.Route{Path: "/c.d", Method: http.MethodGet, Handler: echo("dot")})

	tcs := []struct {
		name   string
		method string
		path   string
	}{
		{"Unknown-Path", http.MethodGet, "/users"},
		{"Wrong-Method", http.MethodDelete, "/configurations/alice"},
		{"Empty-Capture", http.MethodGet, "/configurations/"},
		{"Extra-Segment", http.MethodGet, "/configurations/alice/web/x/"},
		{"Dot-Is-Literal", http.MethodGet, "/cxd"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.path, nil)

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusNotFound, w.Code)
			require.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tc.path+" not found"), w.Body.String())
		})
	}
}

func TestRouterFirstRegisteredWins(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.Handle(router.Route{Path: "/configurations/{}", Method: http.MethodGet, Handler: echo("first")})
	rt.Handle(router.Route{Path: "/configurations/{}", Method: http.MethodGet, Handler: echo("second")})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/configurations/alice", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, "first:alice", w.Body.String())
}

func TestRouterMiddlewares(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	rt := router.New()
	rt.OnEveryRequest(mark("every"))
	rt.HandleRoutes(
		[]router.Route{{Path: "/x", Method: http.MethodGet, Handler: echo("x"), Middlewares: []middleware.Adapter{mark("route")}}},
		mark("group"),
	)

	// Act
	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	// Assert
	require.Equal(t, []string{"every", "group", "route"}, order)

	// Arrange
	order = nil
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, []string{"every"}, order)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
