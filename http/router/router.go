package router

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/hostcfg/http/middleware"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Path may contain "{}" placeholders; see [Vars].
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the first registered Route matching their method and path.
type Router struct {
	everyReqStack []middleware.Adapter
	notFound      http.Handler
	r             *mux.Router
}

// New constructs a [*Router] answering unmatched requests with a JSON 404.
func New() *Router {
	rt := &Router{r: mux.NewRouter().SkipClean(true)}
	rt.notFound = http.HandlerFunc(NotFound)

	nf := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		middleware.Chain(rt.notFound, rt.everyReqStack...).ServeHTTP(w, req)
	})

	rt.r.NotFoundHandler = nf
	rt.r.MethodNotAllowedHandler = nf

	return rt
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
// Middlewares added with OnEveryRequest still run before it.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.notFound = handler
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// Routes are tried in the order they are registered.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(route.Handler, mws...)
		r.r.MatcherFunc(matcher(route.Method, compile(route.Path))).Handler(handler)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only Routes registered after calling OnEveryRequest pick up the middlewares.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Vars retrieves the values captured by a Route's placeholders, in the order they appear.
func Vars(r *http.Request) []string {
	vars := mux.Vars(r)
	out := make([]string, 0, len(vars))
	for i := 0; ; i++ {
		v, ok := vars[strconv.Itoa(i)]
		if !ok {
			return out
		}

		out = append(out, v)
	}
}

// NotFound writes a 404 JSON message naming the request's path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusNotFound)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]string{"message": r.URL.Path + " not found"})
}

func matcher(method string, p pattern) mux.MatcherFunc {
	return func(r *http.Request, rm *mux.RouteMatch) bool {
		if r.Method != method {
			return false
		}

		caps, ok := p.match(r.URL.Path)
		if !ok {
			return false
		}

		rm.Vars = make(map[string]string, len(caps))
		for i, c := range caps {
			rm.Vars[strconv.Itoa(i)] = c
		}

		return true
	}
}
