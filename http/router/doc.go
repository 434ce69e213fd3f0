/*
Package router routes HTTP requests to handlers by method and path template.

A [Router] leverages a standardized data model, a [Route], when registering how requests should be routed.
A path template and an HTTP method comprise a [Route].
Path templates are literal text with "{}" placeholders,
each capturing one path segment:

	r.Handle(router.Route{
		Path:    "/configurations/{}/{}",
		Method:  http.MethodGet,
		Handler: h.getConfiguration,
	})

Inside the handler, [Vars] returns the captures in the order the placeholders appear.

Matching ignores case and a trailing slash, and is anchored only at the end of the path.
The first registered Route that matches wins.
A request no Route matches, including one with a path some Route matches under another method,
gets a JSON 404.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.
*/
package router
