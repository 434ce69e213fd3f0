/*
The middleware package defines what a middleware is in hostcfg and the set of middlewares the API runs behind.

The available middlewares are:
  - CORS
  - CurrentUser
  - LogRequest
  - Recover
  - ReportPanic
  - RequestID

The API assembles them in this order:

	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.LogRequest(httpLog),
		middleware.Recover(logger),
		middleware.ReportPanic(env),
		middleware.CORS(baseURL, tokenHeader),
		middleware.CurrentUser(tokenHeader, sessions),
	}
*/
package middleware
