// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, rate limiting, panic recovery, and the global
// error handler that turns every failure into the uniform JSON
// envelope.
package middleware
