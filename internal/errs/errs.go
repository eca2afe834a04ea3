// Package errs defines the error types every failure path of the API is
// normalized into.
//
// Handlers and repositories never format HTTP responses themselves: they
// return an *HTTPError (or something the global error handler can classify
// into one), and the middleware layer renders it as the uniform JSON
// envelope. That keeps the "always JSON" guarantee in exactly one place.
package errs
