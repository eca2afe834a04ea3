// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dnaumov/person-api/internal/handler"
	"github.com/dnaumov/person-api/internal/middleware"
	"github.com/dnaumov/person-api/internal/server"
)

// New builds the Echo instance with the full middleware chain and
// route table.
//
// Middleware order matters:
//   - Recover first, so panics anywhere below become 500s.
//   - RequestID before ContextEnhancer, so the request logger carries
//     the correlation id.
//   - New Relic before ContextEnhancer, so trace ids are available to
//     the request logger.
//
// The global error handler is installed on Echo itself; every error
// returned by middleware or handlers funnels through it, including
// Echo's own "route not found".
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Tracing.EnhanceTracing())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.RateLimit.Limiter())

	registerSystemRoutes(e, h)
	registerPersonRoutes(e, h)

	return e
}
