package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dnaumov/person-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// person business logic.
//
// Routes:
//  1. Liveness payload at the root.
//  2. A fixed 204 endpoint.
//  3. The deliberate-failure endpoint exercising the 500 path.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Liveness endpoint (used by monitors and as a smoke test).
	r.GET("/", h.Status.Status)

	r.GET("/no_content", h.Status.NoContent())

	// Not business logic: exists solely so the error normalizer's 500
	// path can be exercised end to end.
	r.GET("/test500", h.Status.Test500)
}
