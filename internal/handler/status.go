package handler

// StatusHandler exposes "system" endpoints that are not business
// logic: the liveness payload, a fixed 204 endpoint, and the
// deliberate-failure endpoint used to exercise the 500 path of the
// global error handler.
import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dnaumov/person-api/internal/middleware"
	"github.com/dnaumov/person-api/internal/server"
)

// StatusHandler embeds the base Handler to reuse shared server
// dependencies.
type StatusHandler struct {
	Handler
}

// NewStatusHandler constructs a StatusHandler with access to shared
// app dependencies.
func NewStatusHandler(s *server.Server) *StatusHandler {
	return &StatusHandler{
		Handler: NewHandler(s),
	}
}

// Status returns the liveness payload for GET /.
//
// Response includes:
//   - overall status
//   - timestamp (UTC)
//   - environment (from config)
//   - a store check with the current record count
//
// The store is in-process memory, so unlike a database-backed health
// check there is nothing that can be unreachable; the endpoint always
// returns 200.
func (h *StatusHandler) Status(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "status").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"message":     "Welcome to the Person API Service",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"store": map[string]interface{}{
				"status":  "healthy",
				"records": h.server.Store.Len(),
			},
		},
	}

	logger.Info().Msg("status check passed")

	return c.JSON(http.StatusOK, response)
}

// EmptyRequest is the payload for endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// NoContent returns the GET /no_content handler: an empty 204
// response.
func (h *StatusHandler) NoContent() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.noContent, http.StatusNoContent)
}

func (h *StatusHandler) noContent(c echo.Context, req *EmptyRequest) error {
	return nil
}

// Test500 always fails.
//
// The returned error is not an *errs.HTTPError, so the global error
// handler classifies it as an internal fault and renders the generic
// 500 envelope. The message below is logged server-side but never
// reaches the client.
func (h *StatusHandler) Test500(c echo.Context) error {
	return errors.New("forced failure for testing the global error handler")
}
