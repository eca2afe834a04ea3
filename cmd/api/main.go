// Command api runs the Person API HTTP server.
//
// Wiring order follows the dependency layers: config -> logger ->
// server (seeded store) -> middlewares/repositories/services/handlers
// -> router. The process then serves until SIGINT/SIGTERM and shuts
// down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dnaumov/person-api/internal/config"
	"github.com/dnaumov/person-api/internal/handler"
	"github.com/dnaumov/person-api/internal/logger"
	"github.com/dnaumov/person-api/internal/middleware"
	"github.com/dnaumov/person-api/internal/repository"
	"github.com/dnaumov/person-api/internal/router"
	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may take to drain
// on shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger for everything that happens before the real
	// logger exists.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.New()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg, &bootLogger)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to initialize observability")
	}

	appLogger := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, &appLogger, loggerService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	middlewares := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Block until a termination signal arrives, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	appLogger.Info().Msg("server stopped")
}
