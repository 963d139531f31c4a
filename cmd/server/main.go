/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the staff registry HTTP server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env, environment, flags)
  2. Build the logger
  3. Create the registry and preload a roster when configured
  4. Configure HTTP router and export scheduler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides STAFF_PORT)
  -roster  YAML roster loaded at startup (overrides STAFF_ROSTER_PATH)
  -demo    Preload the built-in demo roster

ENVIRONMENT:
  STAFF_PORT, STAFF_EXPORT_PATH, STAFF_EXPORT_INTERVAL, STAFF_ROSTER_PATH,
  STAFF_LOG_LEVEL, STAFF_LOG_FORMAT, STAFF_ALLOWED_ORIGINS

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the export scheduler
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Environment settings
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/staff-registry/api"
	"github.com/warp/staff-registry/config"
	"github.com/warp/staff-registry/factory"
	"github.com/warp/staff-registry/logging"
	"github.com/warp/staff-registry/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags
	port := flag.Int("port", cfg.Server.Port, "HTTP server port")
	rosterPath := flag.String("roster", cfg.Roster.Path, "YAML roster loaded at startup")
	demo := flag.Bool("demo", false, "preload the built-in demo roster")
	flag.Parse()
	cfg.Server.Port = *port
	cfg.Roster.Path = *rosterPath

	logger, err := logging.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize registry
	reg := staff.NewRegistry()
	roster := factory.NewRosterFactory(logger)
	if *demo {
		if _, err := roster.LoadDemo(reg); err != nil {
			logger.Fatal("failed to load demo roster", zap.Error(err))
		}
	}
	if cfg.Roster.Path != "" {
		if _, err := roster.LoadFile(reg, cfg.Roster.Path); err != nil {
			logger.Fatal("failed to load roster", zap.String("path", cfg.Roster.Path), zap.Error(err))
		}
	}

	handler := api.NewHandler(reg, cfg.Export.Path, logger)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	scheduler := api.NewExportScheduler(handler, cfg.Export.Interval)
	scheduler.Start()

	// Create server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.Int("records", reg.Len()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	scheduler.Stop()

	logger.Info("server stopped")
}
