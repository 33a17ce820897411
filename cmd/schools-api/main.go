// main is the entry point of the schools API server.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open (and set up) the SQLite database
//  4. Register the HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/schools-api --config=config/local.yaml
//
// or:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/schools-api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/schools-directory/internal/config"
	"github.com/aanand-mishra/schools-directory/internal/http/handlers/school"
	"github.com/aanand-mishra/schools-directory/internal/logger"
	"github.com/aanand-mishra/schools-directory/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env, os.Stdout)

	log.Info("starting schools-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// Route table:
	//   POST /api/schools/create/   create a school
	//   GET  /api/schools/          list all schools
	//
	// {$} pins the trailing slash so only the exact path matches.
	router := http.NewServeMux()

	router.HandleFunc("POST /api/schools/create/{$}", school.New(storage, log))
	router.HandleFunc("GET /api/schools/{$}", school.GetList(storage, log))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and main
	// waits for a shutdown signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Buffered so the signal is not dropped if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// In-flight requests get 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
