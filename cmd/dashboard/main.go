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

	"delivery-admin/http-server/page"
	"delivery-admin/internal/config"
	"delivery-admin/internal/lib/logger"
	"delivery-admin/internal/service/assignments"
	"delivery-admin/internal/service/dashboard"
	generate_excel "delivery-admin/internal/service/generate-excel"
	"delivery-admin/internal/storage/api"
	"delivery-admin/internal/view"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustConfig()

	log := logger.Setup(cfg.Env, cfg.ErrorLog)
	log.Info("starting delivery-admin",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	storage, err := api.New(cfg.Backend)
	if err != nil {
		log.Error("failed to init backend client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rnd, err := view.New()
	if err != nil {
		log.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := services{
		dashboard:   dashboard.NewService(storage, log),
		assignments: assignments.NewService(storage, log),
		reports:     generate_excel.NewGenerateService(storage),
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, svc, rnd),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: writeTimeout(cfg.HTTPServer),
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}

// writeTimeout leaves room for the slowest handler, an Excel export, plus
// the configured server timeout for writing the response.
func writeTimeout(cfg config.HTTPServer) time.Duration {
	return page.ExportTimeout + cfg.Timeout
}
