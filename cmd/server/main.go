package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/handler"
	"github.com/grachmannico95/statement-reconciler/internal/server"
	"github.com/grachmannico95/statement-reconciler/internal/service"
	"github.com/grachmannico95/statement-reconciler/internal/storage"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	// one store serves statements, the booking ledger and company profiles
	store := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	if err := seedCompanyProfiles(ctx, store, cfg.Datev.Companies, log); err != nil {
		log.Fatal(ctx, "Failed to register company profiles",
			"error", err,
		)
	}

	locks := service.NewStatementLocks()
	statementService := service.NewStatementService(store, store, locks, cfg.Import, log)
	reconciliationService := service.NewReconciliationService(store, store, store, locks, log)
	datevService := service.NewDatevService(store, store, cfg.Datev, log)
	log.Info(ctx, "Services initialized",
		"auto_match", cfg.Import.AutoMatch,
		"max_upload_bytes", cfg.Import.MaxUploadBytes,
	)

	statementHandler := handler.NewStatementHandler(statementService, log)
	positionHandler := handler.NewPositionHandler(reconciliationService, log)
	datevHandler := handler.NewDatevHandler(datevService, log)
	healthHandler := handler.NewHealthHandler()
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, statementHandler, positionHandler, datevHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Requests in flight hold statement locks; let them finish.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
