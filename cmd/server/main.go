package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/holdview/Holdings-View-Backend/internal/api"
	"github.com/holdview/Holdings-View-Backend/internal/catalog"
	"github.com/holdview/Holdings-View-Backend/internal/config"
	"github.com/holdview/Holdings-View-Backend/internal/service"
	"github.com/holdview/Holdings-View-Backend/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create upstream clients
	positionsClient := upstream.NewPositionsClient(cfg.Upstream.PositionsURL, cfg.Upstream.Timeout)
	dataClient := upstream.NewDataClient(cfg.Upstream.DataURL, cfg.Upstream.Timeout)

	log.Printf("Upstream valuation service: %s", cfg.Upstream.PositionsURL)
	log.Printf("Upstream data service: %s", cfg.Upstream.DataURL)

	// Build the reference catalog and keep it fresh. A failed initial
	// refresh is not fatal; the built-in currency table covers lookups
	// until the data service comes up.
	referenceCatalog := catalog.New(dataClient)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := referenceCatalog.Refresh(ctx); err != nil {
			log.Printf("Initial catalog refresh failed: %v", err)
		}
		cancel()
	}
	if err := referenceCatalog.StartRefresh(cfg.Catalog.RefreshSchedule); err != nil {
		log.Fatalf("Failed to schedule catalog refresh: %v", err)
	}
	defer referenceCatalog.Stop()

	// Create services
	systemService := service.NewSystemService(positionsClient, dataClient)
	holdingsService := service.NewHoldingsService(positionsClient, referenceCatalog)
	ledgerService := service.NewLedgerService(dataClient, referenceCatalog)

	// Create router
	router := api.NewRouter(systemService, holdingsService, ledgerService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
