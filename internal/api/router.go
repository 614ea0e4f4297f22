package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/holdview/Holdings-View-Backend/internal/api/handlers"
	custommiddleware "github.com/holdview/Holdings-View-Backend/internal/api/middleware"
	"github.com/holdview/Holdings-View-Backend/internal/config"
	"github.com/holdview/Holdings-View-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, holdingsService *service.HoldingsService, ledgerService *service.LedgerService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace, unauthenticated so load balancers can probe it
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Everything below requires a session token
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.TokenAuth(cfg.Auth.Key, cfg.Auth.TokenTTL))

			r.Route("/holdings/{portfolioId}", func(r chi.Router) {
				holdingsHandler := handlers.NewHoldingsHandler(holdingsService)
				r.Use(custommiddleware.ValidatePortfolioIDMiddleware)
				r.Get("/", holdingsHandler.Holdings)
			})

			r.Route("/cash/{portfolioId}/{assetId}", func(r chi.Router) {
				cashHandler := handlers.NewCashHandler(ledgerService)
				r.Use(custommiddleware.ValidatePortfolioIDMiddleware)
				r.Get("/", cashHandler.Ladder)
			})
		})
	})

	return r
}
