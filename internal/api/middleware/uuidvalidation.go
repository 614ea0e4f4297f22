package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holdview/Holdings-View-Backend/internal/api/response"
	"github.com/holdview/Holdings-View-Backend/internal/validation"
)

// ValidatePortfolioIDMiddleware validates that the portfolioId URL parameter
// is present and is a valid UUID. Returns 400 Bad Request otherwise, before
// the request reaches a handler or an upstream service.
//
// Example usage in router:
//
//	r.Route("/{portfolioId}", func(r chi.Router) {
//	    r.Use(middleware.ValidatePortfolioIDMiddleware)
//	    r.Get("/", handler.Holdings)
//	})
func ValidatePortfolioIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		portfolioID := chi.URLParam(r, "portfolioId")

		if portfolioID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid portfolio ID is required", "")
			return
		}

		if err := validation.ValidateUUID(portfolioID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid portfolio ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
