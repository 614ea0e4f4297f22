package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/holdview/Holdings-View-Backend/internal/api/middleware"
	"github.com/holdview/Holdings-View-Backend/internal/service"
	"github.com/holdview/Holdings-View-Backend/internal/validation"
)

// HoldingsHandler handles holdings-related HTTP requests
type HoldingsHandler struct {
	holdingsService *service.HoldingsService
}

// NewHoldingsHandler creates a new HoldingsHandler
func NewHoldingsHandler(holdingsService *service.HoldingsService) *HoldingsHandler {
	return &HoldingsHandler{
		holdingsService: holdingsService,
	}
}

// Holdings serves the grouped holdings view for one portfolio.
//
// Endpoint: GET /api/holdings/{portfolioId}?valueIn=&groupBy=&hideEmpty=&asAt=
//   - valueIn: TRADE | BASE | PORTFOLIO (default PORTFOLIO)
//   - groupBy: ASSET_CLASS | MARKET | CURRENCY | SECTOR (default ASSET_CLASS)
//   - hideEmpty: drop closed positions (default true)
//   - asAt: optional valuation date, YYYY-MM-DD
//
// The response totals omit the TRADE basis when the portfolio's positions
// trade in mixed currencies; clients must check for presence, not zero.
func (h *HoldingsHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	valueIn, err := validation.ParseValueIn(query.Get("valueIn"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid valueIn parameter",
			"detail": err.Error(),
		})
		return
	}

	groupBy, err := validation.ParseGroupBy(query.Get("groupBy"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid groupBy parameter",
			"detail": err.Error(),
		})
		return
	}

	hideEmpty, err := validation.ParseHideEmpty(query.Get("hideEmpty"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid hideEmpty parameter",
			"detail": err.Error(),
		})
		return
	}

	req := service.HoldingsRequest{
		PortfolioID: chi.URLParam(r, "portfolioId"),
		AsAt:        query.Get("asAt"),
		ValueIn:     valueIn,
		GroupBy:     groupBy,
		HideEmpty:   hideEmpty,
	}

	token := custommiddleware.TokenFromContext(r.Context())
	result, err := h.holdingsService.GetHoldings(r.Context(), token, req)
	if err != nil {
		respondServiceError(w, err, "Failed to aggregate holdings")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
