package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/holdview/Holdings-View-Backend/internal/api/middleware"
	"github.com/holdview/Holdings-View-Backend/internal/service"
	"github.com/holdview/Holdings-View-Backend/internal/validation"
)

// CashHandler handles cash ladder HTTP requests
type CashHandler struct {
	ledgerService *service.LedgerService
}

// NewCashHandler creates a new CashHandler
func NewCashHandler(ledgerService *service.LedgerService) *CashHandler {
	return &CashHandler{
		ledgerService: ledgerService,
	}
}

// Ladder serves the running-balance-annotated transaction list for one cash
// asset in a portfolio, newest first.
//
// Endpoint: GET /api/cash/{portfolioId}/{assetId}
func (h *CashHandler) Ladder(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	if err := validation.ValidateUUID(assetID); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid asset ID",
			"detail": err.Error(),
		})
		return
	}

	token := custommiddleware.TokenFromContext(r.Context())
	ladder, err := h.ledgerService.GetCashLadder(r.Context(), token, chi.URLParam(r, "portfolioId"), assetID)
	if err != nil {
		respondServiceError(w, err, "Failed to build cash ladder")
		return
	}

	respondJSON(w, http.StatusOK, ladder)
}
