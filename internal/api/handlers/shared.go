package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service errors onto HTTP statuses and sends the
// standard error body.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrPortfolioNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNotCashAsset),
		errors.Is(err, apperrors.ErrCurrencyMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUpstreamUnavailable),
		errors.Is(err, apperrors.ErrUpstreamResponse):
		status = http.StatusBadGateway
	}

	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
