package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// envelope mirrors the upstream services' data wrapper.
type envelope struct {
	Data interface{} `json:"data"`
}

// NewPositionsServer returns an httptest server impersonating the valuation
// service: it serves the given contract for any portfolio positions request.
// The server is closed automatically when the test ends.
func NewPositionsServer(t *testing.T, contract model.HoldingContract) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/ping":
			w.WriteHeader(http.StatusOK)
		case strings.HasPrefix(r.URL.Path, "/api/portfolios/"):
			writeEnvelope(t, w, contract)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// NewDataServer returns an httptest server impersonating the data service:
// it serves the given asset, transaction list and currency table at their
// conventional paths. The server is closed automatically when the test ends.
func NewDataServer(t *testing.T, asset model.Asset, trns []model.Transaction, currencies []model.Currency) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/ping":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/currencies":
			writeEnvelope(t, w, currencies)
		case strings.HasPrefix(r.URL.Path, "/api/assets/"):
			writeEnvelope(t, w, asset)
		case strings.HasPrefix(r.URL.Path, "/api/trns/ladder/"):
			writeEnvelope(t, w, trns)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// NewFailingServer returns an httptest server that answers every request
// with the given status code, for exercising upstream error paths.
func NewFailingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope{Data: data}); err != nil {
		t.Errorf("failed to encode mock response: %v", err)
	}
}
