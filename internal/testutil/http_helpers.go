package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams builds a GET request carrying chi URL parameters,
// for exercising handlers outside a full router.
func NewRequestWithURLParams(target string, params map[string]string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, target, nil)

	routeContext := chi.NewRouteContext()
	for key, value := range params {
		routeContext.URLParams.Add(key, value)
	}

	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}
