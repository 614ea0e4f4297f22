// Package upstream holds typed HTTP clients for the two services this
// backend proxies: the valuation service, which computes holding contracts,
// and the data service, which owns assets, currencies and transactions.
//
// Both services authenticate the end user, so the caller's bearer token is
// forwarded on every request rather than a service credential.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
)

// doGet performs an authenticated GET against an upstream endpoint and
// decodes the JSON body into out.
//
// Network failures map to ErrUpstreamUnavailable, a 404 to notFound (so each
// caller reports the entity that is actually missing), and any other
// non-200 status to ErrUpstreamResponse.
func doGet(ctx context.Context, httpClient *http.Client, url, token string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperrors.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d from %s", apperrors.ErrUpstreamResponse, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamResponse, err)
	}
	return nil
}

// ping checks upstream reachability via the conventional /ping endpoint.
func ping(ctx context.Context, httpClient *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from ping", apperrors.ErrUpstreamResponse, resp.StatusCode)
	}
	return nil
}
