package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// PositionsClient fetches holding contracts from the valuation service.
// The service supplies positions with all three valuation bases already
// computed; this backend never prices or converts anything itself.
type PositionsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPositionsClient creates a valuation service client.
func NewPositionsClient(baseURL string, timeout time.Duration) *PositionsClient {
	return &PositionsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// contractResponse is the raw valuation service payload. The service wraps
// every body in a data envelope.
type contractResponse struct {
	Data model.HoldingContract `json:"data"`
}

// GetHoldingContract fetches the current holding contract for a portfolio.
// asAt optionally requests the valuation as of a date (YYYY-MM-DD); empty
// means "today".
//
// The contract is validated minimally: a payload without a portfolio ID is
// treated as a malformed upstream response. Positions may legitimately be
// empty for a new portfolio.
func (c *PositionsClient) GetHoldingContract(ctx context.Context, token, portfolioID, asAt string) (model.HoldingContract, error) {
	endpoint := fmt.Sprintf("%s/api/portfolios/%s/positions", c.baseURL, url.PathEscape(portfolioID))
	if asAt != "" {
		endpoint += "?asAt=" + url.QueryEscape(asAt)
	}

	var response contractResponse
	if err := doGet(ctx, c.httpClient, endpoint, token, apperrors.ErrPortfolioNotFound, &response); err != nil {
		return model.HoldingContract{}, err
	}

	if response.Data.Portfolio.ID == "" {
		return model.HoldingContract{}, fmt.Errorf("%w: contract without portfolio", apperrors.ErrUpstreamResponse)
	}
	if response.Data.Positions == nil {
		response.Data.Positions = map[string]model.Position{}
	}
	return response.Data, nil
}

// Ping checks the valuation service is reachable.
func (c *PositionsClient) Ping(ctx context.Context) error {
	return ping(ctx, c.httpClient, c.baseURL)
}
