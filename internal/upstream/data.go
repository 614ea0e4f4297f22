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

// DataClient fetches reference data and transactions from the data service.
type DataClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDataClient creates a data service client.
func NewDataClient(baseURL string, timeout time.Duration) *DataClient {
	return &DataClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type trnResponse struct {
	Data []model.Transaction `json:"data"`
}

type assetResponse struct {
	Data model.Asset `json:"data"`
}

type currencyResponse struct {
	Data []model.Currency `json:"data"`
}

// GetCashLadder fetches the cash-affecting transactions for one cash asset
// in a portfolio. The data service returns them newest first (descending by
// trade date); the order is passed through untouched because the ladder
// builder's running-balance math depends on it.
func (c *DataClient) GetCashLadder(ctx context.Context, token, portfolioID, assetID string) ([]model.Transaction, error) {
	endpoint := fmt.Sprintf("%s/api/trns/ladder/%s/%s",
		c.baseURL, url.PathEscape(portfolioID), url.PathEscape(assetID))

	var response trnResponse
	if err := doGet(ctx, c.httpClient, endpoint, token, apperrors.ErrPortfolioNotFound, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		response.Data = []model.Transaction{}
	}
	return response.Data, nil
}

// GetAsset fetches one asset by ID.
func (c *DataClient) GetAsset(ctx context.Context, token, assetID string) (model.Asset, error) {
	endpoint := fmt.Sprintf("%s/api/assets/%s", c.baseURL, url.PathEscape(assetID))

	var response assetResponse
	if err := doGet(ctx, c.httpClient, endpoint, token, apperrors.ErrAssetNotFound, &response); err != nil {
		return model.Asset{}, err
	}
	if response.Data.ID == "" {
		return model.Asset{}, fmt.Errorf("%w: asset without id", apperrors.ErrUpstreamResponse)
	}
	return response.Data, nil
}

// GetCurrencies fetches the currency reference table.
func (c *DataClient) GetCurrencies(ctx context.Context, token string) ([]model.Currency, error) {
	endpoint := c.baseURL + "/api/currencies"

	var response currencyResponse
	if err := doGet(ctx, c.httpClient, endpoint, token, apperrors.ErrCurrencyNotFound, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// Ping checks the data service is reachable.
func (c *DataClient) Ping(ctx context.Context) error {
	return ping(ctx, c.httpClient, c.baseURL)
}
