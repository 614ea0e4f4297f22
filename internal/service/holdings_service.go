package service

import (
	"context"

	"github.com/holdview/Holdings-View-Backend/internal/catalog"
	"github.com/holdview/Holdings-View-Backend/internal/holdings"
	"github.com/holdview/Holdings-View-Backend/internal/model"
	"github.com/holdview/Holdings-View-Backend/internal/upstream"
)

// HoldingsService produces the grouped holdings view for a portfolio.
// It fetches the holding contract from the valuation service and runs the
// aggregation engine over it; nothing is cached or stored, the view is
// recomputed per request.
type HoldingsService struct {
	positions *upstream.PositionsClient
	catalog   *catalog.Catalog
}

// NewHoldingsService creates a new HoldingsService.
func NewHoldingsService(positions *upstream.PositionsClient, cat *catalog.Catalog) *HoldingsService {
	return &HoldingsService{
		positions: positions,
		catalog:   cat,
	}
}

// HoldingsRequest carries the caller's display selection for one
// aggregation: the portfolio, the valuation basis for subtotals, the
// grouping strategy, and whether closed positions are hidden.
type HoldingsRequest struct {
	PortfolioID string
	AsAt        string
	ValueIn     model.ValueIn
	GroupBy     holdings.GroupBy
	HideEmpty   bool
}

// GetHoldings fetches the portfolio's holding contract and aggregates it
// into groups and totals. The caller's bearer token is forwarded to the
// valuation service unchanged.
func (s *HoldingsService) GetHoldings(ctx context.Context, token string, req HoldingsRequest) (*model.Holdings, error) {
	contract, err := s.positions.GetHoldingContract(ctx, token, req.PortfolioID, req.AsAt)
	if err != nil {
		return nil, err
	}

	s.catalog.RegisterAssets(contract)

	return holdings.Aggregate(contract, req.HideEmpty, req.ValueIn, req.GroupBy)
}
