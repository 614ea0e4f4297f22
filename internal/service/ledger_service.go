package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/catalog"
	"github.com/holdview/Holdings-View-Backend/internal/ledger"
	"github.com/holdview/Holdings-View-Backend/internal/model"
	"github.com/holdview/Holdings-View-Backend/internal/upstream"
)

// LedgerService reconstructs the cash ladder for one cash asset in a
// portfolio: transactions annotated with signed cash impact and running
// balance, newest first.
type LedgerService struct {
	data    *upstream.DataClient
	catalog *catalog.Catalog
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(data *upstream.DataClient, cat *catalog.Catalog) *LedgerService {
	return &LedgerService{
		data:    data,
		catalog: cat,
	}
}

// GetCashLadder fetches the asset record and the transaction list
// concurrently, verifies the asset really is cash, and builds the ladder.
//
// The data service returns transactions newest first and the ladder builder
// depends on that order; the list is passed through untouched.
func (s *LedgerService) GetCashLadder(ctx context.Context, token, portfolioID, assetID string) ([]model.TrnWithBalance, error) {
	var asset model.Asset
	var transactions []model.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if cached, ok := s.catalog.Asset(assetID); ok {
			asset = cached
			return nil
		}
		fetched, err := s.data.GetAsset(gctx, token, assetID)
		if err != nil {
			return err
		}
		asset = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.data.GetCashLadder(gctx, token, portfolioID, assetID)
		if err != nil {
			return err
		}
		transactions = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !asset.IsCash() {
		return nil, fmt.Errorf("%w: %s is %s", apperrors.ErrNotCashAsset, asset.Code, asset.AssetCategory.ID)
	}

	return ledger.BuildLadder(transactions, assetID), nil
}
