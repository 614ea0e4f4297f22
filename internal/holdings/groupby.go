package holdings

import (
	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// GroupBy selects the strategy used to derive a position's group key.
type GroupBy string

const (
	// GroupByAssetClass buckets positions by asset category name.
	GroupByAssetClass GroupBy = "ASSET_CLASS"
	// GroupByMarket buckets positions by market code.
	GroupByMarket GroupBy = "MARKET"
	// GroupByCurrency buckets positions by trading currency code.
	GroupByCurrency GroupBy = "CURRENCY"
	// GroupBySector buckets positions by sector.
	GroupBySector GroupBy = "SECTOR"
)

// UndefinedGroup is the sentinel bucket for positions whose reference data
// cannot produce a key for the selected strategy. Grouping keys are display
// bucket labels, so sparse data lands here instead of failing the whole
// aggregation. A non-empty UndefinedGroup is a data-quality signal, not a
// valid category.
const UndefinedGroup = "undefined"

// Valid reports whether g is one of the known grouping strategies.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByAssetClass, GroupByMarket, GroupByCurrency, GroupBySector:
		return true
	}
	return false
}

// Key derives the group bucket label for a position. Missing reference data
// yields UndefinedGroup, never an error.
func (g GroupBy) Key(p model.Position) string {
	var key string
	switch g {
	case GroupByAssetClass:
		key = p.Asset.AssetCategory.Name
	case GroupByMarket:
		key = p.Asset.Market.Code
	case GroupByCurrency:
		key = p.Asset.Market.Currency.Code
	case GroupBySector:
		key = p.Asset.Sector
	}
	if key == "" {
		return UndefinedGroup
	}
	return key
}
