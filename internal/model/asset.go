package model

// Asset category identifiers. The upstream data service emits these as an
// enumerated string on AssetCategory.ID.
const (
	CategoryCash       = "CASH"
	CategoryEquity     = "EQUITY"
	CategoryETF        = "ETF"
	CategoryRealEstate = "RE"
	CategoryMutualFund = "MUTUAL FUND"
	CategoryAccount    = "ACCOUNT"
)

// AssetCategory classifies an asset (cash, equity, ETF, real estate, ...).
type AssetCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Market identifies the exchange an asset trades on and the currency it
// trades in.
type Market struct {
	Code     string   `json:"code"`
	Currency Currency `json:"currency"`
}

// Asset represents a single tradeable instrument or cash balance.
// Positions and transactions reference assets; the catalog owns the
// canonical copy.
type Asset struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AssetCategory AssetCategory `json:"assetCategory"`
	Market        Market        `json:"market"`
	Sector        string        `json:"sector,omitempty"`
}

// IsCash reports whether the asset is a cash balance. The aggregator's cash
// bucket uses this narrow predicate only.
func (a Asset) IsCash() bool {
	return a.AssetCategory.ID == CategoryCash
}

// IsCashRelated reports whether the asset is cash or cash-adjacent (real
// estate). Allocation and exposure views use this broader predicate; the
// aggregator's cash bucket does not.
func (a Asset) IsCashRelated() bool {
	return a.IsCash() || a.AssetCategory.ID == CategoryRealEstate
}
