// Package testutil provides fixture builders and mock upstream servers for
// tests.
package testutil

import (
	"github.com/google/uuid"

	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// Shared currency fixtures.
var (
	USD = model.Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}
	NZD = model.Currency{Code: "NZD", Symbol: "$", Name: "New Zealand Dollar"}
	SGD = model.Currency{Code: "SGD", Symbol: "$", Name: "Singapore Dollar"}
)

// MakeID returns a fresh UUID string.
func MakeID() string {
	return uuid.NewString()
}

// EquityAsset creates an equity asset trading on NYSE in USD.
func EquityAsset(code string) model.Asset {
	return model.Asset{
		ID:            MakeID(),
		Code:          code,
		Name:          code + " Corp",
		AssetCategory: model.AssetCategory{ID: model.CategoryEquity, Name: "Equity"},
		Market:        model.Market{Code: "NYSE", Currency: USD},
		Sector:        "Technology",
	}
}

// CashAsset creates a cash balance asset for the given currency.
func CashAsset(currency model.Currency) model.Asset {
	return model.Asset{
		ID:            MakeID(),
		Code:          currency.Code,
		Name:          currency.Code + " Balance",
		AssetCategory: model.AssetCategory{ID: model.CategoryCash, Name: "Cash"},
		Market:        model.Market{Code: "CASH", Currency: currency},
	}
}

// PositionBuilder provides a fluent interface for creating test positions.
//
// Example usage:
//
//	// Simple creation with defaults
//	position := testutil.NewPosition().Build()
//
//	// Customized position
//	position := testutil.NewPosition().
//	    WithAsset(testutil.CashAsset(testutil.USD)).
//	    WithMarketValue(model.Portfolio, 500).
//	    Build()
type PositionBuilder struct {
	position model.Position
}

// NewPosition creates a PositionBuilder with sensible defaults: an open
// equity position with all three valuation bases present in USD.
func NewPosition() *PositionBuilder {
	return &PositionBuilder{
		position: model.Position{
			Asset: EquityAsset("TEST"),
			MoneyValues: map[model.ValueIn]model.MoneyValues{
				model.Trade:     {Currency: USD},
				model.Base:      {Currency: USD},
				model.Portfolio: {Currency: USD},
			},
			QuantityValues: model.QuantityValues{Total: 100, Purchased: 100, Precision: 2},
		},
	}
}

// WithAsset sets the position's asset.
func (b *PositionBuilder) WithAsset(asset model.Asset) *PositionBuilder {
	b.position.Asset = asset
	return b
}

// WithSector sets the asset's sector.
func (b *PositionBuilder) WithSector(sector string) *PositionBuilder {
	b.position.Asset.Sector = sector
	return b
}

// WithQuantity sets the total unit count. Zero marks the position closed.
func (b *PositionBuilder) WithQuantity(total float64) *PositionBuilder {
	b.position.QuantityValues.Total = total
	return b
}

// WithMoneyValues replaces the whole money bag for one basis.
func (b *PositionBuilder) WithMoneyValues(basis model.ValueIn, values model.MoneyValues) *PositionBuilder {
	b.position.MoneyValues[basis] = values
	return b
}

// WithCurrency sets the currency of one basis's money bag.
func (b *PositionBuilder) WithCurrency(basis model.ValueIn, currency model.Currency) *PositionBuilder {
	values := b.position.MoneyValues[basis]
	values.Currency = currency
	b.position.MoneyValues[basis] = values
	return b
}

// WithMarketValue sets the market value for one basis.
func (b *PositionBuilder) WithMarketValue(basis model.ValueIn, marketValue float64) *PositionBuilder {
	values := b.position.MoneyValues[basis]
	values.MarketValue = marketValue
	b.position.MoneyValues[basis] = values
	return b
}

// WithPurchases sets the purchases for one basis.
func (b *PositionBuilder) WithPurchases(basis model.ValueIn, purchases float64) *PositionBuilder {
	values := b.position.MoneyValues[basis]
	values.Purchases = purchases
	b.position.MoneyValues[basis] = values
	return b
}

// WithGainOnDay sets the daily gain for one basis.
func (b *PositionBuilder) WithGainOnDay(basis model.ValueIn, gainOnDay float64) *PositionBuilder {
	values := b.position.MoneyValues[basis]
	values.GainOnDay = gainOnDay
	b.position.MoneyValues[basis] = values
	return b
}

// Build returns the position.
func (b *PositionBuilder) Build() model.Position {
	return b.position
}

// ContractBuilder provides a fluent interface for creating test holding
// contracts.
type ContractBuilder struct {
	contract model.HoldingContract
}

// NewContract creates a ContractBuilder with a default single-currency
// portfolio and no positions.
func NewContract() *ContractBuilder {
	return &ContractBuilder{
		contract: model.HoldingContract{
			Portfolio: model.PortfolioInfo{
				ID:       MakeID(),
				Code:     "TEST",
				Name:     "Test Portfolio",
				Currency: USD,
				Base:     USD,
			},
			Positions: make(map[string]model.Position),
		},
	}
}

// WithPosition adds a position under the given asset key.
func (b *ContractBuilder) WithPosition(assetKey string, position model.Position) *ContractBuilder {
	b.contract.Positions[assetKey] = position
	return b
}

// MixedCurrencies flags the contract as spanning multiple trading
// currencies, which disables TRADE-basis totals.
func (b *ContractBuilder) MixedCurrencies() *ContractBuilder {
	b.contract.MixedCurrencies = true
	return b
}

// Build returns the contract.
func (b *ContractBuilder) Build() model.HoldingContract {
	return b.contract
}

// TrnBuilder provides a fluent interface for creating test transactions.
type TrnBuilder struct {
	trn model.Transaction
}

// NewTrn creates a TrnBuilder for the given type against a USD cash asset.
func NewTrn(trnType model.TrnType) *TrnBuilder {
	return &TrnBuilder{
		trn: model.Transaction{
			ID:            MakeID(),
			TrnType:       trnType,
			Asset:         CashAsset(USD),
			Price:         1,
			TradeCurrency: USD,
			CashCurrency:  USD,
			TradeDate:     "2025-01-15",
		},
	}
}

// WithAsset sets the transaction's asset.
func (b *TrnBuilder) WithAsset(asset model.Asset) *TrnBuilder {
	b.trn.Asset = asset
	return b
}

// WithQuantity sets the quantity field.
func (b *TrnBuilder) WithQuantity(quantity float64) *TrnBuilder {
	b.trn.Quantity = quantity
	return b
}

// WithCashAmount sets the cashAmount field.
func (b *TrnBuilder) WithCashAmount(cashAmount float64) *TrnBuilder {
	b.trn.CashAmount = cashAmount
	return b
}

// WithTradeAmount sets the tradeAmount field.
func (b *TrnBuilder) WithTradeAmount(tradeAmount float64) *TrnBuilder {
	b.trn.TradeAmount = tradeAmount
	return b
}

// WithTradeDate sets the trade date.
func (b *TrnBuilder) WithTradeDate(tradeDate string) *TrnBuilder {
	b.trn.TradeDate = tradeDate
	return b
}

// Build returns the transaction.
func (b *TrnBuilder) Build() model.Transaction {
	return b.trn
}
