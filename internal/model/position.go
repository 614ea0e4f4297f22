package model

// DateValues tracks the lifecycle dates of a position.
type DateValues struct {
	Opened       string `json:"opened,omitempty"`
	Closed       string `json:"closed,omitempty"`
	LastDividend string `json:"lastDividend,omitempty"`
}

// Position is one asset holding inside a portfolio, as computed by the
// upstream valuation service. It carries one MoneyValues per valuation
// basis. Positions are read-only to this service.
type Position struct {
	Asset          Asset                   `json:"asset"`
	MoneyValues    map[ValueIn]MoneyValues `json:"moneyValues"`
	QuantityValues QuantityValues          `json:"quantityValues"`
	DateValues     DateValues              `json:"dateValues"`
	LastTradeDate  string                  `json:"lastTradeDate,omitempty"`
}

// PortfolioInfo identifies a portfolio and the two currencies its holdings
// are valued against: Currency is the display currency (the PORTFOLIO
// basis), Base the declared base currency (the BASE basis).
type PortfolioInfo struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
	Base     Currency `json:"base"`
}

// HoldingContract is the upstream valuation service's payload for one
// portfolio: a flat map of positions keyed by asset identifier.
// MixedCurrencies is a portfolio-level signal that the positions trade in
// more than one currency, which disables TRADE-basis totalling.
type HoldingContract struct {
	Portfolio       PortfolioInfo       `json:"portfolio"`
	Positions       map[string]Position `json:"positions"`
	MixedCurrencies bool                `json:"mixedCurrencies"`
	AsAt            string              `json:"asAt,omitempty"`
}
