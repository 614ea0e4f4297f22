package model

// ValueIn identifies the valuation basis a set of money values is expressed
// in. A position, a group and a whole holdings set each carry one MoneyValues
// per basis, which lets callers switch the displayed basis without
// recomputation.
type ValueIn string

const (
	// Trade is the position's native trading currency.
	Trade ValueIn = "TRADE"
	// Base is the portfolio's declared base currency.
	Base ValueIn = "BASE"
	// Portfolio is the portfolio's display currency.
	Portfolio ValueIn = "PORTFOLIO"
)

// PriceData carries the latest quote behind a position's market value.
type PriceData struct {
	Close         float64 `json:"close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	PriceDate     string  `json:"priceDate,omitempty"`
}

// MoneyValues is a bag of monetary facts about a position or a group, all
// expressed in one valuation basis. Accumulators start every numeric field
// at zero and grow by addition only; AverageCost and Weight are derived by
// callers, never accumulated.
type MoneyValues struct {
	MarketValue    float64    `json:"marketValue"`
	CostValue      float64    `json:"costValue"`
	Dividends      float64    `json:"dividends"`
	Fees           float64    `json:"fees"`
	Tax            float64    `json:"tax"`
	Cash           float64    `json:"cash"`
	Purchases      float64    `json:"purchases"`
	Sales          float64    `json:"sales"`
	CostBasis      float64    `json:"costBasis"`
	AverageCost    float64    `json:"averageCost"`
	RealisedGain   float64    `json:"realisedGain"`
	UnrealisedGain float64    `json:"unrealisedGain"`
	TotalGain      float64    `json:"totalGain"`
	GainOnDay      float64    `json:"gainOnDay"`
	Weight         float64    `json:"weight"`
	Currency       Currency   `json:"currency"`
	PriceData      *PriceData `json:"priceData,omitempty"`
}

// QuantityValues describes the current and lifetime unit count of a
// position. Total == 0 signals an empty (closed) position.
type QuantityValues struct {
	Total     float64 `json:"total"`
	Purchased float64 `json:"purchased"`
	Sold      float64 `json:"sold"`
	Precision int     `json:"precision"`
}
