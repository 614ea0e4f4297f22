package model

// HoldingGroup clusters the positions that share one group key, together
// with subtotals for the valuation basis the aggregation was requested in.
// Groups are transient; they are rebuilt on every aggregation call and
// never persisted.
type HoldingGroup struct {
	Positions []Position               `json:"positions"`
	SubTotals map[ValueIn]*MoneyValues `json:"subTotals"`
}

// Holdings is the aggregated, grouped view of one portfolio's positions.
// Totals carries portfolio-wide accumulations per basis; the TRADE key is
// absent (not zero) when the contract spans mixed trading currencies, and
// callers must treat that absence as "not displayable".
type Holdings struct {
	Portfolio     PortfolioInfo            `json:"portfolio"`
	ValueIn       ValueIn                  `json:"valueIn"`
	HoldingGroups map[string]*HoldingGroup `json:"holdingGroups"`
	Totals        map[ValueIn]*MoneyValues `json:"totals"`
}
