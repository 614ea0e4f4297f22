package model

// Currency is immutable reference data describing a currency.
// Many money values share one currency instance; the catalog owns
// the canonical copies.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
}
