package model

// TrnType is the closed set of transaction types the upstream ledger
// service emits.
type TrnType string

const (
	Buy        TrnType = "BUY"
	Sell       TrnType = "SELL"
	Dividend   TrnType = "DIVI"
	Deposit    TrnType = "DEPOSIT"
	Withdrawal TrnType = "WITHDRAWAL"
	Income     TrnType = "INCOME"
	Deduction  TrnType = "DEDUCTION"
	FX         TrnType = "FX"
	FXBuy      TrnType = "FX_BUY"
	Add        TrnType = "ADD"
	Reduce     TrnType = "REDUCE"
	Split      TrnType = "SPLIT"
	CostAdjust TrnType = "COST_ADJUST"
	Balance    TrnType = "BALANCE"
)

// Transaction is one cash-affecting event as recorded by the upstream
// ledger service. Immutable once fetched; different types record their
// cash effect in different fields (see the ledger package).
type Transaction struct {
	ID            string   `json:"id"`
	TrnType       TrnType  `json:"trnType"`
	Asset         Asset    `json:"asset"`
	CashAsset     *Asset   `json:"cashAsset,omitempty"`
	Quantity      float64  `json:"quantity"`
	Price         float64  `json:"price"`
	TradeAmount   float64  `json:"tradeAmount"`
	CashAmount    float64  `json:"cashAmount"`
	TradeCurrency Currency `json:"tradeCurrency"`
	CashCurrency  Currency `json:"cashCurrency"`
	TradeDate     string   `json:"tradeDate"`
	Status        string   `json:"status,omitempty"`
	Broker        string   `json:"broker,omitempty"`
}

// TrnWithBalance is a transaction annotated with its canonicalized cash
// impact and the cash balance immediately after it occurred. Produced only
// by the ladder builder, consumed only by display.
type TrnWithBalance struct {
	Transaction
	SignedCashAmount float64 `json:"signedCashAmount"`
	RunningBalance   float64 `json:"runningBalance"`
}
