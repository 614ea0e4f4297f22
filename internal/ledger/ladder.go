package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// balancePrecision is the decimal precision of amounts and balances at the
// response boundary.
const balancePrecision = 2

// BuildLadder annotates a newest-first transaction list with each
// transaction's signed cash impact and the cash balance immediately after
// it occurred.
//
// The current total balance is the sum of every signed amount. The walk
// then runs backward from "now": each row records the balance as of itself,
// and undoing the row's effect yields the balance for the next, older row.
// The oldest row therefore bottoms out at exactly its own signed amount.
//
// Correctness depends on the input already being sorted descending by trade
// date. The builder neither sorts nor validates ordering; a mis-sorted
// input produces a mathematically consistent but chronologically wrong
// ladder that nothing here can detect.
//
// Pure over its inputs; the result preserves the input order.
func BuildLadder(transactions []model.Transaction, cashAssetID string) []model.TrnWithBalance {
	signed := make([]decimal.Decimal, len(transactions))
	balance := decimal.Zero
	for i, trn := range transactions {
		signed[i] = SignedAmount(trn, cashAssetID)
		balance = balance.Add(signed[i])
	}

	ladder := make([]model.TrnWithBalance, len(transactions))
	for i, trn := range transactions {
		ladder[i] = model.TrnWithBalance{
			Transaction:      trn,
			SignedCashAmount: signed[i].Round(balancePrecision).InexactFloat64(),
			RunningBalance:   balance.Round(balancePrecision).InexactFloat64(),
		}
		balance = balance.Sub(signed[i])
	}
	return ladder
}
