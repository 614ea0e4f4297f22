// Package ledger reconstructs a verifiable cash ladder from an unordered
// vocabulary of cash-affecting transactions.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// amountSource names the transaction field a type records its cash effect
// in. The upstream systems are not consistent about where the number lives.
type amountSource int

const (
	fromCashAmount amountSource = iota
	fromQuantity
	fromTradeAmount
)

// cashRule describes how one transaction type maps to a signed cash impact:
// which field carries the raw amount, and whether the type credits or
// debits the cash account.
type cashRule struct {
	source amountSource
	credit bool
}

// cashRules is the single source of truth for cash direction. The stored
// sign of the raw field is not trusted: upstream systems have historically
// recorded inconsistent signs for the same type, so the amount is taken
// absolute and the rule supplies the sign.
//
// DEPOSIT, WITHDRAWAL and DEDUCTION rows carry their amount as quantity
// with price=1 by convention. Types not listed fall through to the
// cashAmount-sourced debit default; an unanticipated type is silently
// misclassified rather than rejected, surfacing only through manual
// reconciliation.
var cashRules = map[model.TrnType]cashRule{
	model.Deposit:    {source: fromQuantity, credit: true},
	model.Withdrawal: {source: fromQuantity, credit: false},
	model.Deduction:  {source: fromQuantity, credit: false},
	model.Income:     {source: fromTradeAmount, credit: true},
	model.Sell:       {source: fromCashAmount, credit: true},
	model.Dividend:   {source: fromCashAmount, credit: true},
}

var defaultRule = cashRule{source: fromCashAmount, credit: false}

// SignedAmount canonicalizes a transaction's cash impact on the queried
// cash asset: select the raw amount field for the type, take its absolute
// value, and apply the type's canonical sign.
//
// FX_BUY is special-cased: when the transaction's asset is the queried cash
// asset, the row represents a credit of the purchased currency and the
// amount lives in quantity. Every other FX_BUY leg takes the default
// cashAmount debit.
func SignedAmount(trn model.Transaction, cashAssetID string) decimal.Decimal {
	rule, ok := cashRules[trn.TrnType]
	if !ok {
		rule = defaultRule
	}
	if trn.TrnType == model.FXBuy && trn.Asset.ID == cashAssetID {
		rule = cashRule{source: fromQuantity, credit: true}
	}

	var raw float64
	switch rule.source {
	case fromQuantity:
		raw = trn.Quantity
	case fromTradeAmount:
		raw = trn.TradeAmount
	default:
		raw = trn.CashAmount
	}

	amount := decimal.NewFromFloat(raw).Abs()
	if !rule.credit {
		amount = amount.Neg()
	}
	return amount
}
