// Package holdings turns a flat holding contract into a grouped, subtotaled,
// multi-basis view of a portfolio.
package holdings

import (
	"fmt"
	"slices"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// Aggregate folds the contract's position map into groups and totals.
//
// Portfolio-wide totals are accumulated for the PORTFOLIO and BASE bases
// unconditionally. The TRADE total is only accumulated when the contract's
// positions all trade in one currency; summing trade-currency amounts across
// currencies is meaningless, so under MixedCurrencies the TRADE key is left
// absent from Totals rather than set to zero. Group subtotals are accumulated
// for the requested valueIn only.
//
// When hideEmpty is set, positions with a zero total quantity are dropped
// before grouping.
//
// The function is pure over its inputs and allocates a fresh result on every
// call. Positions are visited in sorted key order, so identical inputs
// produce identical output.
func Aggregate(contract model.HoldingContract, hideEmpty bool, valueIn model.ValueIn, groupBy GroupBy) (*model.Holdings, error) {
	result := &model.Holdings{
		Portfolio:     contract.Portfolio,
		ValueIn:       valueIn,
		HoldingGroups: make(map[string]*model.HoldingGroup),
		Totals: map[model.ValueIn]*model.MoneyValues{
			model.Portfolio: {},
			model.Base:      {},
		},
	}
	if !contract.MixedCurrencies {
		result.Totals[model.Trade] = &model.MoneyValues{}
	}

	assetKeys := make([]string, 0, len(contract.Positions))
	for key := range contract.Positions {
		assetKeys = append(assetKeys, key)
	}
	slices.Sort(assetKeys)

	for _, assetKey := range assetKeys {
		position := contract.Positions[assetKey]
		if hideEmpty && position.QuantityValues.Total == 0 {
			continue
		}

		groupKey := groupBy.Key(position)
		group, ok := result.HoldingGroups[groupKey]
		if !ok {
			group = &model.HoldingGroup{
				SubTotals: make(map[model.ValueIn]*model.MoneyValues),
			}
			result.HoldingGroups[groupKey] = group
		}
		group.Positions = append(group.Positions, position)

		for _, basis := range []model.ValueIn{model.Portfolio, model.Base, model.Trade} {
			total, ok := result.Totals[basis]
			if !ok {
				continue
			}
			if err := accumulate(total, position, basis); err != nil {
				return nil, err
			}
		}

		subTotal, ok := group.SubTotals[valueIn]
		if !ok {
			subTotal = &model.MoneyValues{}
			group.SubTotals[valueIn] = subTotal
		}
		if err := accumulate(subTotal, position, valueIn); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// accumulate adds one position's contribution for the given basis into acc.
//
// The accumulator's currency is pinned by the first contribution; a later
// contribution carrying a different currency code fails the aggregation
// instead of silently mislabeling the total.
//
// Cash assets contribute their market value to the cash bucket and nothing
// to trading activity; only non-cash assets carry purchases, sales and a
// meaningful daily gain.
func accumulate(acc *model.MoneyValues, position model.Position, basis model.ValueIn) error {
	values, ok := position.MoneyValues[basis]
	if !ok {
		return nil
	}

	if acc.Currency.Code == "" {
		acc.Currency = values.Currency
	} else if values.Currency.Code != "" && values.Currency.Code != acc.Currency.Code {
		return fmt.Errorf("%w: %s basis has %s and %s for asset %s",
			apperrors.ErrCurrencyMismatch, basis, acc.Currency.Code, values.Currency.Code, position.Asset.Code)
	}

	acc.MarketValue += values.MarketValue
	acc.CostValue += values.CostValue
	acc.Dividends += values.Dividends
	acc.RealisedGain += values.RealisedGain
	acc.UnrealisedGain += values.UnrealisedGain
	acc.TotalGain += values.TotalGain

	if position.Asset.IsCash() {
		acc.Cash += values.MarketValue
	} else {
		acc.Purchases += values.Purchases
		acc.Sales += values.Sales
		acc.GainOnDay += values.GainOnDay
	}

	return nil
}
