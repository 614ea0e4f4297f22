package holdings_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/holdings"
	"github.com/holdview/Holdings-View-Backend/internal/model"
	"github.com/holdview/Holdings-View-Backend/internal/testutil"
)

// TestAggregate_GroupsAndTotals tests the headline aggregation path.
//
// WHY: Every screen hangs off this computation. A mixed equity/cash
// portfolio must split into the right buckets with the cash contribution
// landing in the cash bucket, not in trading activity.
func TestAggregate_GroupsAndTotals(t *testing.T) {
	equity := testutil.NewPosition().
		WithMarketValue(model.Portfolio, 1000).
		WithPurchases(model.Portfolio, 1000).
		Build()
	cash := testutil.NewPosition().
		WithAsset(testutil.CashAsset(testutil.USD)).
		WithMarketValue(model.Portfolio, 500).
		Build()

	contract := testutil.NewContract().
		WithPosition("TEST.NYSE", equity).
		WithPosition("USD.CASH", cash).
		Build()

	result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	if len(result.HoldingGroups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(result.HoldingGroups))
	}
	if _, ok := result.HoldingGroups["Equity"]; !ok {
		t.Error("Expected an Equity group")
	}
	if _, ok := result.HoldingGroups["Cash"]; !ok {
		t.Error("Expected a Cash group")
	}

	totals := result.Totals[model.Portfolio]
	if totals.MarketValue != 1500 {
		t.Errorf("Expected totals marketValue 1500, got %v", totals.MarketValue)
	}
	if totals.Cash != 500 {
		t.Errorf("Expected totals cash 500, got %v", totals.Cash)
	}
	if totals.Purchases != 1000 {
		t.Errorf("Expected totals purchases 1000, got %v", totals.Purchases)
	}
}

// TestAggregate_Additivity tests that the portfolio total equals the sum of
// position contributions.
//
// WHY: Accumulation additivity is the core invariant; losing a position's
// contribution silently misstates money.
func TestAggregate_Additivity(t *testing.T) {
	contract := testutil.NewContract().
		WithPosition("A", testutil.NewPosition().WithMarketValue(model.Portfolio, 100.5).Build()).
		WithPosition("B", testutil.NewPosition().WithMarketValue(model.Portfolio, 200.25).Build()).
		WithPosition("C", testutil.NewPosition().WithMarketValue(model.Portfolio, 300.125).Build()).
		Build()

	result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	var expected float64
	for _, position := range contract.Positions {
		expected += position.MoneyValues[model.Portfolio].MarketValue
	}
	if got := result.Totals[model.Portfolio].MarketValue; got != expected {
		t.Errorf("Expected totals marketValue %v, got %v", expected, got)
	}
}

// TestAggregate_CashBucketExclusivity tests that cash assets never leak
// into trading activity fields.
//
// WHY: A cash balance showing up as purchases or daily gain would misstate
// trading activity on every screen.
func TestAggregate_CashBucketExclusivity(t *testing.T) {
	cash := testutil.NewPosition().
		WithAsset(testutil.CashAsset(testutil.USD)).
		WithMarketValue(model.Portfolio, 500).
		WithPurchases(model.Portfolio, 400).
		WithGainOnDay(model.Portfolio, 25).
		Build()

	contract := testutil.NewContract().WithPosition("USD.CASH", cash).Build()

	result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	totals := result.Totals[model.Portfolio]
	if totals.Cash != 500 {
		t.Errorf("Expected cash 500, got %v", totals.Cash)
	}
	if totals.Purchases != 0 {
		t.Errorf("Expected purchases 0 for a cash asset, got %v", totals.Purchases)
	}
	if totals.Sales != 0 {
		t.Errorf("Expected sales 0 for a cash asset, got %v", totals.Sales)
	}
	if totals.GainOnDay != 0 {
		t.Errorf("Expected gainOnDay 0 for a cash asset, got %v", totals.GainOnDay)
	}
}

// TestAggregate_MixedCurrencyGuard tests TRADE-basis totalling under mixed
// trading currencies.
//
// WHY: Summing trade-currency amounts across currencies produces a
// meaningless number; the TRADE total must be absent, not zero.
func TestAggregate_MixedCurrencyGuard(t *testing.T) {
	t.Run("omits TRADE totals when currencies are mixed", func(t *testing.T) {
		contract := testutil.NewContract().
			MixedCurrencies().
			WithPosition("A", testutil.NewPosition().WithMarketValue(model.Trade, 100).Build()).
			Build()

		result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		if _, ok := result.Totals[model.Trade]; ok {
			t.Error("Expected TRADE totals to be absent under mixed currencies")
		}
		if _, ok := result.Totals[model.Portfolio]; !ok {
			t.Error("Expected PORTFOLIO totals to be present")
		}
		if _, ok := result.Totals[model.Base]; !ok {
			t.Error("Expected BASE totals to be present")
		}
	})

	t.Run("accumulates TRADE totals for a single-currency contract", func(t *testing.T) {
		contract := testutil.NewContract().
			WithPosition("A", testutil.NewPosition().WithMarketValue(model.Trade, 100).Build()).
			Build()

		result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
		if err != nil {
			t.Fatalf("Aggregate() returned unexpected error: %v", err)
		}

		trade, ok := result.Totals[model.Trade]
		if !ok {
			t.Fatal("Expected TRADE totals to be present")
		}
		if trade.MarketValue != 100 {
			t.Errorf("Expected TRADE marketValue 100, got %v", trade.MarketValue)
		}
	})
}

// TestAggregate_HideEmpty tests closed-position filtering.
//
// WHY: hideEmpty must drop closed positions before grouping and be
// idempotent: re-aggregating the same contract yields identical output.
func TestAggregate_HideEmpty(t *testing.T) {
	closed := testutil.NewPosition().WithQuantity(0).WithMarketValue(model.Portfolio, 999).Build()
	open := testutil.NewPosition().WithMarketValue(model.Portfolio, 100).Build()

	contract := testutil.NewContract().
		WithPosition("CLOSED", closed).
		WithPosition("OPEN", open).
		Build()

	first, err := holdings.Aggregate(contract, true, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	group := first.HoldingGroups["Equity"]
	if group == nil || len(group.Positions) != 1 {
		t.Fatalf("Expected 1 position in Equity group, got %+v", group)
	}
	if first.Totals[model.Portfolio].MarketValue != 100 {
		t.Errorf("Expected closed position excluded from totals, got %v",
			first.Totals[model.Portfolio].MarketValue)
	}

	second, err := holdings.Aggregate(contract, true, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output from repeated aggregation")
	}
}

// TestAggregate_SubTotalsScopedToValueIn tests that group subtotals only
// exist for the requested basis.
//
// WHY: Subtotals are a display-time concept for the active basis; building
// all three per group would triple the work for nothing the UI shows.
func TestAggregate_SubTotalsScopedToValueIn(t *testing.T) {
	contract := testutil.NewContract().
		WithPosition("A", testutil.NewPosition().WithMarketValue(model.Base, 250).Build()).
		Build()

	result, err := holdings.Aggregate(contract, false, model.Base, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	group := result.HoldingGroups["Equity"]
	if group == nil {
		t.Fatal("Expected an Equity group")
	}
	if len(group.SubTotals) != 1 {
		t.Errorf("Expected subtotals for exactly 1 basis, got %d", len(group.SubTotals))
	}
	subTotal, ok := group.SubTotals[model.Base]
	if !ok {
		t.Fatal("Expected BASE subtotals")
	}
	if subTotal.MarketValue != 250 {
		t.Errorf("Expected BASE subtotal marketValue 250, got %v", subTotal.MarketValue)
	}
}

// TestAggregate_EmptyContract tests aggregation over no positions.
//
// WHY: A new portfolio has no positions; that is a valid all-zero view, not
// an error.
func TestAggregate_EmptyContract(t *testing.T) {
	contract := testutil.NewContract().Build()

	result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	if len(result.HoldingGroups) != 0 {
		t.Errorf("Expected no groups, got %d", len(result.HoldingGroups))
	}
	totals, ok := result.Totals[model.Portfolio]
	if !ok {
		t.Fatal("Expected PORTFOLIO totals to be present")
	}
	if totals.MarketValue != 0 || totals.Cash != 0 {
		t.Errorf("Expected all-zero totals, got %+v", totals)
	}
}

// TestAggregate_UndefinedBucket tests the sentinel bucket for sparse
// reference data.
//
// WHY: Missing reference data must not fail the aggregation; it collapses
// into the "undefined" bucket as a data-quality signal.
func TestAggregate_UndefinedBucket(t *testing.T) {
	contract := testutil.NewContract().
		WithPosition("A", testutil.NewPosition().WithSector("").Build()).
		WithPosition("B", testutil.NewPosition().WithSector("").Build()).
		Build()

	result, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupBySector)
	if err != nil {
		t.Fatalf("Aggregate() returned unexpected error: %v", err)
	}

	if len(result.HoldingGroups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(result.HoldingGroups))
	}
	group, ok := result.HoldingGroups[holdings.UndefinedGroup]
	if !ok {
		t.Fatal("Expected the undefined group")
	}
	if len(group.Positions) != 2 {
		t.Errorf("Expected 2 positions in the undefined group, got %d", len(group.Positions))
	}
}

// TestAggregate_CurrencyMismatch tests per-accumulator currency validation.
//
// WHY: An accumulator that pins its currency from the first contribution
// and then absorbs a different currency would mislabel the total; that must
// fail loudly.
func TestAggregate_CurrencyMismatch(t *testing.T) {
	contract := testutil.NewContract().
		WithPosition("A", testutil.NewPosition().WithMarketValue(model.Portfolio, 100).Build()).
		WithPosition("B", testutil.NewPosition().
			WithMarketValue(model.Portfolio, 200).
			WithCurrency(model.Portfolio, testutil.NZD).
			Build()).
		Build()

	_, err := holdings.Aggregate(contract, false, model.Portfolio, holdings.GroupByAssetClass)
	if err == nil {
		t.Fatal("Expected an error for mixed currencies within one basis")
	}
	if !errors.Is(err, apperrors.ErrCurrencyMismatch) {
		t.Errorf("Expected ErrCurrencyMismatch, got %v", err)
	}
}
