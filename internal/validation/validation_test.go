package validation_test

import (
	"errors"
	"testing"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/holdings"
	"github.com/holdview/Holdings-View-Backend/internal/model"
	"github.com/holdview/Holdings-View-Backend/internal/validation"
)

// TestValidateUUID tests UUID validation.
//
// WHY: Portfolio and asset IDs feed straight into upstream URLs; rejecting
// garbage here keeps bad requests off the wire.
func TestValidateUUID(t *testing.T) {
	if err := validation.ValidateUUID("b6cafe26-0b1a-4f8c-9a3e-2b1a4f8c9a3e"); err != nil {
		t.Errorf("Expected valid UUID to pass, got %v", err)
	}

	if err := validation.ValidateUUID("not-a-uuid"); !errors.Is(err, apperrors.ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}

	if err := validation.ValidateUUID(""); !errors.Is(err, apperrors.ErrEmptyID) {
		t.Errorf("Expected ErrEmptyID, got %v", err)
	}
}

// TestParseValueIn tests valuation basis parsing.
//
// WHY: valueIn selects which money bag the subtotals come from; an unknown
// basis must be a 400, not a silently wrong default.
func TestParseValueIn(t *testing.T) {
	t.Run("defaults to PORTFOLIO", func(t *testing.T) {
		valueIn, err := validation.ParseValueIn("")
		if err != nil {
			t.Fatalf("ParseValueIn() returned unexpected error: %v", err)
		}
		if valueIn != model.Portfolio {
			t.Errorf("Expected PORTFOLIO, got %s", valueIn)
		}
	})

	t.Run("accepts all bases case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]model.ValueIn{
			"trade":     model.Trade,
			"BASE":      model.Base,
			"Portfolio": model.Portfolio,
		} {
			valueIn, err := validation.ParseValueIn(raw)
			if err != nil {
				t.Errorf("ParseValueIn(%q) returned unexpected error: %v", raw, err)
			}
			if valueIn != want {
				t.Errorf("ParseValueIn(%q) = %s, want %s", raw, valueIn, want)
			}
		}
	})

	t.Run("rejects unknown basis", func(t *testing.T) {
		if _, err := validation.ParseValueIn("EUR"); !errors.Is(err, apperrors.ErrInvalidValueIn) {
			t.Errorf("Expected ErrInvalidValueIn, got %v", err)
		}
	})
}

// TestParseGroupBy tests grouping strategy parsing.
//
// WHY: An unknown strategy would bucket every position into "undefined";
// it must be rejected at the edge instead.
func TestParseGroupBy(t *testing.T) {
	t.Run("defaults to asset class", func(t *testing.T) {
		groupBy, err := validation.ParseGroupBy("")
		if err != nil {
			t.Fatalf("ParseGroupBy() returned unexpected error: %v", err)
		}
		if groupBy != holdings.GroupByAssetClass {
			t.Errorf("Expected ASSET_CLASS, got %s", groupBy)
		}
	})

	t.Run("accepts known strategies case-insensitively", func(t *testing.T) {
		groupBy, err := validation.ParseGroupBy("market")
		if err != nil {
			t.Fatalf("ParseGroupBy() returned unexpected error: %v", err)
		}
		if groupBy != holdings.GroupByMarket {
			t.Errorf("Expected MARKET, got %s", groupBy)
		}
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		if _, err := validation.ParseGroupBy("broker"); !errors.Is(err, apperrors.ErrInvalidGroupBy) {
			t.Errorf("Expected ErrInvalidGroupBy, got %v", err)
		}
	})
}

// TestParseHideEmpty tests the hideEmpty flag parsing.
//
// WHY: Closed positions are hidden by default; the flag must round-trip
// explicit true/false and reject garbage.
func TestParseHideEmpty(t *testing.T) {
	hideEmpty, err := validation.ParseHideEmpty("")
	if err != nil || hideEmpty != true {
		t.Errorf("Expected default true, got %v, %v", hideEmpty, err)
	}

	hideEmpty, err = validation.ParseHideEmpty("false")
	if err != nil || hideEmpty != false {
		t.Errorf("Expected false, got %v, %v", hideEmpty, err)
	}

	if _, err := validation.ParseHideEmpty("maybe"); err == nil {
		t.Error("Expected an error for a non-boolean value")
	}
}
