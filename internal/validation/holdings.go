package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holdview/Holdings-View-Backend/internal/apperrors"
	"github.com/holdview/Holdings-View-Backend/internal/holdings"
	"github.com/holdview/Holdings-View-Backend/internal/model"
)

// ParseValueIn validates and normalizes a valueIn query parameter.
// An empty value defaults to the PORTFOLIO basis.
func ParseValueIn(raw string) (model.ValueIn, error) {
	if raw == "" {
		return model.Portfolio, nil
	}
	valueIn := model.ValueIn(strings.ToUpper(raw))
	switch valueIn {
	case model.Trade, model.Base, model.Portfolio:
		return valueIn, nil
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidValueIn, raw)
}

// ParseGroupBy validates and normalizes a groupBy query parameter.
// An empty value defaults to grouping by asset class.
func ParseGroupBy(raw string) (holdings.GroupBy, error) {
	if raw == "" {
		return holdings.GroupByAssetClass, nil
	}
	groupBy := holdings.GroupBy(strings.ToUpper(raw))
	if !groupBy.Valid() {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidGroupBy, raw)
	}
	return groupBy, nil
}

// ParseHideEmpty parses a hideEmpty query parameter, defaulting to true:
// closed positions are noise on most screens and callers opt in to seeing
// them.
func ParseHideEmpty(raw string) (bool, error) {
	if raw == "" {
		return true, nil
	}
	hideEmpty, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid hideEmpty: %s", raw)
	}
	return hideEmpty, nil
}
