package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist upstream.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist upstream.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrCurrencyNotFound indicates that a currency code has no reference data.
	ErrCurrencyNotFound = errors.New("currency not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrCurrencyMismatch indicates that positions contributed different currencies
	// to one accumulation basis. Totals would mislabel their currency if this
	// were allowed through.
	ErrCurrencyMismatch = errors.New("currency mismatch in accumulation")

	// ErrNotCashAsset indicates that a cash ladder was requested for an asset
	// that is not categorized as cash.
	ErrNotCashAsset = errors.New("asset is not a cash asset")

	// ErrInvalidValueIn indicates an unknown valuation basis in a request.
	ErrInvalidValueIn = errors.New("invalid valueIn")

	// ErrInvalidGroupBy indicates an unknown grouping strategy in a request.
	ErrInvalidGroupBy = errors.New("invalid groupBy")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Upstream errors represent failures talking to the valuation and ledger
// services this backend proxies.
var (
	// ErrUpstreamUnavailable indicates the upstream service could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUpstreamResponse indicates the upstream service answered with an
	// unexpected status or payload shape.
	ErrUpstreamResponse = errors.New("unexpected upstream response")

	// ErrUnauthorized indicates a missing, malformed or expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)
