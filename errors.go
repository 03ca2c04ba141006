package portfolio

import "errors"

// Error kinds reported by the engine.
//
// Computation errors are carried inside results (an Err field or an Errors
// map) so that one faulty instrument never prevents the others from being
// computed. Use errors.Is to test for a kind.
var (
	// ErrMissingRate means no current rate was found for an instrument.
	// Valuations fall back to the cost price and flag it.
	ErrMissingRate = errors.New("missing rate")

	// ErrDivisionByZero means a normalization base price is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDuration means an annualized return was requested over a
	// zero or negative span of days.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidBase means an annualized return was requested from a
	// non-positive starting value.
	ErrInvalidBase = errors.New("invalid base value")

	// ErrRateNotFound is returned by a RateLookup that has no rate for an instrument.
	ErrRateNotFound = errors.New("rate not found")

	// ErrInvalidRecord is returned when a record entering the engine is malformed.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrOversold means a SELL transaction exceeds the amount held.
	ErrOversold = errors.New("sell exceeds holding")

	// ErrComparisonSize means a comparison was requested with too few or too many instruments.
	ErrComparisonSize = errors.New("invalid number of instruments to compare")
)
