package portfolio

import (
	"fmt"

	"github.com/altinfolio/portfolio/date"
)

// Comparison limits.
const (
	MinCompared = 2
	MaxCompared = 5
)

// Comparison puts several instruments on one normalized axis over a range.
type Comparison struct {
	Instruments []InstrumentKey
	Range       date.Range
	Normalized  Normalized
	// Returns holds the return of each instrument over its first and last
	// price within the range. Instruments without prices are absent.
	Returns map[InstrumentKey]ReturnResult
}

// Compare normalizes the price series of 2 to 5 distinct instruments over r.
//
// Points outside r are ignored.
func Compare(keys []InstrumentKey, prices map[InstrumentKey]Series, r date.Range) (Comparison, error) {
	c := Comparison{Range: r, Returns: make(map[InstrumentKey]ReturnResult, len(keys))}
	seen := make(map[InstrumentKey]bool, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			c.Instruments = append(c.Instruments, k)
		}
	}
	if len(c.Instruments) < MinCompared || len(c.Instruments) > MaxCompared {
		return c, fmt.Errorf("%w: got %d, want %d to %d", ErrComparisonSize, len(c.Instruments), MinCompared, MaxCompared)
	}
	if !r.IsValid() {
		return c, fmt.Errorf("%w: invalid range %s", ErrInvalidDuration, r)
	}

	set := make(map[InstrumentKey]Series, len(c.Instruments))
	for _, k := range c.Instruments {
		var within Series
		for _, p := range prices[k].Sorted() {
			if r.Contains(p.Date) {
				within = append(within, p)
			}
		}
		set[k] = within
		if len(within) > 0 {
			first, last := within[0], within[len(within)-1]
			c.Returns[k] = ComputeReturn(first.Price, last.Price, first.Date, last.Date)
		}
	}
	c.Normalized = Normalize(set)
	return c, nil
}
