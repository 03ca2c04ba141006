package date

import (
	"fmt"
	"iter"
)

// Range is a closed interval of days.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether day lies within the range, boundaries included.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// IsValid reports whether From is not after To.
func (r Range) IsValid() bool { return !r.From.After(r.To) }

// Days iterates over every day of the range.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of days in the range, 0 for an inverted range.
func (r Range) Len() int {
	if !r.IsValid() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
