package date

import (
	"fmt"
	"strings"
)

// Lookback is a window of time ending on a given day, as offered by the
// period selector of rate and portfolio charts.
type Lookback int

const (
	OneWeek Lookback = iota
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	ThreeYears
	All
)

// Lookbacks lists all lookbacks, shortest first.
var Lookbacks = []Lookback{OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear, ThreeYears, All}

func (l Lookback) String() string {
	switch l {
	case OneWeek:
		return "1W"
	case OneMonth:
		return "1M"
	case ThreeMonths:
		return "3M"
	case SixMonths:
		return "6M"
	case OneYear:
		return "1Y"
	case ThreeYears:
		return "3Y"
	case All:
		return "ALL"
	default:
		panic(fmt.Sprintf("unknown lookback %d", int(l)))
	}
}

// ParseLookback parses 1W, 1M, 3M, 6M, 1Y, 3Y or ALL (case-insensitive).
func ParseLookback(s string) (Lookback, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, l := range Lookbacks {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown period %q, want one of 1W, 1M, 3M, 6M, 1Y, 3Y, ALL", s)
}

// Range returns the window ending on end. origin is where the data starts,
// and is only used by All.
func (l Lookback) Range(end, origin Date) Range {
	var from Date
	switch l {
	case OneWeek:
		from = end.Add(-7)
	case OneMonth:
		from = end.AddMonths(-1)
	case ThreeMonths:
		from = end.AddMonths(-3)
	case SixMonths:
		from = end.AddMonths(-6)
	case OneYear:
		from = end.AddYears(-1)
	case ThreeYears:
		from = end.AddYears(-3)
	default:
		from = origin
	}
	return Range{From: from, To: end}
}
