package portfolio

import "github.com/shopspring/decimal"

// SeriesStats are the figures shown next to a rate chart.
type SeriesStats struct {
	High, Low, Average Money
	// Change is the last price minus the first one.
	Change        Money
	ChangePercent Percent
}

// Stats summarizes a price series, in date order. An empty series has zero stats.
func (s Series) Stats() SeriesStats {
	var st SeriesStats
	if len(s) == 0 {
		return st
	}
	s = s.Sorted()
	st.High, st.Low = s[0].Price, s[0].Price
	var sum decimal.Decimal
	for _, p := range s {
		if p.Price.GreaterThan(st.High) {
			st.High = p.Price
		}
		if p.Price.LessThan(st.Low) {
			st.Low = p.Price
		}
		sum = sum.Add(p.Price.value)
	}
	first, last := s[0].Price, s[len(s)-1].Price
	st.Average = Money{value: sum.Div(decimal.NewFromInt(int64(len(s)))), cur: first.cur}
	st.Change = last.Sub(first)
	st.ChangePercent = percent(st.Change.value, first.value)
	return st
}
