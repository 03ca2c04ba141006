package portfolio

// Summary is the rollup of the valuations of one portfolio.
type Summary struct {
	TotalCost  Money
	TotalValue Money
	PnL        Money
	PnLPercent Percent
	// AssetCount is the number of distinct positions, not of lots.
	AssetCount int
	// FallbackCount is the number of positions valued at cost for lack of a rate.
	FallbackCount int
	Realized      Money
}

// Summarize sums the valuations. PnLPercent is 0 when the total cost is 0.
func Summarize(valuations []Valuation) Summary {
	var s Summary
	for _, v := range valuations {
		s.TotalCost = s.TotalCost.Add(v.TotalCostBasis)
		s.TotalValue = s.TotalValue.Add(v.CurrentValue)
		s.Realized = s.Realized.Add(v.Realized)
		if v.PriceFallbackUsed {
			s.FallbackCount++
		}
	}
	s.AssetCount = len(valuations)
	s.PnL = s.TotalValue.Sub(s.TotalCost)
	s.PnLPercent = percent(s.PnL.value, s.TotalCost.value)
	return s
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalCost", s.TotalCost)
	w.Append("totalValue", s.TotalValue)
	w.Append("pnl", s.PnL)
	w.Append("pnlPercent", s.PnLPercent)
	w.Append("assetCount", s.AssetCount)
	w.Optional("fallbackCount", s.FallbackCount)
	return w.MarshalJSON()
}
