package portfolio

import (
	"fmt"

	"github.com/altinfolio/portfolio/date"
	"github.com/shopspring/decimal"
)

// Valuation is a position combined with its current rate.
type Valuation struct {
	Position

	CurrentPrice          Money
	CurrentValue          Money
	PnL                   Money
	PnLPercent            Percent
	PortfolioSharePercent Percent

	// PriceFallbackUsed is set when no rate was found: CurrentPrice is then
	// the weighted average cost price and PnL is 0.
	PriceFallbackUsed bool
	// RateDate is the date of the rate used, zero on fallback.
	RateDate date.Date
}

// Err returns ErrMissingRate when the valuation fell back to the cost price.
func (v Valuation) Err() error {
	if v.PriceFallbackUsed {
		return fmt.Errorf("%w for %s", ErrMissingRate, v.Instrument)
	}
	return nil
}

// Valuate values every position at the buy price of its rate, the price
// realized on liquidation.
//
// Results follow the order of positions. A position without a rate is valued
// at its cost price and flagged. Shares are computed against the sum of all
// current values, and are all 0 when that sum is 0.
func Valuate(positions *Positions, rates RateSnapshot) []Valuation {
	valuations := make([]Valuation, 0, positions.Len())
	var total decimal.Decimal
	for key, p := range positions.All() {
		v := Valuation{Position: p}
		if r, ok := rates.Get(key); ok {
			v.CurrentPrice = r.Price(BuyPrice)
			v.RateDate = r.Date
		} else {
			v.CurrentPrice = p.WeightedAverageCostPrice()
			v.PriceFallbackUsed = true
		}
		v.CurrentValue = v.CurrentPrice.Mul(p.TotalAmount)
		v.PnL = v.CurrentValue.Sub(p.TotalCostBasis)
		if v.PriceFallbackUsed {
			// cost / amount * amount may not round trip exactly.
			v.CurrentValue = p.TotalCostBasis
			v.PnL = Money{cur: v.CurrentValue.cur}
		}
		v.PnLPercent = percent(v.PnL.value, p.TotalCostBasis.value)
		total = total.Add(v.CurrentValue.value)
		valuations = append(valuations, v)
	}
	for i := range valuations {
		valuations[i].PortfolioSharePercent = percent(valuations[i].CurrentValue.value, total)
	}
	return valuations
}

func (v Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("instrumentType", v.Instrument.Type)
	w.Append("instrumentName", v.Instrument.Name)
	w.Append("totalAmount", v.TotalAmount)
	w.Append("weightedAverageCostPrice", v.WeightedAverageCostPrice())
	w.Append("totalCostBasis", v.TotalCostBasis)
	w.Append("currentPrice", v.CurrentPrice)
	w.Append("currentValue", v.CurrentValue)
	w.Append("pnl", v.PnL)
	w.Append("pnlPercent", v.PnLPercent)
	w.Append("portfolioSharePercent", v.PortfolioSharePercent)
	w.Append("priceFallbackUsed", v.PriceFallbackUsed)
	w.Optional("rateDate", v.RateDate)
	return w.MarshalJSON()
}
