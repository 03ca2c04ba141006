package portfolio

import (
	"fmt"

	"github.com/altinfolio/portfolio/date"
)

// Simulation asks what an investment made in the past would be worth.
type Simulation struct {
	Instrument     InstrumentKey
	Amount         Quantity
	InvestmentDate date.Date
	// ComparisonDate is the end of the simulation, the latest rate when zero.
	ComparisonDate date.Date
	// StartField and EndField select the quoted side used at both ends.
	StartField, EndField PriceField
}

// SimulationResult is the outcome of a Simulation.
type SimulationResult struct {
	Simulation
	// StartRate and EndRate are the rates used: the latest ones not after
	// the investment and comparison dates.
	StartRate, EndRate Rate
	InitialValue       Money
	CurrentValue       Money
	Return             ReturnResult
}

// Simulate values the simulated investment with the rates of its
// instrument, which must be sorted by date.
//
// The return is computed between the requested dates, so that the
// annualized figure is the same as anywhere else for the same window.
func Simulate(s Simulation, rates []Rate) (SimulationResult, error) {
	res := SimulationResult{Simulation: s}
	if !s.Amount.IsPositive() {
		return res, fmt.Errorf("%w: simulated amount must be positive, got %v", ErrInvalidRecord, s.Amount)
	}
	var h date.History[Rate]
	for _, r := range rates {
		if r.Instrument == s.Instrument {
			h.Append(r.Date, r)
		}
	}
	start, ok := h.ValueAsOf(s.InvestmentDate)
	if !ok {
		return res, fmt.Errorf("%w: no rate for %s on or before %s", ErrMissingRate, s.Instrument, s.InvestmentDate)
	}
	endDate := s.ComparisonDate
	end, ok := h.ValueAsOf(endDate)
	if endDate.IsZero() {
		endDate, end = h.Latest()
		ok = h.Len() > 0
	}
	if !ok {
		return res, fmt.Errorf("%w: no rate for %s on or before %s", ErrMissingRate, s.Instrument, endDate)
	}
	if endDate.Before(s.InvestmentDate) {
		return res, fmt.Errorf("%w: comparison date %s is before investment date %s", ErrInvalidDuration, endDate, s.InvestmentDate)
	}

	res.StartRate, res.EndRate = start, end
	res.ComparisonDate = endDate
	res.InitialValue = start.Price(s.StartField).Mul(s.Amount)
	res.CurrentValue = end.Price(s.EndField).Mul(s.Amount)
	res.Return = ComputeReturn(res.InitialValue, res.CurrentValue, s.InvestmentDate, endDate)
	return res, nil
}
