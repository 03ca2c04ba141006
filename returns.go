package portfolio

import (
	"fmt"
	"math"

	"github.com/altinfolio/portfolio/date"
)

// ReturnResult is the return between two point-in-time values.
type ReturnResult struct {
	Start, End         Money
	StartDate, EndDate date.Date

	Absolute     Money
	Percent      Percent
	DurationDays int
	// Annualized is the compounded yearly rate, nil when Err is set.
	Annualized *Percent
	// Err is ErrInvalidDuration or ErrInvalidBase when no annualized
	// return can be computed.
	Err error
}

// ComputeReturn computes the simple and annualized return of going from start
// on startDate to end on endDate.
//
// Percent is 0 when start is 0. Annualized is
// ((end/start)^(365/days) - 1) * 100 and is only defined over a positive
// number of days from a positive start value.
func ComputeReturn(start, end Money, startDate, endDate date.Date) ReturnResult {
	r := ReturnResult{
		Start:        start,
		End:          end,
		StartDate:    startDate,
		EndDate:      endDate,
		Absolute:     end.Sub(start),
		DurationDays: endDate.Sub(startDate),
	}
	r.Percent = percent(r.Absolute.value, start.value)

	switch {
	case r.DurationDays <= 0:
		r.Err = fmt.Errorf("%w: %d days from %s to %s", ErrInvalidDuration, r.DurationDays, startDate, endDate)
		return r
	case !start.IsPositive():
		r.Err = fmt.Errorf("%w: start value %s", ErrInvalidBase, start.value)
		return r
	case end.IsNegative():
		r.Err = fmt.Errorf("%w: end value %s", ErrInvalidBase, end.value)
		return r
	}
	ratio := end.value.Div(start.value).InexactFloat64()
	annualized := Percent((math.Pow(ratio, 365/float64(r.DurationDays)) - 1) * 100)
	r.Annualized = &annualized
	return r
}

func (r ReturnResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("absolute", r.Absolute)
	w.Append("percent", r.Percent)
	w.Append("annualized", r.Annualized)
	w.Append("durationDays", r.DurationDays)
	if r.Err != nil {
		w.Append("error", r.Err.Error())
	}
	return w.MarshalJSON()
}
