package portfolio

import (
	"math"

	"github.com/altinfolio/portfolio/date"
	"github.com/shopspring/decimal"
)

// ValuePoint is the value of a portfolio on a day.
type ValuePoint struct {
	Date  date.Date `json:"date"`
	Value Money     `json:"value"`
	// Estimated is set when some instrument had no rate yet and was valued at cost.
	Estimated bool `json:"estimated,omitempty"`
}

// DailyChange is the move of the portfolio value from the previous point.
type DailyChange struct {
	Date          date.Date `json:"date"`
	Value         Money     `json:"value"`
	Change        Money     `json:"change"`
	ChangePercent Percent   `json:"changePercent"`
}

// DailyReport is the analysis of a chronological series of portfolio values.
type DailyReport struct {
	Changes []DailyChange
	// BestDay and WorstDay are the changes with the highest and lowest
	// percentage, the earliest one on a tie. Both are nil with fewer than 2 points.
	BestDay, WorstDay *DailyChange
	// Volatility is the population standard deviation of the daily change percentages.
	Volatility   Percent
	Return       ReturnResult
	AverageValue Money
}

// AnalyzeDaily computes the daily changes of a chronological value series.
//
// The first point has no change. A daily change percent is 0 when the
// previous value is 0. Fewer than 2 points is not an error: the report is
// then empty, with a 0 volatility.
func AnalyzeDaily(points []ValuePoint) DailyReport {
	var r DailyReport
	if len(points) == 0 {
		return r
	}

	var sum decimal.Decimal
	for _, p := range points {
		sum = sum.Add(p.Value.value)
	}
	first, last := points[0], points[len(points)-1]
	r.AverageValue = Money{value: sum.Div(decimal.NewFromInt(int64(len(points)))), cur: first.Value.cur}
	if len(points) < 2 {
		return r
	}
	r.Return = ComputeReturn(first.Value, last.Value, first.Date, last.Date)

	r.Changes = make([]DailyChange, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev, value := points[i-1].Value, points[i].Value
		change := value.Sub(prev)
		r.Changes = append(r.Changes, DailyChange{
			Date:          points[i].Date,
			Value:         value,
			Change:        change,
			ChangePercent: percent(change.value, prev.value),
		})
	}

	best, worst := 0, 0
	var mean float64
	for i, c := range r.Changes {
		if c.ChangePercent > r.Changes[best].ChangePercent {
			best = i
		}
		if c.ChangePercent < r.Changes[worst].ChangePercent {
			worst = i
		}
		mean += float64(c.ChangePercent)
	}
	r.BestDay, r.WorstDay = &r.Changes[best], &r.Changes[worst]

	mean /= float64(len(r.Changes))
	var variance float64
	for _, c := range r.Changes {
		d := float64(c.ChangePercent) - mean
		variance += d * d
	}
	variance /= float64(len(r.Changes))
	r.Volatility = Percent(math.Sqrt(variance))
	return r
}
