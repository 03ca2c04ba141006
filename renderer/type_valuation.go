package renderer

import (
	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
)

// Valuation is the data of a valuation report.
// Numbers keep the exact decimal types so that they carry their own
// renderers (String, SignedString).
type Valuation struct {
	// Name of the portfolio.
	Name string `json:"name,omitempty"`
	// Date the rates were read on.
	Date     date.Date         `json:"date"`
	Currency string            `json:"currency"`
	Lines    []ValuationLine   `json:"lines"`
	Summary  portfolio.Summary `json:"summary"`
}

// ValuationLine is one valued position.
type ValuationLine struct {
	Instrument  string             `json:"instrument"`
	Amount      portfolio.Quantity `json:"amount"`
	AverageCost portfolio.Money    `json:"averageCost"`
	Price       portfolio.Money    `json:"price"`
	Cost        portfolio.Money    `json:"cost"`
	Value       portfolio.Money    `json:"value"`
	PnL         portfolio.Money    `json:"pnl"`
	PnLPercent  portfolio.Percent  `json:"pnlPercent"`
	Share       portfolio.Percent  `json:"share"`
	AtCost      bool               `json:"atCost,omitempty"`
	RateDate    date.Date          `json:"rateDate"`
}

// NewValuation creates the report data from valuations computed on a given day.
func NewValuation(name, currency string, on date.Date, valuations []portfolio.Valuation) *Valuation {
	v := &Valuation{
		Name:     name,
		Date:     on,
		Currency: currency,
		Lines:    make([]ValuationLine, 0, len(valuations)),
		Summary:  portfolio.Summarize(valuations),
	}
	for _, val := range valuations {
		v.Lines = append(v.Lines, ValuationLine{
			Instrument:  val.Instrument.String(),
			Amount:      val.TotalAmount,
			AverageCost: val.WeightedAverageCostPrice(),
			Price:       val.CurrentPrice,
			Cost:        val.TotalCostBasis,
			Value:       val.CurrentValue,
			PnL:         val.PnL,
			PnLPercent:  val.PnLPercent,
			Share:       val.PortfolioSharePercent,
			AtCost:      val.PriceFallbackUsed,
			RateDate:    val.RateDate,
		})
	}
	return v
}

// HasFallback reports whether some line was valued at cost.
func (v *Valuation) HasFallback() bool { return v.Summary.FallbackCount > 0 }

// Alerts is the data of an alerts report.
type Alerts struct {
	Date      date.Date
	Triggered []AlertLine
	Watching  []AlertLine
}

// AlertLine is one evaluated alert.
type AlertLine struct {
	Instrument string
	Condition  string
	Target     portfolio.Money
	Price      portfolio.Money
	RateDate   date.Date
	Note       string
	// Missing is set when the instrument had no rate.
	Missing bool
}

// NewAlerts splits alert results between triggered and still watching ones.
func NewAlerts(on date.Date, results []portfolio.AlertResult) *Alerts {
	a := &Alerts{Date: on}
	for _, r := range results {
		line := AlertLine{
			Instrument: r.Alert.Instrument.String(),
			Condition:  r.Alert.Condition.String(),
			Target:     r.Alert.Target,
			Price:      r.Price,
			RateDate:   r.RateDate,
			Note:       r.Alert.Note,
			Missing:    r.Err != nil,
		}
		if r.Triggered {
			a.Triggered = append(a.Triggered, line)
		} else {
			a.Watching = append(a.Watching, line)
		}
	}
	return a
}
