package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/altinfolio/portfolio/date"
)

// Condition is the trigger rule of a price alert.
type Condition int

const (
	Above Condition = iota + 1
	Below
	Equals
)

func (c Condition) String() string {
	switch c {
	case Above:
		return "ABOVE"
	case Below:
		return "BELOW"
	case Equals:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}

// ParseCondition parses ABOVE, BELOW or EQUALS, case-insensitive.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ABOVE":
		return Above, nil
	case "BELOW":
		return Below, nil
	case "EQUALS":
		return Equals, nil
	default:
		return 0, fmt.Errorf("%w: unknown alert condition %q", ErrInvalidRecord, s)
	}
}

// Met reports whether price satisfies the condition for target.
// EQUALS compares both prices rounded to the currency minor unit.
func (c Condition) Met(price, target Money) bool {
	switch c {
	case Above:
		return price.GreaterThanOrEqual(target)
	case Below:
		return price.LessThanOrEqual(target)
	case Equals:
		return price.Round().value.Equal(target.In(price.cur).Round().value)
	default:
		return false
	}
}

// Alert watches the price of an instrument.
type Alert struct {
	ID          string
	Instrument  InstrumentKey
	Condition   Condition
	Target      Money
	Field       PriceField
	Active      bool
	Triggered   bool
	TriggeredAt date.Date
	Note        string
}

// AlertResult is the evaluation of one alert against a rate snapshot.
type AlertResult struct {
	Alert     Alert
	Price     Money
	RateDate  date.Date
	Triggered bool
	// Err is ErrMissingRate when the instrument has no rate, the alert then never triggers.
	Err error
}

// EvaluateAlerts checks active alerts that have not triggered yet against
// the current rates. Results follow the order of alerts.
func EvaluateAlerts(alerts []Alert, rates RateSnapshot) []AlertResult {
	var results []AlertResult
	for _, a := range alerts {
		if !a.Active || a.Triggered {
			continue
		}
		res := AlertResult{Alert: a}
		r, ok := rates.Get(a.Instrument)
		if !ok {
			res.Err = fmt.Errorf("%w for %s", ErrMissingRate, a.Instrument)
			results = append(results, res)
			continue
		}
		res.Price = r.Price(a.Field)
		res.RateDate = r.Date
		res.Triggered = a.Condition.Met(res.Price, a.Target)
		results = append(results, res)
	}
	return results
}

// Validate checks the alert on its own.
func (a Alert) Validate() error {
	if err := a.Instrument.validate(); err != nil {
		return err
	}
	if a.Condition < Above || a.Condition > Equals {
		return fmt.Errorf("%w: alert on %s has no condition", ErrInvalidRecord, a.Instrument)
	}
	if !a.Target.IsPositive() {
		return fmt.Errorf("%w: alert on %s has a non positive target price", ErrInvalidRecord, a.Instrument)
	}
	return nil
}

func (a Alert) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", a.ID)
	w.Append("assetType", a.Instrument.Type)
	w.Append("assetName", a.Instrument.Name)
	w.Append("condition", a.Condition.String())
	w.Append("targetPrice", a.Target)
	w.Append("priceField", a.Field)
	w.Append("isActive", a.Active)
	w.Append("isTriggered", a.Triggered)
	w.Optional("triggeredAt", a.TriggeredAt)
	w.Optional("note", a.Note)
	return w.MarshalJSON()
}

func (a *Alert) UnmarshalJSON(b []byte) error {
	var j struct {
		jrecord
		jinstrument
		Condition   string      `json:"condition"`
		TargetPrice *Money      `json:"targetPrice"`
		PriceField  *PriceField `json:"priceField"`
		IsActive    *bool       `json:"isActive"`
		IsTriggered bool        `json:"isTriggered"`
		TriggeredAt date.Date   `json:"triggeredAt"`
		Note        string      `json:"note"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	key, err := j.key()
	if err != nil {
		return err
	}
	cond, err := ParseCondition(j.Condition)
	if err != nil {
		return err
	}
	if j.TargetPrice == nil {
		return fmt.Errorf("%w: alert on %s has no targetPrice", ErrInvalidRecord, key)
	}
	*a = Alert{
		ID:          j.id(),
		Instrument:  key,
		Condition:   cond,
		Target:      *j.TargetPrice,
		Active:      true,
		Triggered:   j.IsTriggered,
		TriggeredAt: j.TriggeredAt,
		Note:        j.Note,
	}
	if j.PriceField != nil {
		a.Field = *j.PriceField
	}
	if j.IsActive != nil {
		a.Active = *j.IsActive
	}
	return nil
}
