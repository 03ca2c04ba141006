package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/altinfolio/portfolio/date"
)

// Rate is a market quote of an instrument on a day.
//
// SellPrice >= BuyPrice is expected but not enforced: the quotes come from
// an external source.
type Rate struct {
	Instrument InstrumentKey
	Date       date.Date
	BuyPrice   Money
	SellPrice  Money
}

// Price returns the price of the selected side.
func (r Rate) Price(f PriceField) Money {
	if f == SellPrice {
		return r.SellPrice
	}
	return r.BuyPrice
}

// Validate checks that the rate designates an instrument, has a date and no negative price.
func (r Rate) Validate() error {
	var errs []error
	if err := r.Instrument.validate(); err != nil {
		errs = append(errs, err)
	}
	if r.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: rate of %s has no date", ErrInvalidRecord, r.Instrument))
	}
	if r.BuyPrice.IsNegative() || r.SellPrice.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: rate of %s has a negative price", ErrInvalidRecord, r.Instrument))
	}
	return errors.Join(errs...)
}

func (r Rate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("instrumentType", r.Instrument.Type)
	w.Append("instrumentName", r.Instrument.Name)
	w.Append("date", r.Date)
	w.Append("buyPrice", r.BuyPrice)
	w.Append("sellPrice", r.SellPrice)
	return w.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(b []byte) error {
	var j struct {
		jinstrument
		Date      date.Date `json:"date"`
		BuyPrice  *Money    `json:"buyPrice"`
		SellPrice *Money    `json:"sellPrice"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	key, err := j.key()
	if err != nil {
		return err
	}
	if j.BuyPrice == nil {
		return fmt.Errorf("%w: rate of %s has no buyPrice", ErrInvalidRecord, key)
	}
	r.Instrument, r.Date, r.BuyPrice = key, j.Date, *j.BuyPrice
	// some instruments are quoted one way only.
	r.SellPrice = r.BuyPrice
	if j.SellPrice != nil {
		r.SellPrice = *j.SellPrice
	}
	return nil
}

// RateSnapshot is the set of current rates used for one computation. It is
// read only: the engine never refreshes it mid-computation.
type RateSnapshot map[InstrumentKey]Rate

// NewRateSnapshot indexes rates by instrument, keeping the most recent rate
// of each instrument (the last one given on a tie).
func NewRateSnapshot(rates ...Rate) RateSnapshot {
	s := make(RateSnapshot, len(rates))
	for _, r := range rates {
		if prev, ok := s[r.Instrument]; ok && prev.Date.After(r.Date) {
			continue
		}
		s[r.Instrument] = r
	}
	return s
}

// Get returns the rate of an instrument.
func (s RateSnapshot) Get(key InstrumentKey) (Rate, bool) {
	r, ok := s[key]
	return r, ok
}

// PricePoint is the price of an instrument on a day.
type PricePoint struct {
	Date  date.Date `json:"date"`
	Price Money     `json:"price"`
}

// Series is a price history of one instrument.
type Series []PricePoint

// SeriesOf extracts one side of a list of rates.
func SeriesOf(rates []Rate, f PriceField) Series {
	s := make(Series, 0, len(rates))
	for _, r := range rates {
		s = append(s, PricePoint{Date: r.Date, Price: r.Price(f)})
	}
	return s
}

// IsSorted reports whether the series is in ascending date order.
func (s Series) IsSorted() bool {
	return slices.IsSortedFunc(s, func(a, b PricePoint) int { return a.Date.Compare(b.Date) })
}

// Sorted returns the series in ascending date order. s is returned as is
// when already sorted, otherwise a sorted copy is returned.
func (s Series) Sorted() Series {
	if s.IsSorted() {
		return s
	}
	c := slices.Clone(s)
	slices.SortStableFunc(c, func(a, b PricePoint) int { return a.Date.Compare(b.Date) })
	return c
}

// RateLookup is the market data collaborator of the engine. Implementations
// may be remote, they honour ctx. ErrRateNotFound is returned for unknown
// instruments.
type RateLookup interface {
	// Latest returns the most recent rate of an instrument.
	Latest(ctx context.Context, key InstrumentKey) (Rate, error)
	// Series returns the rates of an instrument within r, in ascending date order.
	Series(ctx context.Context, key InstrumentKey, r date.Range) ([]Rate, error)
}

// LatestRates collects the latest rate of each instrument into a snapshot.
// Instruments without a rate are left out, valuations will report them as
// ErrMissingRate. Any other lookup failure aborts.
func LatestRates(ctx context.Context, lookup RateLookup, keys ...InstrumentKey) (RateSnapshot, error) {
	s := make(RateSnapshot, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := lookup.Latest(ctx, key)
		if errors.Is(err, ErrRateNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot get the latest rate of %s: %w", key, err)
		}
		s[key] = r
	}
	return s, nil
}

// RateOn returns the rate of an instrument on day, or the most recent one
// before it. It looks back at most lookback days, so that weekends and
// holidays still resolve to a quote.
func RateOn(ctx context.Context, lookup RateLookup, key InstrumentKey, day date.Date, lookback int) (Rate, error) {
	rates, err := lookup.Series(ctx, key, date.NewRange(day.Add(-lookback), day))
	if err != nil {
		return Rate{}, err
	}
	if len(rates) == 0 {
		return Rate{}, fmt.Errorf("%w: no rate for %s within %d days before %s", ErrRateNotFound, key, lookback, day)
	}
	return rates[len(rates)-1], nil
}
