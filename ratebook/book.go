// Package ratebook is an in-memory rate lookup loaded from the JSON payloads
// of the rates backend.
package ratebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/PaesslerAG/jsonpath"
	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/sirupsen/logrus"
)

// DefaultPath locates the records in the backend envelope {"success": true, "data": [...]}.
const DefaultPath = "$.data"

// Book holds the rate history of every instrument, one rate per day.
// It is safe for concurrent use.
type Book struct {
	path     string
	currency string
	log      logrus.FieldLogger

	mu        sync.RWMutex
	keys      []portfolio.InstrumentKey
	histories map[portfolio.InstrumentKey]*date.History[portfolio.Rate]
}

// Option configures a Book.
type Option func(*Book)

// WithPath sets the JSONPath expression that selects the rate records of a document.
func WithPath(path string) Option { return func(b *Book) { b.path = path } }

// WithCurrency sets the currency of the loaded prices.
func WithCurrency(currency string) Option { return func(b *Book) { b.currency = currency } }

// WithLogger sets the logger reporting skipped records.
func WithLogger(log logrus.FieldLogger) Option { return func(b *Book) { b.log = log } }

// New returns an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		path:      DefaultPath,
		currency:  portfolio.DefaultCurrency,
		log:       logrus.StandardLogger(),
		histories: make(map[portfolio.InstrumentKey]*date.History[portfolio.Rate]),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add records rates. A rate for a day already known replaces it.
func (b *Book) Add(rates ...portfolio.Rate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range rates {
		h, ok := b.histories[r.Instrument]
		if !ok {
			h = new(date.History[portfolio.Rate])
			b.histories[r.Instrument] = h
			b.keys = append(b.keys, r.Instrument)
		}
		h.Append(r.Date, r)
	}
}

// Load reads a JSON document and adds the rate records found at the book path.
// A bare array of records is accepted whatever the path. Invalid records are
// skipped and logged. It returns the number of rates added.
func (b *Book) Load(r io.Reader) (int, error) {
	var doc any
	dec := json.NewDecoder(r)
	// keep prices as written, they are decimals.
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("cannot decode rates: %w", err)
	}
	found, err := jsonpath.Get(b.path, doc)
	if err != nil || found == nil {
		list, ok := doc.([]any)
		if !ok {
			if err == nil {
				err = errors.New("no value")
			}
			return 0, fmt.Errorf("cannot find rates at %q: %w", b.path, err)
		}
		found = list
	}
	records, ok := found.([]any)
	if !ok {
		// a path to a single record
		records = []any{found}
	}

	rates := make([]portfolio.Rate, 0, len(records))
	for i, rec := range records {
		rate, err := b.decode(rec)
		if err != nil {
			b.log.WithError(err).WithField("index", i).Warn("skipping rate record")
			continue
		}
		rates = append(rates, rate)
	}
	b.Add(rates...)
	b.log.WithFields(logrus.Fields{"path": b.path, "rates": len(rates), "skipped": len(records) - len(rates)}).Debug("rates loaded")
	return len(rates), nil
}

func (b *Book) decode(rec any) (portfolio.Rate, error) {
	var r portfolio.Rate
	raw, err := json.Marshal(rec)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return r, err
	}
	r.BuyPrice = r.BuyPrice.In(b.currency)
	r.SellPrice = r.SellPrice.In(b.currency)
	return r, r.Validate()
}

// LoadFile loads a JSON document from a file. See Load.
func (b *Book) LoadFile(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := b.Load(f)
	if err != nil {
		return n, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// Latest returns the most recent rate of an instrument.
func (b *Book) Latest(ctx context.Context, key portfolio.InstrumentKey) (portfolio.Rate, error) {
	if err := ctx.Err(); err != nil {
		return portfolio.Rate{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	h, ok := b.histories[key]
	if !ok || h.Len() == 0 {
		return portfolio.Rate{}, fmt.Errorf("%w: %s", portfolio.ErrRateNotFound, key)
	}
	_, r := h.Latest()
	return r, nil
}

// Series returns the rates of an instrument within rg, in date order.
// An unknown instrument is reported with ErrRateNotFound, a known one with
// no rate in rg returns an empty list.
func (b *Book) Series(ctx context.Context, key portfolio.InstrumentKey, rg date.Range) ([]portfolio.Rate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	h, ok := b.histories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", portfolio.ErrRateNotFound, key)
	}
	var rates []portfolio.Rate
	for _, r := range h.Within(rg) {
		rates = append(rates, r)
	}
	return rates, nil
}

// Prices returns one side of the rates of several instruments within rg,
// ready for Normalize, Compare or ValueHistory. Unknown instruments are left out.
func (b *Book) Prices(ctx context.Context, keys []portfolio.InstrumentKey, field portfolio.PriceField, rg date.Range) (map[portfolio.InstrumentKey]portfolio.Series, error) {
	prices := make(map[portfolio.InstrumentKey]portfolio.Series, len(keys))
	for _, key := range keys {
		rates, err := b.Series(ctx, key, rg)
		if errors.Is(err, portfolio.ErrRateNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		prices[key] = portfolio.SeriesOf(rates, field)
	}
	return prices, nil
}

// Instruments returns the known instruments in the order they were first loaded.
func (b *Book) Instruments() []portfolio.InstrumentKey {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.keys)
}

// Names returns the names of the known instruments of a type.
func (b *Book) Names(t portfolio.InstrumentType) []string {
	var names []string
	for _, k := range b.Instruments() {
		if k.Type == t {
			names = append(names, k.Name)
		}
	}
	return names
}

// Origin returns the date of the earliest rate, zero for an empty book.
func (b *Book) Origin() date.Date {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var origin date.Date
	for _, h := range b.histories {
		if first, _ := h.First(); !first.IsZero() && (origin.IsZero() || first.Before(origin)) {
			origin = first
		}
	}
	return origin
}

var _ portfolio.RateLookup = (*Book)(nil)
