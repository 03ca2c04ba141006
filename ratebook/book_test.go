package ratebook

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const envelope = `{"success": true, "data": [
	{"type": "gold", "name": "Gram Altın", "date": "2024-06-03T09:00:00.000Z", "buyPrice": 2470.25, "sellPrice": 2520.75},
	{"type": "gold", "name": "Gram Altın", "date": "2024-06-01", "buyPrice": 2450, "sellPrice": 2500},
	{"type": "currency", "name": "Amerikan Doları", "date": "2024-06-01", "buyPrice": 32.1, "sellPrice": 32.3},
	{"type": "gold", "name": "Gram Altın", "date": "2024-06-03", "buyPrice": 2475, "sellPrice": 2525},
	{"type": "silver", "name": "Gümüş", "date": "2024-06-01", "buyPrice": 30},
	{"type": "currency", "name": "Euro", "date": "2024-06-01", "buyPrice": -1}
]}`

var (
	gram = portfolio.NewInstrumentKey(portfolio.Gold, "Gram Altın")
	usd  = portfolio.NewInstrumentKey(portfolio.Currency, "Amerikan Doları")
)

func quietLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

func TestBook_Load(t *testing.T) {
	log, hook := quietLogger()
	b := New(WithLogger(log))
	n, err := b.Load(strings.NewReader(envelope))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Load() = %d, want 4", n)
	}
	if got := len(hook.AllEntries()); got < 2 {
		t.Errorf("Load() logged %d entries, want the 2 skipped records", got)
	}

	ctx := context.Background()
	r, err := b.Latest(ctx, gram)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	// the last record for a day wins
	if r.Date != date.MustParse("2024-06-03") || !r.BuyPrice.Equal(portfolio.TRY(2475)) {
		t.Errorf("Latest() = %v %v, want 2024-06-03 2475", r.Date, r.BuyPrice.Decimal())
	}
	if r.BuyPrice.Currency() != "TRY" {
		t.Errorf("Latest().BuyPrice.Currency() = %q, want TRY", r.BuyPrice.Currency())
	}

	rates, err := b.Series(ctx, gram, date.NewRange(date.MustParse("2024-05-01"), date.MustParse("2024-06-02")))
	if err != nil || len(rates) != 1 || rates[0].Date != date.MustParse("2024-06-01") {
		t.Errorf("Series() = %v, %v, want the 2024-06-01 rate", rates, err)
	}

	if got := b.Names(portfolio.Currency); len(got) != 1 || got[0] != "Amerikan Doları" {
		t.Errorf("Names(currency) = %v", got)
	}
	if got := b.Origin(); got != date.MustParse("2024-06-01") {
		t.Errorf("Origin() = %v, want 2024-06-01", got)
	}
}

func TestBook_LoadPaths(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		doc     string
		want    int
		wantErr bool
	}{
		{name: "bare array", path: DefaultPath, doc: `[{"type":"gold","name":"Gram Altın","date":"2024-06-01","buyPrice":1}]`, want: 1},
		{name: "nested", path: "$.result.rates", doc: `{"result":{"rates":[{"type":"gold","name":"Gram Altın","date":"2024-06-01","buyPrice":1}]}}`, want: 1},
		{name: "single record", path: "$.data", doc: `{"data":{"type":"gold","name":"Gram Altın","date":"2024-06-01","buyPrice":1}}`, want: 1},
		{name: "filter", path: `$.data[?(@.type=="currency")]`, doc: envelope, want: 1},
		{name: "missing path", path: "$.rates", doc: `{"data":[]}`, wantErr: true},
		{name: "not json", path: DefaultPath, doc: `<html>`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := quietLogger()
			n, err := New(WithPath(tt.path), WithLogger(log)).Load(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if n != tt.want {
				t.Errorf("Load() = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestBook_Lookup(t *testing.T) {
	b := New(WithCurrency("USD"))
	ctx := context.Background()
	if _, err := b.Latest(ctx, gram); !errors.Is(err, portfolio.ErrRateNotFound) {
		t.Errorf("Latest() error = %v, want %v", err, portfolio.ErrRateNotFound)
	}
	if _, err := b.Series(ctx, gram, date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-12-31"))); !errors.Is(err, portfolio.ErrRateNotFound) {
		t.Errorf("Series() error = %v, want %v", err, portfolio.ErrRateNotFound)
	}

	b.Add(portfolio.Rate{Instrument: usd, Date: date.MustParse("2024-06-01"), BuyPrice: portfolio.TRY(32), SellPrice: portfolio.TRY(33)})
	snapshot, err := portfolio.LatestRates(ctx, b, gram, usd)
	if err != nil {
		t.Fatalf("LatestRates() error = %v", err)
	}
	if _, ok := snapshot.Get(gram); ok {
		t.Errorf("LatestRates() has a rate for %v", gram)
	}
	if _, ok := snapshot.Get(usd); !ok {
		t.Errorf("LatestRates() has no rate for %v", usd)
	}

	prices, err := b.Prices(ctx, []portfolio.InstrumentKey{gram, usd}, portfolio.SellPrice, date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-12-31")))
	if err != nil {
		t.Fatalf("Prices() error = %v", err)
	}
	if s := prices[usd]; len(s) != 1 || !s[0].Price.Equal(portfolio.TRY(33)) {
		t.Errorf("Prices()[usd] = %v, want the sell price 33", s)
	}
	if _, ok := prices[gram]; ok {
		t.Errorf("Prices() has a series for the unknown %v", gram)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := b.Latest(canceled, usd); !errors.Is(err, context.Canceled) {
		t.Errorf("Latest() error = %v, want %v", err, context.Canceled)
	}
}
