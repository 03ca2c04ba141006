package portfolio

import (
	"github.com/altinfolio/portfolio/date"
	"github.com/google/go-cmp/cmp"
)

var (
	gram  = NewInstrumentKey(Gold, "Gram Altın")
	quart = NewInstrumentKey(Gold, "Çeyrek Altın")
	usd   = NewInstrumentKey(Currency, "Amerikan Doları")
	eur   = NewInstrumentKey(Currency, "Euro")
)

// NO is a helper for test to create money from const with no currency set.
func NO(v float64) Money { return M(v, "") }

// day is a helper to parse a date in tests.
func day(s string) date.Date { return date.MustParse(s) }

// rate is a helper for test to create a TRY rate.
func rate(key InstrumentKey, on string, buy, sell float64) Rate {
	return Rate{Instrument: key, Date: day(on), BuyPrice: TRY(buy), SellPrice: TRY(sell)}
}

// holding is a helper for test to create a TRY holding.
func holding(key InstrumentKey, amount, cost float64, on string) Holding {
	return NewHolding(key, Q(amount), TRY(cost), day(on))
}

// series is a helper for test to create a price series from date, price pairs.
func series(pairs ...any) Series {
	var s Series
	for i := 0; i+1 < len(pairs); i += 2 {
		s = append(s, PricePoint{Date: day(pairs[i].(string)), Price: TRY(pairs[i+1].(float64))})
	}
	return s
}

// equate compares engine values by value, ignoring weak currencies.
var equate = cmp.Options{
	cmp.Comparer(Money.Equal),
	cmp.Comparer(Quantity.Equal),
	cmp.Comparer(Percent.Equal),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}
