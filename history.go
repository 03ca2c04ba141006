package portfolio

import (
	"github.com/altinfolio/portfolio/date"
)

// priceBook indexes price series by instrument for as-of lookups.
type priceBook map[InstrumentKey]*date.History[Money]

func newPriceBook(prices map[InstrumentKey]Series) priceBook {
	b := make(priceBook, len(prices))
	for key, s := range prices {
		h := new(date.History[Money])
		for _, p := range s {
			h.Append(p.Date, p.Price)
		}
		b[key] = h
	}
	return b
}

// value returns the value of positions on day. Positions without a price
// on or before day are valued at cost and estimated is set.
func (b priceBook) value(positions *Positions, day date.Date) (total Money, estimated bool) {
	for key, p := range positions.All() {
		price, ok := Money{}, false
		if h := b[key]; h != nil {
			price, ok = h.ValueAsOf(day)
		}
		if !ok {
			total = total.Add(p.TotalCostBasis)
			estimated = true
			continue
		}
		total = total.Add(price.Mul(p.TotalAmount))
	}
	return total, estimated
}

// ValueHistory computes the daily value of holdings over r, using the buy
// price series of each instrument. On each day only the holdings purchased on
// or before it count, valued at the latest price not after that day.
//
// Days before the first purchase are skipped.
func ValueHistory(holdings []Holding, prices map[InstrumentKey]Series, r date.Range) []ValuePoint {
	return valueHistory(func(day date.Date) *Positions {
		var held []Holding
		for _, h := range holdings {
			if !h.PurchaseDate.After(day) {
				held = append(held, h)
			}
		}
		return Aggregate(held)
	}, prices, r)
}

// LedgerValueHistory is like ValueHistory, with positions replayed from a
// transaction ledger. Days when nothing is held are skipped.
func LedgerValueHistory(txs []Transaction, prices map[InstrumentKey]Series, r date.Range) []ValuePoint {
	return valueHistory(func(day date.Date) *Positions {
		var past []Transaction
		for _, tx := range txs {
			if !tx.Date.After(day) {
				past = append(past, tx)
			}
		}
		return AggregateLedger(past, SignedFlow)
	}, prices, r)
}

func valueHistory(positionsOn func(date.Date) *Positions, prices map[InstrumentKey]Series, r date.Range) []ValuePoint {
	book := newPriceBook(prices)
	points := make([]ValuePoint, 0, r.Len())
	for day := range r.Days() {
		positions := positionsOn(day)
		if positions.Len() == 0 {
			continue
		}
		value, estimated := book.value(positions, day)
		points = append(points, ValuePoint{Date: day, Value: value, Estimated: estimated})
	}
	return points
}
