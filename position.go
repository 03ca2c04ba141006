package portfolio

import (
	"iter"
	"slices"

	"github.com/altinfolio/portfolio/date"
)

// Position is the aggregate of all holdings of one instrument within a portfolio.
// It is derived and never stored.
type Position struct {
	Instrument     InstrumentKey
	TotalAmount    Quantity
	TotalCostBasis Money
	// Lots is the number of holdings or BUY transactions aggregated.
	Lots int
	// Since is the earliest acquisition date.
	Since date.Date
	// Realized is the gain locked in by SELL transactions, for the
	// AverageCost and FIFO methods.
	Realized Money
}

// WeightedAverageCostPrice returns TotalCostBasis / TotalAmount, 0 for an empty position.
func (p Position) WeightedAverageCostPrice() Money {
	if p.TotalAmount.IsZero() {
		return Money{cur: p.TotalCostBasis.cur}
	}
	return p.TotalCostBasis.Div(p.TotalAmount)
}

// Positions is a collection of positions keyed by instrument, that keeps the
// order in which instruments were first seen.
type Positions struct {
	keys  []InstrumentKey
	byKey map[InstrumentKey]*Position
}

func newPositions() *Positions {
	return &Positions{byKey: make(map[InstrumentKey]*Position)}
}

// NewPositions returns a collection of the given positions, in that order.
// A repeated instrument replaces the earlier position.
func NewPositions(positions ...Position) *Positions {
	ps := newPositions()
	for _, p := range positions {
		*ps.upsert(p.Instrument) = p
	}
	return ps
}

// upsert returns the position of key, created if needed.
func (ps *Positions) upsert(key InstrumentKey) *Position {
	p, ok := ps.byKey[key]
	if !ok {
		p = &Position{Instrument: key}
		ps.byKey[key] = p
		ps.keys = append(ps.keys, key)
	}
	return p
}

func (ps *Positions) remove(key InstrumentKey) {
	delete(ps.byKey, key)
	ps.keys = slices.DeleteFunc(ps.keys, func(k InstrumentKey) bool { return k == key })
}

// Len returns the number of positions.
func (ps *Positions) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.keys)
}

// Keys returns the instruments in insertion order.
func (ps *Positions) Keys() []InstrumentKey {
	if ps == nil {
		return nil
	}
	return slices.Clone(ps.keys)
}

// Get returns the position of an instrument.
func (ps *Positions) Get(key InstrumentKey) (Position, bool) {
	if ps == nil {
		return Position{}, false
	}
	p, ok := ps.byKey[key]
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// All iterates over the positions in insertion order.
func (ps *Positions) All() iter.Seq2[InstrumentKey, Position] {
	return func(yield func(InstrumentKey, Position) bool) {
		if ps == nil {
			return
		}
		for _, k := range ps.keys {
			if !yield(k, *ps.byKey[k]) {
				return
			}
		}
	}
}

// Aggregate groups holdings by instrument into positions.
//
// Amounts and costs are summed with exact decimal arithmetic. An empty list
// yields an empty collection.
func Aggregate(holdings []Holding) *Positions {
	ps := newPositions()
	for _, h := range holdings {
		p := ps.upsert(h.Instrument)
		p.TotalAmount = p.TotalAmount.Add(h.Amount)
		p.TotalCostBasis = p.TotalCostBasis.Add(h.Cost())
		p.Lots++
		if p.Since.IsZero() || h.PurchaseDate.Before(p.Since) {
			p.Since = h.PurchaseDate
		}
	}
	return ps
}

// AggregateLedger derives positions from a transaction ledger, replaying it
// in date order (same day entries keep their order).
//
// Instruments that are fully sold are not part of the result.
func AggregateLedger(txs []Transaction, method CostBasisMethod) *Positions {
	ledger := slices.Clone(txs)
	SortTransactions(ledger)

	ps := newPositions()
	fifo := make(map[InstrumentKey]lots)
	for _, tx := range ledger {
		p := ps.upsert(tx.Instrument)
		switch tx.Side {
		case Buy:
			p.TotalAmount = p.TotalAmount.Add(tx.Amount)
			p.TotalCostBasis = p.TotalCostBasis.Add(tx.TotalValue())
			p.Lots++
			if p.Since.IsZero() {
				p.Since = tx.Date
			}
			if method == FIFO {
				fifo[tx.Instrument] = append(fifo[tx.Instrument], lot{Date: tx.Date, Quantity: tx.Amount, Cost: tx.TotalValue()})
			}
		case Sell:
			switch method {
			case AverageCost:
				var costOfSale Money
				if !p.TotalAmount.IsZero() {
					costOfSale = p.TotalCostBasis.Mul(tx.Amount).Div(p.TotalAmount)
				}
				p.Realized = p.Realized.Add(tx.TotalValue().Sub(costOfSale))
				p.TotalCostBasis = p.TotalCostBasis.Sub(costOfSale)
				p.TotalAmount = p.TotalAmount.Sub(tx.Amount)
			case FIFO:
				held := fifo[tx.Instrument]
				costOfSale := held.fifoCostOfSelling(tx.Amount)
				p.Realized = p.Realized.Add(tx.TotalValue().Sub(costOfSale))
				held = held.sell(tx.Amount)
				fifo[tx.Instrument] = held
				p.TotalAmount = p.TotalAmount.Sub(tx.Amount)
				p.TotalCostBasis = held.cost()
			default:
				p.TotalAmount = p.TotalAmount.Sub(tx.Amount)
				p.TotalCostBasis = p.TotalCostBasis.Sub(tx.TotalValue())
			}
			if !p.TotalAmount.IsPositive() {
				// a new round starts with the next BUY.
				p.Since = date.Date{}
				if method != SignedFlow {
					p.TotalCostBasis = Money{cur: p.TotalCostBasis.cur}
					delete(fifo, tx.Instrument)
				}
			}
		}
	}
	for _, k := range ps.Keys() {
		if p := ps.byKey[k]; !p.TotalAmount.IsPositive() {
			ps.remove(k)
		}
	}
	return ps
}
