package portfolio

import "github.com/altinfolio/portfolio/date"

// lot is a single purchase of an instrument, used for FIFO cost basis.
type lot struct {
	Date     date.Date
	Quantity Quantity
	Cost     Money // total cost of the lot (quantity * price)
}

type lots []lot

// quantity returns the amount held in all lots.
func (l lots) quantity() (q Quantity) {
	for _, current := range l {
		q = q.Add(current.Quantity)
	}
	return q
}

// cost returns the cost of all lots.
func (l lots) cost() (c Money) {
	for _, current := range l {
		c = c.Add(current.Cost)
	}
	return c
}

// fifoCostOfSelling calculates the cost of selling a quantity using FIFO.
func (l lots) fifoCostOfSelling(quantityToSell Quantity) Money {
	var costOfSold Money
	for _, current := range l {
		if current.Quantity.GreaterThan(quantityToSell) {
			// partial sale from this lot
			return costOfSold.Add(current.Cost.Mul(quantityToSell).Div(current.Quantity))
		}
		costOfSold = costOfSold.Add(current.Cost)
		quantityToSell = quantityToSell.Sub(current.Quantity)
	}
	return costOfSold
}

// sell reduces the lots by a given quantity using FIFO.
func (l lots) sell(quantityToSell Quantity) lots {
	var remaining lots
	for _, current := range l {
		if !quantityToSell.IsPositive() {
			remaining = append(remaining, current)
			continue
		}
		if current.Quantity.GreaterThan(quantityToSell) {
			sold := current.Cost.Mul(quantityToSell).Div(current.Quantity)
			remaining = append(remaining, lot{
				Date:     current.Date,
				Quantity: current.Quantity.Sub(quantityToSell),
				Cost:     current.Cost.Sub(sold),
			})
			quantityToSell = Quantity{}
			continue
		}
		quantityToSell = quantityToSell.Sub(current.Quantity)
	}
	return remaining
}
