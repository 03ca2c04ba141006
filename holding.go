package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/altinfolio/portfolio/date"
)

// Holding is one purchased lot of an instrument. It is immutable once
// created: deleting removes the whole lot.
type Holding struct {
	ID           string
	Instrument   InstrumentKey
	Amount       Quantity
	CostPrice    Money // price per unit at acquisition
	PurchaseDate date.Date
}

// NewHolding returns a holding with no ID.
func NewHolding(key InstrumentKey, amount Quantity, costPrice Money, on date.Date) Holding {
	return Holding{Instrument: key, Amount: amount, CostPrice: costPrice, PurchaseDate: on}
}

// Cost returns amount * cost price.
func (h Holding) Cost() Money { return h.CostPrice.Mul(h.Amount) }

// Validate checks the holding invariants and returns all failures.
func (h Holding) Validate() error {
	var errs []error
	if err := h.Instrument.validate(); err != nil {
		errs = append(errs, err)
	}
	if !h.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidRecord, h.Amount))
	}
	if h.CostPrice.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: cost price must not be negative, got %v", ErrInvalidRecord, h.CostPrice.Decimal()))
	}
	if h.PurchaseDate.IsZero() {
		errs = append(errs, fmt.Errorf("%w: missing purchase date", ErrInvalidRecord))
	}
	return errors.Join(errs...)
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", h.ID)
	w.Append("instrumentType", h.Instrument.Type)
	w.Append("instrumentName", h.Instrument.Name)
	w.Append("amount", h.Amount)
	w.Append("costPrice", h.CostPrice)
	w.Append("purchaseDate", h.PurchaseDate)
	return w.MarshalJSON()
}

func (h *Holding) UnmarshalJSON(b []byte) error {
	var j struct {
		jrecord
		jinstrument
		Amount       *Quantity `json:"amount"`
		CostPrice    *Money    `json:"costPrice"`
		PurchaseDate date.Date `json:"purchaseDate"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	key, err := j.key()
	if err != nil {
		return err
	}
	if j.Amount == nil {
		return fmt.Errorf("%w: holding %s has no amount", ErrInvalidRecord, key)
	}
	if j.CostPrice == nil {
		return fmt.Errorf("%w: holding %s has no costPrice", ErrInvalidRecord, key)
	}
	*h = Holding{
		ID:           j.id(),
		Instrument:   key,
		Amount:       *j.Amount,
		CostPrice:    *j.CostPrice,
		PurchaseDate: j.PurchaseDate,
	}
	return nil
}
