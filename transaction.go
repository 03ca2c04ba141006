package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/altinfolio/portfolio/date"
)

// Side is the direction of a transaction.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseSide parses BUY or SELL, case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: unknown transaction side %q", ErrInvalidRecord, s)
	}
}

// PriceMode tells whether the transaction price came from the market (AUTO)
// or was typed by the user (MANUAL).
type PriceMode int

const (
	Auto PriceMode = iota
	Manual
)

func (m PriceMode) String() string {
	if m == Manual {
		return "MANUAL"
	}
	return "AUTO"
}

// ParsePriceMode parses AUTO or MANUAL; the empty string is AUTO.
func ParsePriceMode(s string) (PriceMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AUTO", "":
		return Auto, nil
	case "MANUAL":
		return Manual, nil
	default:
		return 0, fmt.Errorf("%w: unknown price mode %q", ErrInvalidRecord, s)
	}
}

// Transaction is an entry of the append-only ledger of a portfolio.
type Transaction struct {
	ID         string
	Side       Side
	Instrument InstrumentKey
	Amount     Quantity
	Price      Money // price per unit
	PriceMode  PriceMode
	Date       date.Date
	Note       string
}

// NewBuy returns an AUTO priced BUY transaction.
func NewBuy(on date.Date, key InstrumentKey, amount Quantity, price Money) Transaction {
	return Transaction{Side: Buy, Instrument: key, Amount: amount, Price: price, Date: on}
}

// NewSell returns an AUTO priced SELL transaction.
func NewSell(on date.Date, key InstrumentKey, amount Quantity, price Money) Transaction {
	return Transaction{Side: Sell, Instrument: key, Amount: amount, Price: price, Date: on}
}

// TotalValue returns amount * price.
func (t Transaction) TotalValue() Money { return t.Price.Mul(t.Amount) }

// Validate checks the transaction on its own and returns all failures.
func (t Transaction) Validate() error {
	var errs []error
	if t.Side != Buy && t.Side != Sell {
		errs = append(errs, fmt.Errorf("%w: unknown side", ErrInvalidRecord))
	}
	if err := t.Instrument.validate(); err != nil {
		errs = append(errs, err)
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidRecord, t.Amount))
	}
	if t.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: price must not be negative, got %v", ErrInvalidRecord, t.Price.Decimal()))
	}
	if t.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: missing date", ErrInvalidRecord))
	}
	return errors.Join(errs...)
}

// SortTransactions sorts a ledger chronologically, keeping the input order of same day entries.
func SortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}

// ValidateLedger checks every transaction and that no SELL exceeds the
// amount of the instrument held on its date. The ledger must be sorted.
func ValidateLedger(txs []Transaction) error {
	var errs []error
	held := make(map[InstrumentKey]Quantity)
	for i, tx := range txs {
		if i > 0 && tx.Date.Before(txs[i-1].Date) {
			errs = append(errs, fmt.Errorf("transactions[%d]: %w: ledger is not sorted by date", i, ErrInvalidRecord))
		}
		if err := tx.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("transactions[%d]: %w", i, err))
			continue
		}
		switch tx.Side {
		case Buy:
			held[tx.Instrument] = held[tx.Instrument].Add(tx.Amount)
		case Sell:
			if held[tx.Instrument].LessThan(tx.Amount) {
				errs = append(errs, fmt.Errorf("transactions[%d]: %w: selling %v %s on %s, holding %v",
					i, ErrOversold, tx.Amount, tx.Instrument, tx.Date, held[tx.Instrument]))
				continue
			}
			held[tx.Instrument] = held[tx.Instrument].Sub(tx.Amount)
		}
	}
	return errors.Join(errs...)
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	w.Append("side", t.Side.String())
	w.Append("instrumentType", t.Instrument.Type)
	w.Append("instrumentName", t.Instrument.Name)
	w.Append("amount", t.Amount)
	w.Append("price", t.Price)
	w.Append("totalValue", t.TotalValue())
	w.Append("priceMode", t.PriceMode.String())
	w.Append("date", t.Date)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a transaction. totalValue is ignored: it is always
// recomputed from amount and price.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var j struct {
		jrecord
		jinstrument
		Side      string    `json:"side"`
		Amount    *Quantity `json:"amount"`
		Price     *Money    `json:"price"`
		PriceMode string    `json:"priceMode"`
		Date      date.Date `json:"date"`
		Note      string    `json:"note"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	key, err := j.key()
	if err != nil {
		return err
	}
	side, err := ParseSide(j.Side)
	if err != nil {
		return err
	}
	mode, err := ParsePriceMode(j.PriceMode)
	if err != nil {
		return err
	}
	if j.Amount == nil {
		return fmt.Errorf("%w: transaction on %s has no amount", ErrInvalidRecord, key)
	}
	if j.Price == nil {
		return fmt.Errorf("%w: transaction on %s has no price", ErrInvalidRecord, key)
	}
	*t = Transaction{
		ID:         j.id(),
		Side:       side,
		Instrument: key,
		Amount:     *j.Amount,
		Price:      *j.Price,
		PriceMode:  mode,
		Date:       j.Date,
		Note:       j.Note,
	}
	return nil
}
