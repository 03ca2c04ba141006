package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency rates and costs are quoted in unless told otherwise.
const DefaultCurrency = "TRY"

// Money represents a monetary value: a price per unit, a cost or a value.
//
// The empty currency is weak: it takes the currency of the other operand.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// TRY is a helper to create Turkish lira money.
func TRY[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, DefaultCurrency)
}

// fraction returns the number of minor unit digits of the money currency, 2 if unknown.
func (m Money) fraction() int32 {
	if c := money.GetCurrency(m.cur); c != nil {
		return int32(c.Fraction)
	}
	return 2
}

// String formats the money using its currency conventions (separators,
// grapheme, fraction digits).
func (m Money) String() string {
	c := money.GetCurrency(m.cur)
	if c == nil {
		s := m.value.StringFixed(2)
		if m.cur != "" {
			s += " " + m.cur
		}
		return s
	}
	minor := m.value.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit + for gains. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.Round().IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Float() float64                  { return m.value.InexactFloat64() }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && (m.cur == n.cur || m.cur == "" || n.cur == "") }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value), cur: m.cur} }

// DivPrice returns how many units of price m buys.
func (m Money) DivPrice(price Money) Quantity { return Quantity{value: m.value.Div(price.value)} }

// Round returns m rounded to its currency minor unit.
func (m Money) Round() Money { return Money{value: m.value.Round(m.fraction()), cur: m.cur} }

// In returns m with its currency set, when it had none.
func (m Money) In(currency string) Money {
	if m.cur == "" {
		m.cur = currency
	}
	return m
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// MarshalJSON writes the amount as a plain JSON number, all digits kept.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted number. The currency is
// left empty, it is set by the record holding it.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
