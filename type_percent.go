package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage: 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// percent returns part/whole*100, defined as 0 when whole is 0.
func percent(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.Div(whole).Mul(hundred).InexactFloat64())
}
