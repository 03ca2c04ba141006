package portfolio

import (
	"errors"
	"testing"

	"github.com/altinfolio/portfolio/date"
)

func TestCompare(t *testing.T) {
	prices := map[InstrumentKey]Series{
		gram: series("2023-12-31", 1900.0, "2024-01-01", 2000.0, "2024-01-31", 2200.0),
		usd:  series("2024-01-01", 30.0, "2024-01-31", 31.5),
		eur:  series("2024-01-01", 0.0, "2024-01-31", 35.0),
	}
	c, err := Compare([]InstrumentKey{gram, usd, eur, quart}, prices, date.NewRange(day("2024-01-01"), day("2024-01-31")))
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if got := c.Normalized.Series[gram]; len(got) != 2 || got[0].Index != 100 || got[1].Index != 110 {
		t.Errorf("normalized %v = %v, want [100 110] within the range", gram, got)
	}
	if !errors.Is(c.Normalized.Errors[eur], ErrDivisionByZero) {
		t.Errorf("Errors[eur] = %v, want %v", c.Normalized.Errors[eur], ErrDivisionByZero)
	}
	if got := c.Normalized.Series[quart]; got == nil || len(got) != 0 {
		t.Errorf("normalized %v = %v, want empty", quart, got)
	}

	if r, ok := c.Returns[usd]; !ok || !r.Percent.Equal(5) || r.DurationDays != 30 {
		t.Errorf("Returns[usd] = %+v, want 5%% over 30 days", r)
	}
	if r := c.Returns[eur]; !errors.Is(r.Err, ErrInvalidBase) {
		t.Errorf("Returns[eur].Err = %v, want %v", r.Err, ErrInvalidBase)
	}
	if _, ok := c.Returns[quart]; ok {
		t.Errorf("Returns[quart] is set without prices")
	}
}

func TestCompare_Size(t *testing.T) {
	r := date.NewRange(day("2024-01-01"), day("2024-01-31"))
	tests := []struct {
		name string
		keys []InstrumentKey
	}{
		{"none", nil},
		{"one", []InstrumentKey{gram}},
		{"duplicates", []InstrumentKey{gram, gram}},
		{"six", []InstrumentKey{gram, quart, usd, eur, NewInstrumentKey(Currency, "Sterlin"), NewInstrumentKey(Gold, "Ons")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compare(tt.keys, nil, r); !errors.Is(err, ErrComparisonSize) {
				t.Errorf("Compare() error = %v, want %v", err, ErrComparisonSize)
			}
		})
	}
	if _, err := Compare([]InstrumentKey{gram, usd}, nil, date.NewRange(r.To, r.From)); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Compare() inverted range error = %v, want %v", err, ErrInvalidDuration)
	}
}
