package date

import (
	"testing"
	"time"
)

func TestParseLookback(t *testing.T) {
	for _, l := range Lookbacks {
		got, err := ParseLookback(l.String())
		if err != nil {
			t.Fatalf("ParseLookback(%q) error = %v", l, err)
		}
		if got != l {
			t.Errorf("ParseLookback(%q) = %v", l, got)
		}
	}
	if got, err := ParseLookback("6m"); err != nil || got != SixMonths {
		t.Errorf("ParseLookback(6m) = %v, %v want %v", got, err, SixMonths)
	}
	if _, err := ParseLookback("2W"); err == nil {
		t.Error("ParseLookback(2W) expected an error")
	}
}

func TestLookbackRange(t *testing.T) {
	end := New(2025, time.October, 29)
	origin := New(2020, time.January, 1)
	testCases := []struct {
		l    Lookback
		want Date
	}{
		{OneWeek, New(2025, time.October, 22)},
		{OneMonth, New(2025, time.September, 29)},
		{ThreeMonths, New(2025, time.July, 29)},
		{SixMonths, New(2025, time.April, 29)},
		{OneYear, New(2024, time.October, 29)},
		{ThreeYears, New(2022, time.October, 29)},
		{All, origin},
	}
	for _, tc := range testCases {
		t.Run(tc.l.String(), func(t *testing.T) {
			got := tc.l.Range(end, origin)
			if got.From != tc.want || got.To != end {
				t.Errorf("%v.Range() = %v, want %v..%v", tc.l, got, tc.want, end)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := NewRange(New(2025, 1, 30), New(2025, 2, 2))
	if got := r.Len(); got != 4 {
		t.Errorf("Len() = %d want 4", got)
	}
	n := 0
	for d := range r.Days() {
		if !r.Contains(d) {
			t.Errorf("Days() yielded %v outside of %v", d, r)
		}
		n++
	}
	if n != 4 {
		t.Errorf("Days() yielded %d days want 4", n)
	}
	if inverted := NewRange(r.To, r.From); inverted.IsValid() || inverted.Len() != 0 {
		t.Errorf("inverted range %v must be invalid and empty", inverted)
	}
}
