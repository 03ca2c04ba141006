package date

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-10-29", New(2025, time.October, 29)},
		{"2025-7-1", New(2025, time.July, 1)},
		{" 2024-02-29 ", New(2024, time.February, 29)},
		{"2025-10-29T00:00:00.000Z", New(2025, time.October, 29)},
		{"2025-10-29T23:30:00+03:00", New(2025, time.October, 29)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	for _, in := range []string{"", "yesterday", "2025/10/29", "29.10.2025"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected an error", in)
		}
	}
}

func TestParseRelative(t *testing.T) {
	today := Today()
	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"-6m", today.AddMonths(-6)},
		{"-1y", today.AddYears(-1)},
	}
	for _, tc := range testCases {
		if got := MustParse(tc.in); got != tc.want {
			t.Errorf("MustParse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		name     string
		from, to Date
		want     int
	}{
		{"same day", New(2025, 1, 1), New(2025, 1, 1), 0},
		{"next day", New(2025, 1, 1), New(2025, 1, 2), 1},
		{"one year", New(2024, 1, 1), New(2025, 1, 1), 366},
		{"backwards", New(2025, 3, 1), New(2025, 2, 1), -28},
		{"across dst", New(2025, 3, 29), New(2025, 3, 31), 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.to.Sub(tc.from); got != tc.want {
				t.Errorf("%v.Sub(%v) = %d, want %d", tc.to, tc.from, got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	type record struct {
		On Date `json:"on"`
	}
	var r record
	if err := json.Unmarshal([]byte(`{"on":"2025-10-29T00:00:00.000Z"}`), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := New(2025, 10, 29); r.On != want {
		t.Errorf("Unmarshal() = %v, want %v", r.On, want)
	}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(b), `{"on":"2025-10-29"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestMerge(t *testing.T) {
	a := []Date{New(2025, 1, 1), New(2025, 1, 3)}
	b := []Date{New(2025, 1, 2), New(2025, 1, 3), New(2025, 1, 5)}
	want := []Date{New(2025, 1, 1), New(2025, 1, 2), New(2025, 1, 3), New(2025, 1, 5)}

	if got := slices.Collect(Merge(a, b)); !slices.Equal(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if got := slices.Collect(Merge()); len(got) != 0 {
		t.Errorf("Merge() of nothing = %v, want empty", got)
	}
}
