package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Appending in reverse order must keep the history sorted.
	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// Same day: last received wins.
	h.Append(d1, "again")
	if h.Len() != 2 {
		t.Errorf("Append(d1, again).Len() = %v want 2", h.Len())
	}
	if _, v := h.Latest(); v != "again" {
		t.Errorf("Latest() = %q want %q", v, "again")
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 1, 10), 10).Append(New(2025, 1, 20), 20)

	testCases := []struct {
		day    Date
		want   float64
		wantOK bool
	}{
		{New(2025, 1, 9), 0, false},
		{New(2025, 1, 10), 10, true},
		{New(2025, 1, 15), 10, true},
		{New(2025, 1, 20), 20, true},
		{New(2025, 2, 1), 20, true},
	}
	for _, tc := range testCases {
		got, ok := h.ValueAsOf(tc.day)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tc.day, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestWithin(t *testing.T) {
	h := new(History[int])
	for i := 1; i <= 10; i++ {
		h.Append(New(2025, 1, i), i)
	}
	sum := 0
	for _, v := range h.Within(NewRange(New(2025, 1, 3), New(2025, 1, 5))) {
		sum += v
	}
	if sum != 3+4+5 {
		t.Errorf("Within() sum = %d want %d", sum, 12)
	}

	n := 0
	for range h.Within(NewRange(New(2025, 2, 1), New(2025, 2, 5))) {
		n++
	}
	if n != 0 {
		t.Errorf("Within() outside of history yielded %d values", n)
	}
}
