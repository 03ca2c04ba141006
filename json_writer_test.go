package portfolio

import (
	"math"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1).Append("a", "hello").Append("amount", Q(1.5))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello","amount":1.5}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional", func(t *testing.T) {
		var w jsonObjectWriter
		w.Optional("id", "").Append("a", 1).Optional("note", "x")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"note":"x"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("nan", math.NaN()).Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error marshalling NaN")
		}
	})
}
