package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, at most one per day.
// Dates are kept unique and sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// search returns the position of day, and whether it is present.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append records v on day.
//
// An existing value for that day is replaced: the last received wins.
func (h *History[T]) Append(day Date, v T) *History[T] {
	i, found := h.search(day)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, day)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// First returns the earliest date and value, or zero values if empty.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, value
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value, or zero values if empty.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, value
	}
	return h.days[last], h.values[last]
}

// Get returns the value recorded exactly on day.
func (h *History[T]) Get(day Date) (value T, ok bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return value, false
}

// ValueAsOf returns the value on day, or the most recent one before it.
func (h *History[T]) ValueAsOf(day Date) (value T, ok bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return value, false
	}
	return h.values[i-1], true
}

// Values iterates over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Within iterates over the date/value pairs that fall inside r, boundaries included.
func (h *History[T]) Within(r Range) iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		i, _ := h.search(r.From)
		for ; i < len(h.days) && !h.days[i].After(r.To); i++ {
			if !yield(h.days[i], h.values[i]) {
				return
			}
		}
	}
}
