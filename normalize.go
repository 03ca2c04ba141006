package portfolio

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/altinfolio/portfolio/date"
)

// IndexPoint is a normalized price: 100 at the first date of its series.
type IndexPoint struct {
	Date  date.Date `json:"date"`
	Index float64   `json:"index"`
}

// Normalized is the result of Normalize.
//
// An instrument whose base price is 0 is absent from Series and reported in Errors.
type Normalized struct {
	Series map[InstrumentKey][]IndexPoint
	Errors map[InstrumentKey]error
}

// Normalize rebases each series so that its first point is 100, making
// instruments with unrelated price scales comparable on one axis.
//
// Series are sorted by date first when needed. An empty series yields an
// empty normalized series.
func Normalize(set map[InstrumentKey]Series) Normalized {
	n := Normalized{
		Series: make(map[InstrumentKey][]IndexPoint, len(set)),
		Errors: make(map[InstrumentKey]error),
	}
	for key, s := range set {
		s = s.Sorted()
		if len(s) == 0 {
			n.Series[key] = []IndexPoint{}
			continue
		}
		base := s[0].Price
		if base.IsZero() {
			n.Errors[key] = fmt.Errorf("%w: %s is worth 0 on %s", ErrDivisionByZero, key, s[0].Date)
			continue
		}
		points := make([]IndexPoint, 0, len(s))
		for _, p := range s {
			index := p.Price.value.Div(base.value).Mul(hundred)
			points = append(points, IndexPoint{Date: p.Date, Index: index.InexactFloat64()})
		}
		n.Series[key] = points
	}
	return n
}

// Keys returns the normalized instruments sorted by name.
func (n Normalized) Keys() []InstrumentKey {
	keys := make([]InstrumentKey, 0, len(n.Series))
	for k := range n.Series {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Err joins all the errors, nil if every series was normalized.
func (n Normalized) Err() error {
	keys := make([]InstrumentKey, 0, len(n.Errors))
	for k := range n.Errors {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	errs := make([]error, 0, len(keys))
	for _, k := range keys {
		errs = append(errs, n.Errors[k])
	}
	return errors.Join(errs...)
}

// Row is the value of every normalized instrument on one date. An instrument
// without a point on that date is absent from Values.
type Row struct {
	Date   date.Date
	Values map[InstrumentKey]float64
}

// Rows merges the normalized series on a shared chronological date axis.
func (n Normalized) Rows() []Row {
	keys := n.Keys()
	days := make([][]date.Date, 0, len(keys))
	for _, k := range keys {
		d := make([]date.Date, 0, len(n.Series[k]))
		for _, p := range n.Series[k] {
			if len(d) == 0 || d[len(d)-1] != p.Date {
				d = append(d, p.Date)
			}
		}
		days = append(days, d)
	}
	cursor := make([]int, len(keys))
	var rows []Row
	for day := range date.Merge(days...) {
		row := Row{Date: day, Values: make(map[InstrumentKey]float64, len(keys))}
		for i, k := range keys {
			points := n.Series[k]
			// a series may hold the same date twice, the last one wins.
			for cursor[i] < len(points) && !points[cursor[i]].Date.After(day) {
				if points[cursor[i]].Date == day {
					row.Values[k] = points[cursor[i]].Index
				}
				cursor[i]++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func compareKeys(a, b InstrumentKey) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}
	return strings.Compare(a.Name, b.Name)
}
