// Package date provides a day-granularity calendar date, date ranges, the
// lookback periods offered when browsing rates and portfolio values, and a
// generic chronologically sorted History.
package date

import (
	"encoding/json"
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format is the ISO-8601 layout used to write dates.
const Format = "2006-01-02"

const readFormat = "2006-1-2" // permissive: accepts single digit month and day.

// Date is a calendar day with no time of day and no time zone.
// The zero value is the "unset" date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	var d Date
	d.y, d.m, d.d = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return d
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return Of(time.Now()) }

// time returns the canonical instant of that day, midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int                    { return d.y }
func (d Date) Month() time.Month            { return d.m }
func (d Date) Day() int                     { return d.d }
func (d Date) Weekday() time.Weekday        { return d.time().Weekday() }
func (d Date) IsZero() bool                 { return d == Date{} }
func (d Date) Before(x Date) bool           { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool            { return d.time().After(x.time()) }
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(Format) }

// Add returns the date i days after d (before d if i is negative).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonths returns the date i months after d, normalized like time.Date does.
func (d Date) AddMonths(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// AddYears returns the date i years after d.
func (d Date) AddYears(i int) Date { return New(d.y+i, d.m, d.d) }

// Sub returns the number of calendar days from x to d.
// Two consecutive days are 1 day apart.
func (d Date) Sub(x Date) int {
	return int(d.time().Sub(x.time()).Hours() / 24)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

var relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// Parse parses a Date. It accepts YYYY-MM-DD (single digit month and day
// allowed), full RFC-3339 timestamps as sent by the rates backend, and
// dates relative to today such as -1d, -2w, -6m or -1y.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return Today(), nil
	}
	if m := relativeRE.FindStringSubmatch(str); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid relative date %q: %w", str, err)
		}
		if m[1] == "-" {
			n = -n
		}
		today := Today()
		switch m[3] {
		case "d":
			return today.Add(n), nil
		case "w":
			return today.Add(7 * n), nil
		case "m":
			return today.AddMonths(n), nil
		default:
			return today.AddYears(n), nil
		}
	}
	if on, err := time.Parse(readFormat, str); err == nil {
		return Of(on), nil
	}
	if on, err := time.Parse(time.RFC3339Nano, str); err == nil {
		return Of(on.UTC()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, Format)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)

// merge returns an iterator over the unique dates of several sorted series, in order.
func merge(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		for {
			var (
				m     Date
				found bool
			)
			for i, index := range indexes {
				if index < len(series[i]) {
					if on := series[i][index]; !found || on.Before(m) {
						m, found = on, true
					}
				}
			}
			if !found {
				return
			}
			// consume every series currently positioned on the min.
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Merge returns an iterator over all unique dates of the given sorted date
// series, in chronological order.
func Merge(series ...[]Date) iter.Seq[Date] { return merge(series...) }

// Iterate returns an iterator over all unique dates of several histories, in chronological order.
func Iterate[T any](histories ...*History[T]) iter.Seq[Date] {
	days := make([][]Date, 0, len(histories))
	for _, h := range histories {
		days = append(days, h.days)
	}
	return merge(days...)
}
