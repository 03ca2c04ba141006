package renderer

import (
	"bytes"

	"github.com/altinfolio/portfolio"
	md "github.com/nao1215/markdown"
)

// RatesMarkdown renders the latest quoted prices of instruments, in the given order.
func RatesMarkdown(keys []portfolio.InstrumentKey, rates portfolio.RateSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rates")
	doc.PlainText("")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Instrument", "Date", "Buy", "Sell"},
	}
	for _, k := range keys {
		r, ok := rates.Get(k)
		if !ok {
			table.Rows = append(table.Rows, []string{k.String(), "-", "-", "-"})
			continue
		}
		table.Rows = append(table.Rows, []string{k.String(), r.Date.String(), r.BuyPrice.String(), r.SellPrice.String()})
	}
	doc.Table(table)
	return doc.String()
}

// StatsMarkdown renders the price statistics of an instrument over a range.
func StatsMarkdown(key portfolio.InstrumentKey, field portfolio.PriceField, s portfolio.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1f("%s %s", key, field)
	doc.PlainText("")
	if len(s) == 0 {
		doc.PlainText("No price in this period.")
		return doc.String()
	}
	s = s.Sorted()
	stats := s.Stats()
	doc.PlainTextf("From %s to %s.", s[0].Date, s[len(s)-1].Date)
	doc.PlainText("")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Change"), md.Bold(stats.Change.SignedString())},
		Rows: [][]string{
			{"Change %", stats.ChangePercent.SignedString()},
			{"High", stats.High.String()},
			{"Low", stats.Low.String()},
			{"Average", stats.Average.String()},
		},
	})
	return doc.String()
}
