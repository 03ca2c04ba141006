package renderer

import (
	"bytes"
	"strconv"

	"github.com/altinfolio/portfolio"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders what a past investment would be worth.
func SimulationMarkdown(s portfolio.SimulationResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1f("Simulation of %s %s", s.Amount, s.Instrument)
	doc.PlainText("")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", s.InvestmentDate.String(), s.ComparisonDate.String()},
		Rows: [][]string{
			{"Rate Date", s.StartRate.Date.String(), s.EndRate.Date.String()},
			{"Price", s.StartRate.Price(s.StartField).String() + " (" + s.StartField.String() + ")", s.EndRate.Price(s.EndField).String() + " (" + s.EndField.String() + ")"},
			{"Value", s.InitialValue.String(), s.CurrentValue.String()},
		},
	})
	returnTable(doc, s.Return)
	return doc.String()
}

// ReturnMarkdown renders the return between two values.
func ReturnMarkdown(r portfolio.ReturnResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1f("Return from %s to %s", r.StartDate, r.EndDate)
	doc.PlainText("")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Start", r.Start.String()},
		Rows:      [][]string{{"End", r.End.String()}},
	})
	returnTable(doc, r)
	return doc.String()
}

func returnTable(doc *md.Markdown, r portfolio.ReturnResult) {
	doc.H2("Return")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Profit"), md.Bold(r.Absolute.SignedString())},
		Rows: [][]string{
			{"Return", r.Percent.SignedString()},
			{"Duration", strconv.Itoa(r.DurationDays) + " days"},
			{"Annualized", annualized(r)},
		},
	})
}
