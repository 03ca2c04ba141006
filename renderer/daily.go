package renderer

import (
	"bytes"

	"github.com/altinfolio/portfolio"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders the daily rollup of a portfolio value series.
func DailyMarkdown(name string, r portfolio.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if name == "" {
		name = "Portfolio"
	}
	doc.H1f("%s Daily Performance", name)
	doc.PlainText("")

	if len(r.Changes) == 0 {
		doc.PlainText("Not enough values to compute daily changes.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Return"),
			md.Bold(r.Return.Absolute.SignedString()),
		},
		Rows: [][]string{
			{"Return", r.Return.Percent.SignedString()},
			{"Annualized", annualized(r.Return)},
			{"Average Value", r.AverageValue.String()},
			{"Volatility", r.Volatility.String()},
			{"Best Day", dayOf(r.BestDay)},
			{"Worst Day", dayOf(r.WorstDay)},
		},
	})

	doc.H2("Daily Changes")
	doc.PlainText("")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Value", "Change", "Change %"},
	}
	for _, c := range r.Changes {
		table.Rows = append(table.Rows, []string{
			c.Date.String(),
			c.Value.String(),
			c.Change.SignedString(),
			c.ChangePercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func dayOf(c *portfolio.DailyChange) string {
	if c == nil {
		return "-"
	}
	return c.Date.String() + " " + c.ChangePercent.SignedString()
}

// annualized renders the annualized return, or why there is none.
func annualized(r portfolio.ReturnResult) string {
	if r.Annualized == nil {
		if r.Err != nil {
			return "n/a (" + r.Err.Error() + ")"
		}
		return "n/a"
	}
	return r.Annualized.SignedString()
}
