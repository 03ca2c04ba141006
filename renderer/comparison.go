package renderer

import (
	"bytes"
	"strconv"

	"github.com/altinfolio/portfolio"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders instruments side by side on the normalized
// axis, with each instrument return over the range.
func ComparisonMarkdown(c portfolio.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Comparison")
	doc.PlainText("")
	doc.PlainTextf("From %s to %s, indexed to 100 on the first price of each instrument.", c.Range.From, c.Range.To)
	doc.PlainText("")

	returns := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Instrument", "First", "Last", "Return", "Annualized"},
	}
	for _, k := range c.Instruments {
		r, ok := c.Returns[k]
		if !ok {
			returns.Rows = append(returns.Rows, []string{k.String(), "-", "-", "no price", "-"})
			continue
		}
		returns.Rows = append(returns.Rows, []string{
			k.String(),
			r.Start.String(),
			r.End.String(),
			r.Percent.SignedString(),
			annualized(r),
		})
	}
	doc.Table(returns)

	if len(c.Normalized.Errors) > 0 {
		var errs []string
		for _, k := range c.Instruments {
			if err, ok := c.Normalized.Errors[k]; ok {
				errs = append(errs, k.String()+": "+err.Error())
			}
		}
		doc.Warning("Some instruments cannot be indexed.")
		doc.PlainText("")
		doc.BulletList(errs...)
		doc.PlainText("")
	}

	rows := c.Normalized.Rows()
	if len(rows) == 0 {
		return doc.String()
	}

	doc.H2("Index")
	doc.PlainText("")
	var indexed []portfolio.InstrumentKey
	for _, k := range c.Instruments {
		if _, ok := c.Normalized.Series[k]; ok {
			indexed = append(indexed, k)
		}
	}
	table := md.TableSet{Header: []string{"Date"}, Alignment: []md.TableAlignment{md.AlignLeft}}
	for _, k := range indexed {
		table.Header = append(table.Header, k.String())
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, row := range rows {
		cells := []string{row.Date.String()}
		for _, k := range indexed {
			v, ok := row.Values[k]
			if !ok {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, strconv.FormatFloat(v, 'f', 2, 64))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}
