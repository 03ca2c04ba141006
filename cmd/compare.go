package cmd

import (
	"context"
	"flag"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	period string
	from   string
	to     string
	field  string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the price moves of 2 to 5 instruments" }
func (*compareCmd) Usage() string {
	return `pval compare [-period <period>] [-from <date>] [-to <date>] [-field buy|sell] <type/name>...

  Indexes the price of each instrument to 100 on its first rate of the period
  so that instruments of unrelated price scales can be compared, e.g.

    pval compare -period 1Y "gold/Gram Altın" "currency/Amerikan Doları"
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "1M", "Period ending on -to: 1W, 1M, 3M, 6M, 1Y, 3Y or ALL")
	f.StringVar(&c.from, "from", "", "First day of the comparison, overrides -period")
	f.StringVar(&c.to, "to", "", "Last day of the comparison (defaults to today)")
	f.StringVar(&c.field, "field", "buy", "Quoted price to compare: buy or sell")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var keys []portfolio.InstrumentKey
	for _, arg := range f.Args() {
		k, err := portfolio.ParseInstrumentKey(arg)
		if err != nil {
			return usage("Error parsing instrument", err)
		}
		keys = append(keys, k)
	}
	field, err := portfolio.ParsePriceField(c.field)
	if err != nil {
		return usage("Error parsing price field", err)
	}
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}
	rg, err := parseRange(c.period, c.from, c.to, book.Origin())
	if err != nil {
		return usage("Error parsing period", err)
	}
	prices, err := book.Prices(ctx, keys, field, rg)
	if err != nil {
		return fail("Error reading rates", err)
	}
	comparison, err := portfolio.Compare(keys, prices, rg)
	if err != nil {
		return usage("Error comparing instruments", err)
	}
	if err := comparison.Normalized.Err(); err != nil {
		log.WithError(err).Warn("some instruments cannot be indexed")
	}
	printMarkdown(renderer.ComparisonMarkdown(comparison))
	return subcommands.ExitSuccess
}
