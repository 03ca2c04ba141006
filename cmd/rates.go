package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	typ    string
	names  bool
	stats  string
	period string
	field  string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "list the latest rates of known instruments" }
func (*ratesCmd) Usage() string {
	return `pval rates [-type gold|currency] [-names]
pval rates -stats <type/name> [-period <period>] [-field buy|sell]

  Lists the latest buy and sell prices of every instrument of the rate
  files, or the high, low, average and change of one instrument over a period.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Only list instruments of this type: gold or currency")
	f.BoolVar(&c.names, "names", false, "Only print the instrument names, one per line")
	f.StringVar(&c.stats, "stats", "", "Print the price statistics of this instrument")
	f.StringVar(&c.period, "period", "1M", "Period of the statistics: 1W, 1M, 3M, 6M, 1Y, 3Y or ALL")
	f.StringVar(&c.field, "field", "buy", "Quoted price of the statistics: buy or sell")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}

	if c.stats != "" {
		key, err := portfolio.ParseInstrumentKey(c.stats)
		if err != nil {
			return usage("Error parsing instrument", err)
		}
		field, err := portfolio.ParsePriceField(c.field)
		if err != nil {
			return usage("Error parsing price field", err)
		}
		rg, err := parseRange(c.period, "", "", book.Origin())
		if err != nil {
			return usage("Error parsing period", err)
		}
		prices, err := book.Prices(ctx, []portfolio.InstrumentKey{key}, field, rg)
		if err != nil {
			return fail("Error reading rates", err)
		}
		printMarkdown(renderer.StatsMarkdown(key, field, prices[key]))
		return subcommands.ExitSuccess
	}

	keys := book.Instruments()
	if c.typ != "" {
		t, err := portfolio.ParseInstrumentType(c.typ)
		if err != nil {
			return usage("Error parsing instrument type", err)
		}
		keys = keys[:0]
		for _, name := range book.Names(t) {
			keys = append(keys, portfolio.NewInstrumentKey(t, name))
		}
	}
	if c.names {
		for _, k := range keys {
			fmt.Fprintln(stdout, k)
		}
		return subcommands.ExitSuccess
	}
	snapshot, _, err := latestRates(ctx, book, keys)
	if err != nil {
		return fail("Error reading rates", err)
	}
	printMarkdown(renderer.RatesMarkdown(keys, snapshot))
	return subcommands.ExitSuccess
}
