package cmd

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	period string
	from   string
	to     string
	json   bool
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily value changes of the portfolio" }
func (*dailyCmd) Usage() string {
	return `pval daily [-period <1W|1M|3M|6M|1Y|3Y|ALL>] [-from <date>] [-to <date>] [-json]

  Values the portfolio on every day of the period from the rate history and
  reports the daily changes, the best and worst days, the volatility and the
  return over the period.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "1M", "Period ending on -to: 1W, 1M, 3M, 6M, 1Y, 3Y or ALL")
	f.StringVar(&c.from, "from", "", "First day of the report, overrides -period")
	f.StringVar(&c.to, "to", "", "Last day of the report (defaults to today)")
	f.BoolVar(&c.json, "json", false, "Print the value series as JSON")
}

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("Error decoding portfolio", err)
	}
	rg, err := parseRange(c.period, c.from, c.to, p.Inception())
	if err != nil {
		return usage("Error parsing period", err)
	}
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}

	// values are read as of each day, earlier rates are needed too.
	prices, err := book.Prices(ctx, p.Instruments(), portfolio.BuyPrice, date.NewRange(book.Origin(), rg.To))
	if err != nil {
		return fail("Error reading rates", err)
	}
	points := p.ValueHistory(prices, rg)
	log.WithField("range", rg).WithField("points", len(points)).Debug("value history computed")

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(points); err != nil {
			return fail("Error encoding value history", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.DailyMarkdown(p.Name, portfolio.AnalyzeDaily(points)))
	return subcommands.ExitSuccess
}
