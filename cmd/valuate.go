package cmd

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// valuateCmd holds the flags for the 'valuate' subcommand.
type valuateCmd struct {
	noSummary bool
	json      bool
}

func (*valuateCmd) Name() string     { return "valuate" }
func (*valuateCmd) Synopsis() string { return "value every position at the latest rates" }
func (*valuateCmd) Usage() string {
	return `pval valuate [-no-summary] [-json]

  Values each position of the portfolio at the latest buy price of its
  instrument. Positions without a rate are valued at their average cost.
`
}

func (c *valuateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noSummary, "no-summary", false, "Do not print the portfolio totals")
	f.BoolVar(&c.json, "json", false, "Print the valuations as JSON")
}

func (c *valuateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := CostBasis()
	if err != nil {
		return usage("Error parsing cost basis", err)
	}
	p, err := DecodePortfolio()
	if err != nil {
		return fail("Error decoding portfolio", err)
	}
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}

	positions := p.Positions(method)
	snapshot, on, err := latestRates(ctx, book, positions.Keys())
	if err != nil {
		return fail("Error reading rates", err)
	}
	valuations := portfolio.Valuate(positions, snapshot)
	for _, v := range valuations {
		if err := v.Err(); err != nil {
			log.WithError(err).Warn("valued at cost")
		}
	}

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(valuations); err != nil {
			return fail("Error encoding valuations", err)
		}
		return subcommands.ExitSuccess
	}

	v := renderer.NewValuation(p.Name, p.Currency, on, valuations)
	printMarkdown(renderer.RenderValuation(v, renderer.ValuationRenderOptions{SkipSummary: c.noSummary}))
	return subcommands.ExitSuccess
}
