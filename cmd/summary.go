package cmd

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/altinfolio/portfolio"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the portfolio totals as JSON" }
func (*summaryCmd) Usage() string {
	return `pval summary

  Prints the total cost, total value, P&L and asset count of the portfolio
  at the latest rates, as a JSON object.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	snapshot, _, err := latestRates(ctx, book, positions.Keys())
	if err != nil {
		return fail("Error reading rates", err)
	}
	s := portfolio.Summarize(portfolio.Valuate(positions, snapshot))

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fail("Error encoding summary", err)
	}
	return subcommands.ExitSuccess
}
