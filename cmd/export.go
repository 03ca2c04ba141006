package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export valuations or transactions as CSV" }
func (*exportCmd) Usage() string {
	return `pval export [-o <file>] valuations|transactions

  Writes the valuations of the portfolio at the latest rates, with a TOTAL
  record, or its transaction ledger as CSV.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: what to export is required: valuations or transactions")
		return subcommands.ExitUsageError
	}
	what := f.Arg(0)
	if what != "valuations" && what != "transactions" {
		fmt.Fprintf(os.Stderr, "Error: cannot export %q, want valuations or transactions\n", what)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		return fail("Error decoding portfolio", err)
	}

	w := stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail("Error creating output", err)
		}
		defer file.Close()
		w = file
	}

	if what == "transactions" {
		if err := renderer.WriteTransactionsCSV(w, p.Transactions); err != nil {
			return fail("Error writing transactions", err)
		}
		return subcommands.ExitSuccess
	}

	method, err := CostBasis()
	if err != nil {
		return usage("Error parsing cost basis", err)
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
	if err := renderer.WriteValuationsCSV(w, portfolio.Valuate(positions, snapshot)); err != nil {
		return fail("Error writing valuations", err)
	}
	return subcommands.ExitSuccess
}
