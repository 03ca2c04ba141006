package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	amount     string
	on         string
	to         string
	startField string
	endField   string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate a past investment in an instrument" }
func (*simulateCmd) Usage() string {
	return `pval simulate -a <amount> -d <date> [-to <date>] [-start-field buy|sell] [-end-field buy|sell] <type/name>

  Tells what buying an amount of an instrument on a past date would be worth
  on another date (the latest rate by default), with the annualized return.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "1", "Amount of the instrument bought")
	f.StringVar(&c.on, "d", "-1y", "Investment date")
	f.StringVar(&c.to, "to", "", "Comparison date (defaults to the latest rate)")
	f.StringVar(&c.startField, "start-field", "buy", "Quoted price paid on the investment date: buy or sell")
	f.StringVar(&c.endField, "end-field", "buy", "Quoted price received on the comparison date: buy or sell")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: one instrument is required")
		return subcommands.ExitUsageError
	}
	s, err := c.simulation(f.Arg(0))
	if err != nil {
		return usage("Error parsing simulation", err)
	}
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}
	rates, err := book.Series(ctx, s.Instrument, date.NewRange(book.Origin(), date.Today()))
	if err != nil {
		return fail("Error reading rates", err)
	}
	res, err := portfolio.Simulate(s, rates)
	if err != nil {
		return fail("Error simulating", err)
	}
	printMarkdown(renderer.SimulationMarkdown(res))
	return subcommands.ExitSuccess
}

func (c *simulateCmd) simulation(instrument string) (portfolio.Simulation, error) {
	var s portfolio.Simulation
	var err error
	if s.Instrument, err = portfolio.ParseInstrumentKey(instrument); err != nil {
		return s, err
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return s, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	s.Amount = portfolio.Q(amount)
	if s.InvestmentDate, err = date.Parse(c.on); err != nil {
		return s, err
	}
	if c.to != "" {
		if s.ComparisonDate, err = date.Parse(c.to); err != nil {
			return s, err
		}
	}
	if s.StartField, err = portfolio.ParsePriceField(c.startField); err != nil {
		return s, err
	}
	if s.EndField, err = portfolio.ParsePriceField(c.endField); err != nil {
		return s, err
	}
	return s, nil
}
