package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// returnCmd holds the flags for the 'return' subcommand.
type returnCmd struct {
	start, end string
	from, to   string
	json       bool
}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "compute the simple and annualized return between two values" }
func (*returnCmd) Usage() string {
	return `pval return -start <value> -end <value> -from <date> [-to <date>] [-json]

  Computes the absolute, percent and annualized return of going from the
  start value on -from to the end value on -to.
`
}

func (c *returnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Value at the start")
	f.StringVar(&c.end, "end", "", "Value at the end")
	f.StringVar(&c.from, "from", "", "Start date")
	f.StringVar(&c.to, "to", "0d", "End date (defaults to today)")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
}

func (c *returnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := decimal.NewFromString(c.start)
	if err != nil {
		return usage("Error parsing start value", err)
	}
	end, err := decimal.NewFromString(c.end)
	if err != nil {
		return usage("Error parsing end value", err)
	}
	from, err := date.Parse(c.from)
	if err != nil {
		return usage("Error parsing start date", err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return usage("Error parsing end date", err)
	}

	r := portfolio.ComputeReturn(portfolio.M(start, currency), portfolio.M(end, currency), from, to)
	if c.json {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fail("Error encoding return", err)
		}
		fmt.Fprintln(stdout, string(b))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ReturnMarkdown(r))
	return subcommands.ExitSuccess
}
