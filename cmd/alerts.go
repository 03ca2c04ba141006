package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/renderer"
	"github.com/google/subcommands"
)

// alertsCmd holds the flags for the 'alerts' subcommand.
type alertsCmd struct {
	alertsFile string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "check price alerts against the latest rates" }
func (*alertsCmd) Usage() string {
	return `pval alerts [-alerts-file <file>]

  Evaluates every active alert that has not triggered yet. ABOVE triggers when
  the price reaches the target or more, BELOW when it falls to the target or
  less, EQUALS when both are equal to the currency minor unit.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.alertsFile, "alerts-file", "alerts.json", "Path to the alerts JSON file")
}

func (c *alertsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.alertsFile)
	if err != nil {
		return fail("Error opening alerts", err)
	}
	defer file.Close()
	alerts, err := portfolio.DecodeAlerts(file, currency)
	if err != nil {
		return fail("Error decoding alerts", err)
	}
	book, err := OpenRates()
	if err != nil {
		return fail("Error loading rates", err)
	}

	var keys []portfolio.InstrumentKey
	for _, a := range alerts {
		keys = append(keys, a.Instrument)
	}
	snapshot, on, err := latestRates(ctx, book, keys)
	if err != nil {
		return fail("Error reading rates", err)
	}
	results := portfolio.EvaluateAlerts(alerts, snapshot)
	for _, r := range results {
		if r.Err != nil {
			log.WithError(r.Err).WithField("alert", r.Alert.ID).Warn("alert not evaluated")
		}
	}
	printMarkdown(renderer.RenderAlerts(renderer.NewAlerts(on, results)))
	return subcommands.ExitSuccess
}
