// Package cmd implements the pval CLI: valuation reports of a gold and
// currency portfolio against quoted rates.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/altinfolio/portfolio"
	"github.com/altinfolio/portfolio/date"
	"github.com/altinfolio/portfolio/ratebook"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valuateCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&ratesCmd{}, "market")
	c.Register(&compareCmd{}, "market")
	c.Register(&alertsCmd{}, "market")

	c.Register(&simulateCmd{}, "tools")
	c.Register(&returnCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile string
	ratesFile     string
	historyFile   string
	currency      string
	costBasis     string
	ratesPath     string
	style         string
	raw           bool
	verbose       bool
	logLevel      string

	log    logrus.FieldLogger = logrus.StandardLogger()
	stdout io.Writer          = os.Stdout
)

// RegisterFlags declares the global flags on f, with defaults from cfg.
func RegisterFlags(f *flag.FlagSet, cfg Config) {
	f.StringVar(&portfolioFile, "portfolio-file", cfg.PortfolioFile, "Path to the portfolio JSON file ("+EnvPrefix+"PORTFOLIO_FILE)")
	f.StringVar(&ratesFile, "rates-file", cfg.RatesFile, "Path to the latest rates JSON file ("+EnvPrefix+"RATES_FILE)")
	f.StringVar(&historyFile, "history-file", cfg.HistoryFile, "Path to the rate history JSON file ("+EnvPrefix+"HISTORY_FILE)")
	f.StringVar(&currency, "currency", cfg.Currency, "Currency rates and costs are quoted in ("+EnvPrefix+"CURRENCY)")
	f.StringVar(&costBasis, "cost-basis", cfg.CostBasis, "Cost basis method for ledgers: signed, average or fifo ("+EnvPrefix+"COST_BASIS)")
	f.StringVar(&ratesPath, "rates-path", cfg.RatesPath, "JSONPath of the rate records in rate files ("+EnvPrefix+"RATES_PATH)")
	f.StringVar(&style, "style", cfg.Style, "Terminal style: auto, dark, light, notty, ascii... ("+EnvPrefix+"STYLE)")
	f.BoolVar(&raw, "raw", false, "Print plain markdown instead of rendering it for the terminal")
	f.BoolVar(&verbose, "v", false, "Log debug messages")
	logLevel = cfg.LogLevel
}

// Setup must be called once the flags are parsed.
func Setup() {
	log = NewLogger(logLevel, verbose)
}

// DecodePortfolio reads the portfolio file.
func DecodePortfolio() (*portfolio.Portfolio, error) {
	f, err := os.Open(portfolioFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := portfolio.DecodePortfolio(f, currency)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"file":         portfolioFile,
		"holdings":     len(p.Holdings),
		"transactions": len(p.Transactions),
	}).Debug("portfolio loaded")
	return p, nil
}

// OpenRates loads the rate files into a rate book.
// The history file is optional.
func OpenRates() (*ratebook.Book, error) {
	book := ratebook.New(
		ratebook.WithPath(ratesPath),
		ratebook.WithCurrency(currency),
		ratebook.WithLogger(log),
	)
	for _, name := range []string{historyFile, ratesFile} {
		if name == "" {
			continue
		}
		if _, err := book.LoadFile(name); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// CostBasis returns the selected cost basis method.
func CostBasis() (portfolio.CostBasisMethod, error) {
	return portfolio.ParseCostBasisMethod(costBasis)
}

// parseRange resolves the report window: an explicit -from/-to pair wins over the period.
func parseRange(period, from, to string, origin date.Date) (date.Range, error) {
	end := date.Today()
	if to != "" {
		var err error
		if end, err = date.Parse(to); err != nil {
			return date.Range{}, err
		}
	}
	if from != "" {
		start, err := date.Parse(from)
		if err != nil {
			return date.Range{}, err
		}
		return date.NewRange(start, end), nil
	}
	l, err := date.ParseLookback(period)
	if err != nil {
		return date.Range{}, err
	}
	return l.Range(end, origin), nil
}

// latestRates returns the snapshot of the latest rates of keys.
func latestRates(ctx context.Context, book *ratebook.Book, keys []portfolio.InstrumentKey) (portfolio.RateSnapshot, date.Date, error) {
	snapshot, err := portfolio.LatestRates(ctx, book, keys...)
	if err != nil {
		return nil, date.Date{}, err
	}
	var on date.Date
	for _, r := range snapshot {
		if r.Date.After(on) {
			on = r.Date
		}
	}
	return snapshot, on, nil
}

// printMarkdown prints md to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if raw {
		fmt.Fprint(stdout, md)
		return
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(120)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.WithError(err).Warn("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.WithError(err).Warn("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail prints err and returns the failure status.
func fail(format string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	return subcommands.ExitFailure
}

// usage prints err and returns the usage error status.
func usage(format string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	return subcommands.ExitUsageError
}

// PredictInstruments lists the instruments of the rate files, for shell completion.
func PredictInstruments(prefix string) []string {
	log = NewLogger("panic", false)
	book, err := OpenRates()
	if err != nil {
		return nil
	}
	var keys []string
	for _, k := range book.Instruments() {
		if s := k.String(); strings.HasPrefix(s, prefix) {
			keys = append(keys, s)
		}
	}
	return keys
}
