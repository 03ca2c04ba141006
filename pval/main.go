// Command pval values a gold and currency portfolio against quoted rates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/altinfolio/portfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.RegisterFlags(flag.CommandLine, cfg)

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete(path.Base(os.Args[0]))

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion. Flags are
// read from the flag sets, only their values are predicted here.
func completion(commander *subcommands.Commander) *complete.Command {
	files := predict.Files("*.json")
	periods := predict.Set{"1W", "1M", "3M", "6M", "1Y", "3Y", "ALL"}
	fields := predict.Set{"buy", "sell"}
	instruments := complete.PredictFunc(cmd.PredictInstruments)

	values := map[string]complete.Predictor{
		"portfolio-file": files,
		"rates-file":     files,
		"history-file":   files,
		"alerts-file":    files,
		"cost-basis":     predict.Set{"signed", "average", "fifo"},
		"style":          predict.Set{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"},
		"period":         periods,
		"field":          fields,
		"start-field":    fields,
		"end-field":      fields,
		"type":           predict.Set{"gold", "currency"},
		"stats":          instruments,
		"o":              predict.Files("*.csv"),
	}
	args := map[string]complete.Predictor{
		"compare":  instruments,
		"simulate": instruments,
		"export":   predict.Set{"valuations", "transactions"},
	}

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(commander.VisitAll, values),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(f.VisitAll, values),
			Args:  args[c.Name()],
		}
	})
	return root
}

// flagPredictors predicts every visited flag: nothing for booleans, the known
// values when there are some, anything otherwise.
func flagPredictors(visit func(func(*flag.Flag)), values map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	visit(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		if p, ok := values[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
