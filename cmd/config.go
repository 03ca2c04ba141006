package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "PVAL_"

// Config holds the defaults of the global flags.
type Config struct {
	PortfolioFile string `env:"PORTFOLIO_FILE" envDefault:"portfolio.json"`
	RatesFile     string `env:"RATES_FILE" envDefault:"rates.json"`
	// HistoryFile holds past rates, in the same format as RatesFile.
	HistoryFile string `env:"HISTORY_FILE"`
	Currency    string `env:"CURRENCY" envDefault:"TRY"`
	CostBasis   string `env:"COST_BASIS" envDefault:"signed"`
	RatesPath   string `env:"RATES_PATH" envDefault:"$.data"`
	Style       string `env:"STYLE" envDefault:"auto"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warning"`
}

// LoadConfig reads the configuration from the environment, after loading the
// given dotenv files. Missing dotenv files are ignored, variables already set
// in the environment win over them.
func LoadConfig(dotenv ...string) (Config, error) {
	for _, name := range dotenv {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", name, err)
		}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// NewLogger returns the CLI logger: text on stderr at the given level.
func NewLogger(level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(parseLevel(level, verbose))
	return log
}

func parseLevel(level string, verbose bool) logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.WarnLevel
	}
	return l
}
