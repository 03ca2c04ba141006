package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			PortfolioFile: "portfolio.json",
			RatesFile:     "rates.json",
			Currency:      "TRY",
			CostBasis:     "signed",
			RatesPath:     "$.data",
			Style:         "auto",
			LogLevel:      "warning",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("environment wins over dotenv", func(t *testing.T) {
		dotenv := filepath.Join(t.TempDir(), ".env")
		content := "PVAL_RATES_FILE=from-dotenv.json\nPVAL_COST_BASIS=fifo\n"
		if err := os.WriteFile(dotenv, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("PVAL_RATES_FILE", "from-env.json")
		// dotenv values end up in the process environment.
		t.Setenv("PVAL_COST_BASIS", "")
		os.Unsetenv("PVAL_COST_BASIS")

		got, err := LoadConfig(dotenv)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got.RatesFile != "from-env.json" {
			t.Errorf("RatesFile = %q, want %q", got.RatesFile, "from-env.json")
		}
		if got.CostBasis != "fifo" {
			t.Errorf("CostBasis = %q, want %q", got.CostBasis, "fifo")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    logrus.Level
	}{
		{"warning", false, logrus.WarnLevel},
		{"info", false, logrus.InfoLevel},
		{" error ", false, logrus.ErrorLevel},
		{"loud", false, logrus.WarnLevel},
		{"error", true, logrus.DebugLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.level, tt.verbose); got != tt.want {
			t.Errorf("parseLevel(%q, %v) = %v, want %v", tt.level, tt.verbose, got, tt.want)
		}
	}
}
