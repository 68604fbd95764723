// exoscope classifies candidate exoplanet observations from the TESS, KEPLER
// and K2 surveys by combining per-mission trained models with topological
// features computed from local neighborhoods of each observation.
//
// Usage:
//
//	exoscope classify <dataset.csv> --mission=KEPLER -o processed.csv
//	exoscope schema --mission=TESS
//	exoscope runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exoscope/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "exoscope",
	Short: "Mission-aware exoplanet candidate classification",
	Long: "Exoscope runs the mission-aware feature pipeline over a survey export:\n" +
		"schema coercion, KNN imputation, per-sample neighborhood point clouds,\n" +
		"Vietoris-Rips persistence features, and classification.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
