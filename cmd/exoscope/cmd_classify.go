package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"exoscope/internal/config"
	"exoscope/internal/dataset"
	"exoscope/internal/logging"
	"exoscope/internal/pipeline"
	"exoscope/internal/store"
)

var classifyFlags struct {
	mission    string
	output     string
	configPath string
	modelsDir  string
	k          int
	workers    int
	dbPath     string
	noRunLog   bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify <dataset.csv>",
	Short: "Run the feature pipeline and classifier over a survey export",
	Long: `Classify candidate observations from a delimited survey export.

The dataset may carry '#'-prefixed comment lines and blank lines; both are
ignored. The mission selects the feature schema, the trained model and the
column renames applied to the output. A missing model artifact degrades to
the mission's constant fallback prediction rather than failing the run.

Usage:
  exoscope classify cumulative.csv --mission=KEPLER -o processed.csv
  exoscope classify toi.csv --mission=tess`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVarP(&classifyFlags.mission, "mission", "m", "", "Mission: TESS, KEPLER or K2 (required)")
	f.StringVarP(&classifyFlags.output, "output", "o", "data.csv", "Output CSV path")
	f.StringVar(&classifyFlags.configPath, "config", "", "Pipeline config file (YAML/JSON)")
	f.StringVar(&classifyFlags.modelsDir, "models-dir", "", "Model artifact directory (overrides config)")
	f.IntVar(&classifyFlags.k, "k", 0, "Neighborhood size (overrides config)")
	f.IntVar(&classifyFlags.workers, "workers", 0, "Topology worker count (overrides config, 0 = all cores)")
	f.StringVar(&classifyFlags.dbPath, "db", store.DefaultDBPath, "Run log DB path")
	f.BoolVar(&classifyFlags.noRunLog, "no-run-log", false, "Skip recording this run in the run log")
	_ = classifyCmd.MarkFlagRequired("mission")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if classifyFlags.configPath != "" {
		loaded, err := config.LoadFromPath(classifyFlags.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if classifyFlags.modelsDir != "" {
		cfg.ModelsDir = classifyFlags.modelsDir
	}
	if classifyFlags.k > 0 {
		cfg.NeighborhoodK = classifyFlags.k
	}
	if classifyFlags.workers > 0 {
		cfg.Workers = classifyFlags.workers
	}

	result, err := pipeline.Run(cmd.Context(), cfg, classifyFlags.mission, args[0])
	if err != nil {
		return err
	}

	if err := dataset.WriteCSV(classifyFlags.output, result.Header, result.Rows); err != nil {
		return err
	}

	rep := result.Report
	if !classifyFlags.noRunLog {
		recordRun(args[0], classifyFlags.output, rep)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows classified in %s (defaulted cells: %d, degraded samples: %d, fallback: %v)\n",
		rep.Mission, rep.Rows, rep.Duration.Round(time.Millisecond), rep.DefaultedCells, rep.ComputeFailures, rep.FallbackUsed)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", classifyFlags.output)
	return nil
}

// recordRun persists the run report. Best effort: a broken run log is worth
// a warning, never a failed classification.
func recordRun(input, output string, rep pipeline.Report) {
	logger := logging.New("store")
	s, err := store.Open(classifyFlags.dbPath)
	if err != nil {
		logger.Warn("run log unavailable", "path", classifyFlags.dbPath, "error", err)
		return
	}
	defer s.Close()
	_, err = s.RecordRun(&store.Run{
		Mission:         string(rep.Mission),
		InputPath:       input,
		OutputPath:      output,
		Rows:            rep.Rows,
		DefaultedCells:  rep.DefaultedCells,
		MissingColumns:  strings.Join(rep.MissingColumns, ","),
		ComputeFailures: rep.ComputeFailures,
		FallbackUsed:    rep.FallbackUsed,
		DurationMS:      rep.Duration.Milliseconds(),
	})
	if err != nil {
		logger.Warn("run log write failed", "error", err)
	}
}
