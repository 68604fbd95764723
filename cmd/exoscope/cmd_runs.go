package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"exoscope/internal/format"
	"exoscope/internal/store"
)

var runsFlags struct {
	dbPath   string
	limit    int
	markdown bool
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent pipeline runs from the run log",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.StringVar(&runsFlags.dbPath, "db", store.DefaultDBPath, "Run log DB path")
	f.IntVar(&runsFlags.limit, "limit", 20, "Maximum runs to list")
	f.BoolVar(&runsFlags.markdown, "markdown", false, "Render as a Markdown table")
}

func runRuns(cmd *cobra.Command, args []string) error {
	s, err := store.Open(runsFlags.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(runsFlags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}

	mode := format.ASCII
	if runsFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("ID", "When", "Mission", "Input", "Rows", "Defaulted", "Degraded", "Fallback", "Duration")
	for _, r := range runs {
		tb.Row(r.ID, r.CreatedAt, r.Mission, format.Truncate(r.InputPath, 40),
			r.Rows, r.DefaultedCells, r.ComputeFailures,
			format.BoolMark(r.FallbackUsed),
			format.FmtDuration(time.Duration(r.DurationMS)*time.Millisecond))
	}
	tb.Columns(
		format.ColumnConfig{Number: 1, AlignRight: true},
		format.ColumnConfig{Number: 5, AlignRight: true},
		format.ColumnConfig{Number: 6, AlignRight: true},
		format.ColumnConfig{Number: 7, AlignRight: true},
	)
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
