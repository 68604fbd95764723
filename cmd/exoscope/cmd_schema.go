package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exoscope/internal/format"
	"exoscope/internal/mission"
)

var schemaFlags struct {
	mission  string
	markdown bool
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the feature schema a mission expects",
	Long: `Print a mission's ordered feature columns and the unified physical
names applied to the output table. Useful for checking whether an export
carries the columns the model was trained on.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	f := schemaCmd.Flags()
	f.StringVarP(&schemaFlags.mission, "mission", "m", "", "Mission: TESS, KEPLER or K2 (required)")
	f.BoolVar(&schemaFlags.markdown, "markdown", false, "Render as a Markdown table")
	_ = schemaCmd.MarkFlagRequired("mission")
}

func runSchema(cmd *cobra.Command, args []string) error {
	key, err := mission.Parse(schemaFlags.mission)
	if err != nil {
		return err
	}
	schema, _ := mission.SchemaFor(key)
	renames := mission.RenamesFor(key)

	mode := format.ASCII
	if schemaFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("#", "Column", "Unified Name")
	for i, col := range schema {
		tb.Row(i+1, col, renames[col])
	}
	tb.Columns(format.ColumnConfig{Number: 1, AlignRight: true})

	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d feature columns, fallback prediction %v\n",
		key, len(schema), mission.FallbackFor(key))
	return nil
}
