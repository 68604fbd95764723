package pipeline

import (
	"strconv"

	"exoscope/internal/dataset"
	"exoscope/internal/mission"
	"exoscope/internal/topology"
)

// Topological output columns, in the order the model was trained on:
// entropies first, totals second.
var tdaColumns = []string{
	"tda_entropy_dim0", "tda_entropy_dim1", "tda_total_dim0", "tda_total_dim1",
}

// modelInput concatenates the coerced feature matrix with the four
// topological columns, row-aligned. This is the exact matrix the predictor
// receives: schema width + 4.
func modelInput(features dataset.Matrix, topo []topology.FeatureRow) [][]float64 {
	rows := make([][]float64, len(features))
	for i, f := range features {
		row := make([]float64, 0, len(f)+len(tdaColumns))
		row = append(row, f...)
		v := topo[i].Values()
		row = append(row, v[:]...)
		rows[i] = row
	}
	return rows
}

// assemble builds the final output table: the Prediction column first, then
// the feature columns with the mission's unified renames applied, then the
// topological columns. Unified physical columns the mission never produced
// are appended with explicit empty markers so the output schema is stable
// across missions. Row order and count are untouched.
func assemble(key mission.Key, featureCols []string, features dataset.Matrix, topo []topology.FeatureRow, preds []float64) ([]string, [][]string) {
	renames := mission.RenamesFor(key)

	header := make([]string, 0, 1+len(featureCols)+len(tdaColumns)+len(mission.UnifiedColumns))
	header = append(header, "Prediction")
	covered := make(map[string]bool, len(mission.UnifiedColumns))
	for _, col := range featureCols {
		if unified, ok := renames[col]; ok {
			covered[unified] = true
			header = append(header, unified)
			continue
		}
		header = append(header, col)
	}
	header = append(header, tdaColumns...)

	var absent []string
	for _, u := range mission.UnifiedColumns {
		if !covered[u] {
			absent = append(absent, u)
			header = append(header, u)
		}
	}

	rows := make([][]string, len(features))
	for i, f := range features {
		row := make([]string, 0, len(header))
		row = append(row, formatFloat(preds[i]))
		for _, v := range f {
			row = append(row, formatFloat(v))
		}
		for _, v := range topo[i].Values() {
			row = append(row, formatFloat(v))
		}
		for range absent {
			row = append(row, "")
		}
		rows[i] = row
	}
	return header, rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
