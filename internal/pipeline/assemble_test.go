package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"exoscope/internal/dataset"
	"exoscope/internal/mission"
	"exoscope/internal/topology"
)

func TestAssemble_RenamesAndStableSchema(t *testing.T) {
	// Feature set covering two of the three unified quantities; the third
	// must still appear in the header, with explicit empty markers.
	cols := []string{"st_rad", "pl_rade", "st_teff"}
	features := dataset.Matrix{{1.5, 2.5, 5000}}
	topo := []topology.FeatureRow{{EntropyDim0: 0.5, TotalDim0: 2}}
	preds := []float64{1}

	header, rows := assemble(mission.TESS, cols, features, topo, preds)

	wantHeader := []string{
		"Prediction", "Stellar Radius", "Planet Radius", "st_teff",
		"tda_entropy_dim0", "tda_entropy_dim1", "tda_total_dim0", "tda_total_dim1",
		"Orbital Period",
	}
	if diff := cmp.Diff(wantHeader, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	wantRow := []string{"1", "1.5", "2.5", "5000", "0.5", "0", "2", "0", ""}
	if diff := cmp.Diff(wantRow, rows[0]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestModelInput_Width(t *testing.T) {
	features := dataset.Matrix{{1, 2}, {3, 4}}
	topo := []topology.FeatureRow{{}, {EntropyDim1: 1}}
	in := modelInput(features, topo)
	if len(in) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(in))
	}
	for i, row := range in {
		if len(row) != 6 {
			t.Errorf("row %d: width %d, want features+4 = 6", i, len(row))
		}
	}
	if in[1][3] != 1 {
		t.Errorf("entropy dim1 slot = %v, want 1", in[1][3])
	}
}
