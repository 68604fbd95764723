package config

import (
	"os"
	"path/filepath"
	"testing"

	"exoscope/internal/mission"
)

func TestLoad_YAML(t *testing.T) {
	data := []byte("models_dir: /srv/models\nneighborhood_k: 12\nfallbacks:\n  TESS: 2.0\n")
	c, err := Load(data, ".yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ModelsDir != "/srv/models" {
		t.Errorf("ModelsDir = %q, want /srv/models", c.ModelsDir)
	}
	if c.NeighborhoodK != 12 {
		t.Errorf("NeighborhoodK = %d, want 12", c.NeighborhoodK)
	}
	// Unset fields keep defaults.
	if c.ImputerNeighbors != 5 {
		t.Errorf("ImputerNeighbors = %d, want default 5", c.ImputerNeighbors)
	}
	if got := c.FallbackFor(mission.TESS); got != 2.0 {
		t.Errorf("FallbackFor(TESS) = %v, want override 2.0", got)
	}
	if got := c.FallbackFor(mission.Kepler); got != 0.0 {
		t.Errorf("FallbackFor(KEPLER) = %v, want registry default 0.0", got)
	}
}

func TestLoad_JSONByContent(t *testing.T) {
	c, err := Load([]byte(`{"workers": 4, "impute_defaulted": true}`), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Workers != 4 || !c.ImputeDefaulted {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoad_RejectsBadBounds(t *testing.T) {
	if _, err := Load([]byte("neighborhood_k: 0\n"), ".yaml"); err == nil {
		t.Error("expected error for neighborhood_k 0")
	}
	if _, err := Load([]byte("imputer_neighbors: -1\n"), ".yaml"); err == nil {
		t.Error("expected error for negative imputer_neighbors")
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exoscope.yml")
	if err := os.WriteFile(path, []byte("models_dir: m\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if c.ModelsDir != "m" {
		t.Errorf("ModelsDir = %q, want m", c.ModelsDir)
	}
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
