// Package config holds the pipeline's tunable parameters, loadable from a
// YAML or JSON file and overridable by CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"exoscope/internal/mission"
)

// Config is the full pipeline configuration. Zero values mean "use default";
// Default() returns a fully populated instance.
type Config struct {
	// ModelsDir is where per-mission model artifacts are searched.
	ModelsDir string `yaml:"models_dir" json:"models_dir"`
	// ImputerNeighbors is the KNN-imputation neighbor count (clamped to the
	// batch size at run time).
	ImputerNeighbors int `yaml:"imputer_neighbors" json:"imputer_neighbors"`
	// NeighborhoodK is the local point-cloud size (clamped to the batch size).
	NeighborhoodK int `yaml:"neighborhood_k" json:"neighborhood_k"`
	// Workers bounds the topology worker pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
	// ImputeDefaulted leaves coercion-defaulted cells to the KNN imputer
	// instead of treating them as real zeros.
	ImputeDefaulted bool `yaml:"impute_defaulted" json:"impute_defaulted"`
	// Fallbacks overrides the per-mission constant prediction used when no
	// model artifact resolves. Keys are mission identifiers.
	Fallbacks map[string]float64 `yaml:"fallbacks" json:"fallbacks"`
}

// Default returns the configuration matching the reference pipeline:
// 5 imputer neighbors, neighborhoods of 30, models under ./models.
func Default() Config {
	return Config{
		ModelsDir:        "models",
		ImputerNeighbors: 5,
		NeighborhoodK:    30,
		Workers:          0,
	}
}

// FallbackFor resolves the constant prediction for a mission: the config
// override when present, the registry default otherwise.
func (c Config) FallbackFor(k mission.Key) float64 {
	if v, ok := c.Fallbacks[string(k)]; ok {
		return v
	}
	return mission.FallbackFor(k)
}

// LoadFromPath reads a config file (YAML or JSON) over the defaults.
// Format is detected by extension (.yaml/.yml/.json) or by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes over the defaults. ext is the file extension
// for format hint; empty = detect from content (JSON if it opens with '{').
func Load(data []byte, ext string) (*Config, error) {
	c := Default()
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			if err := json.Unmarshal(data, &c); err != nil {
				return nil, fmt.Errorf("parse config json: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if c.ImputerNeighbors < 1 {
		return nil, fmt.Errorf("parse config: imputer_neighbors must be >= 1, got %d", c.ImputerNeighbors)
	}
	if c.NeighborhoodK < 1 {
		return nil, fmt.Errorf("parse config: neighborhood_k must be >= 1, got %d", c.NeighborhoodK)
	}
	return &c, nil
}
