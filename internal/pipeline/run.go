package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"exoscope/internal/config"
	"exoscope/internal/dataset"
	"exoscope/internal/logging"
	"exoscope/internal/mission"
	"exoscope/internal/predict"
)

// ErrEmptyDataset is returned when no usable rows remain after coercion.
var ErrEmptyDataset = errors.New("dataset contains no usable rows")

// Report carries the run's degradation diagnostics. Nothing in it ever
// fails a run; it is logged, returned, and persisted to the run log.
type Report struct {
	Mission         mission.Key
	Rows            int
	DefaultedCells  int
	MissingColumns  []string
	ComputeFailures int
	FallbackUsed    bool
	Duration        time.Duration
}

// Result is one complete pipeline output: the final table plus its Report.
type Result struct {
	Header []string
	Rows   [][]string
	Report Report
}

// Run executes the full transform for one uploaded dataset:
// parse mission, load, coerce, impute, standardize, neighborhoods,
// persistence features, resolve predictor, predict, assemble.
// Unsupported missions and empty datasets are terminal; every other
// degradation is absorbed into the Report.
func Run(ctx context.Context, cfg config.Config, missionArg, datasetPath string) (*Result, error) {
	start := time.Now()
	logger := logging.New("pipeline")

	key, err := mission.Parse(missionArg)
	if err != nil {
		return nil, err
	}

	tbl, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, err
	}

	var (
		featureCols []string
		matrix      dataset.Matrix
		stats       dataset.CoercionStats
	)
	if schema, ok := mission.SchemaFor(key); ok {
		featureCols = schema
		matrix, stats = dataset.Coerce(tbl, schema, cfg.ImputeDefaulted)
	} else {
		featureCols, matrix, stats = dataset.CoerceNumeric(tbl, cfg.ImputeDefaulted)
	}
	if len(matrix) == 0 || len(featureCols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, datasetPath)
	}
	if stats.Defaulted > 0 {
		logger.Warn("coercion defaulted cells",
			"count", stats.Defaulted, "missing_columns", strings.Join(stats.MissingColumns, ","))
	}
	logger.Info("dataset coerced", "mission", key, "rows", len(matrix), "features", len(featureCols))

	imputed := ImputeKNN(matrix, cfg.ImputerNeighbors)
	scaled := Standardize(imputed)

	clouds := Neighborhoods(scaled, cfg.NeighborhoodK)
	topo, failures, err := ExtractFeatures(ctx, clouds, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("extract topological features: %w", err)
	}
	logger.Info("topological features extracted", "samples", len(topo), "degraded", failures)

	predictor, loaded := predict.Resolve(cfg.ModelsDir, strings.ToLower(string(key)), cfg.FallbackFor(key))
	preds, err := predictor.Predict(modelInput(imputed, topo))
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	header, rows := assemble(key, featureCols, imputed, topo, preds)

	return &Result{
		Header: header,
		Rows:   rows,
		Report: Report{
			Mission:         key,
			Rows:            len(rows),
			DefaultedCells:  stats.Defaulted,
			MissingColumns:  stats.MissingColumns,
			ComputeFailures: failures,
			FallbackUsed:    !loaded,
			Duration:        time.Since(start),
		},
	}, nil
}
