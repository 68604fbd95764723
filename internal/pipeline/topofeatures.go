package pipeline

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"exoscope/internal/logging"
	"exoscope/internal/topology"
)

// ExtractFeatures computes one topological FeatureRow per cloud using a
// bounded worker pool. Results land in pre-allocated slots indexed by sample
// position, so output order is independent of scheduling. A sample whose
// computation panics or produces non-finite values gets a zero row instead
// of failing the batch; failures reports how many samples degraded that way.
func ExtractFeatures(ctx context.Context, clouds []Cloud, workers int) (rows []topology.FeatureRow, failures int, err error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows = make([]topology.FeatureRow, len(clouds))
	var failed atomic.Int64
	logger := logging.New("topology")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cloud := range clouds {
		i, cloud := i, cloud
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, ok := extractOne(cloud)
			if !ok {
				logger.Warn("sample degraded to zero features", "sample", i)
				failed.Add(1)
				row = topology.FeatureRow{}
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, int(failed.Load()), nil
}

// extractOne computes a single sample's diagram and features, converting
// panics and non-finite outputs into a degraded result.
func extractOne(cloud Cloud) (row topology.FeatureRow, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = topology.FeatureRow{}, false
		}
	}()
	row = topology.Reduce(topology.RipsDiagram(cloud))
	if !row.Finite() {
		return topology.FeatureRow{}, false
	}
	return row, true
}
