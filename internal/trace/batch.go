package trace

import (
	"context"
	"sync"
)

// Batch runs several algorithm instances concurrently through copies of a
// base runner's metric set.
type Batch struct {
	base       *Runner
	newMetrics func() []Metric
}

// NewBatch returns a batch; newMetrics builds a fresh metric set for each
// run since metrics are stateful.
func NewBatch(base *Runner, newMetrics func() []Metric) *Batch {
	return &Batch{base: base, newMetrics: newMetrics}
}

func (b *Batch) Run(ctx context.Context, algs []Algorithm, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func(idx int, alg Algorithm) {
			defer wg.Done()

			r := NewRunner(b.base.logger)
			if b.newMetrics != nil {
				for _, m := range b.newMetrics() {
					r.AddMetric(m)
				}
			}

			results[idx], errs[idx] = r.Run(ctx, alg, cfg)
		}(i, alg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
