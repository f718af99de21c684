package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/metrics"
	"github.com/san-kum/algoscope/internal/registry"
	"github.com/san-kum/algoscope/internal/trace"
)

// BenchRow is the outcome of one preset in a benchmark.
type BenchRow struct {
	Preset    string
	Output    any
	Frames    int
	Truncated bool
	Elapsed   time.Duration
	Metrics   map[string]float64
}

// Bench runs every preset of an algorithm concurrently.
func Bench(ctx context.Context, reg *registry.Registry, algorithm string, logger *slog.Logger) ([]BenchRow, error) {
	entry, err := reg.Get(algorithm)
	if err != nil {
		return nil, err
	}
	names := config.ListPresets(algorithm)

	algs := make([]trace.Algorithm, len(names))
	for i, name := range names {
		cfg := config.GetPreset(algorithm, name)
		alg, err := entry.Build(cfg.Input)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}

	batch := trace.NewBatch(trace.NewRunner(logger), func() []trace.Metric {
		return metrics.Default(len(entry.Code))
	})
	results, err := batch.Run(ctx, algs, trace.DefaultConfig())
	if err != nil {
		return nil, err
	}

	rows := make([]BenchRow, len(results))
	for i, r := range results {
		rows[i] = BenchRow{
			Preset:    names[i],
			Output:    r.Output,
			Frames:    r.History.Len(),
			Truncated: r.Truncated,
			Elapsed:   r.Elapsed,
			Metrics:   r.Metrics,
		}
	}
	return rows, nil
}
