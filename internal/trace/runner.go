package trace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type Runner struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes alg once and returns its recorded history.
func (r *Runner) Run(ctx context.Context, alg Algorithm, cfg Config) (*Result, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}

	ctx, cancel := cfg.Context(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	rec := NewRecorder(WithLimit(cfg.MaxFrames))
	start := time.Now()

	out, err := alg.Run(rec)
	elapsed := time.Since(start)
	if err != nil {
		return nil, &RunError{Algorithm: alg.Name(), Frames: rec.Len(), Wrapped: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	history := rec.History()
	if len(history) == 0 {
		return nil, &RunError{Algorithm: alg.Name(), Wrapped: ErrEmptyHistory}
	}

	result := &Result{
		Algorithm: alg.Name(),
		Output:    out,
		History:   history,
		Metrics:   make(map[string]float64, len(r.metrics)),
		Truncated: rec.Truncated(),
		Elapsed:   elapsed,
	}

	for _, f := range history {
		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, obs := range r.observers {
			obs.OnFrame(f)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if result.Truncated {
		r.logger.Warn("history truncated", "algorithm", alg.Name(), "max_frames", cfg.MaxFrames)
	}
	r.logger.Debug("run complete", "algorithm", alg.Name(), "frames", len(history), "elapsed", elapsed)

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.MaxFrames < 0 {
		return fmt.Errorf("max frames must not be negative, got %d", cfg.MaxFrames)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return nil
}

// IsCanceled reports whether err came from an interrupted run.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
