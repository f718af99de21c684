// Package session binds a run config to a registered algorithm and runs it.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/metrics"
	"github.com/san-kum/algoscope/internal/registry"
	"github.com/san-kum/algoscope/internal/trace"
)

type Session struct {
	cfg    *config.Config
	entry  registry.Entry
	alg    trace.Algorithm
	runner *trace.Runner
	logger *slog.Logger
}

// New parses cfg's input for its algorithm. Input errors are reported here,
// before anything runs.
func New(reg *registry.Registry, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	alg, entry, err := reg.Build(cfg.Algorithm, cfg.Input)
	if err != nil {
		return nil, err
	}

	runner := trace.NewRunner(logger)
	for _, m := range metrics.Default(len(entry.Code)) {
		runner.AddMetric(m)
	}
	return &Session{cfg: cfg, entry: entry, alg: alg, runner: runner, logger: logger}, nil
}

func (s *Session) Run(ctx context.Context) (*trace.Result, error) {
	s.logger.Debug("run start", "algorithm", s.entry.Name, "max_frames", s.cfg.MaxFrames)
	res, err := s.runner.Run(ctx, s.alg, s.cfg.TraceConfig())
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", s.entry.Name, err)
	}
	return res, nil
}

func (s *Session) Entry() registry.Entry { return s.entry }

func (s *Session) Config() *config.Config { return s.cfg }

// Runner returns the underlying runner for adding observers.
func (s *Session) Runner() *trace.Runner { return s.runner }
