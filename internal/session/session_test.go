package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/logging"
	"github.com/san-kum/algoscope/internal/registry"
	"github.com/san-kum/algoscope/internal/session"
	"github.com/san-kum/algoscope/internal/trace"
)

func TestSessionRun(t *testing.T) {
	t.Parallel()

	cfg := config.GetPreset("dinic", "simple")
	s, err := session.New(registry.NewDefault(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "flow", s.Entry().Category)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5 (cut: S)", res.Output)
	assert.Equal(t, float64(res.History.Len()), res.Metrics["frames"])
	assert.Greater(t, res.Metrics["line_coverage"], 0.0)
}

func TestSessionFrameLimit(t *testing.T) {
	t.Parallel()

	cfg := config.GetPreset("merge-sort", "reversed")
	cfg.MaxFrames = 5
	s, err := session.New(registry.NewDefault(), cfg, logging.Discard())
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 5, res.History.Len())
}

func TestSessionCanceled(t *testing.T) {
	t.Parallel()

	s, err := session.New(registry.NewDefault(), config.GetPreset("bfs", "default"), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, trace.ErrCanceled)
}

func TestSessionInputErrors(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Algorithm = "nope"
	_, err := session.New(registry.NewDefault(), cfg, nil)
	require.ErrorIs(t, err, registry.ErrUnknownAlgorithm)

	cfg = config.DefaultConfig()
	cfg.Algorithm = ""
	_, err = session.New(registry.NewDefault(), cfg, nil)
	require.ErrorIs(t, err, config.ErrNoAlgorithm)
}

func TestBench(t *testing.T) {
	t.Parallel()

	rows, err := session.Bench(context.Background(), registry.NewDefault(), "edmonds-karp", logging.Discard())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byPreset := map[string]session.BenchRow{}
	for _, r := range rows {
		byPreset[r.Preset] = r
		assert.Positive(t, r.Frames)
	}
	assert.Equal(t, "23 (cut: s v1 v2 v4)", byPreset["clrs"].Output)
	assert.Equal(t, "5 (cut: S)", byPreset["simple"].Output)
}
