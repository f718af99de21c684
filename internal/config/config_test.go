package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bfs" {
		t.Errorf("expected algorithm bfs, got %s", cfg.Algorithm)
	}
	if cfg.Playback.Interval <= 0 {
		t.Error("interval should be positive")
	}
	if cfg.MaxFrames <= 0 {
		t.Error("max frames should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("edmonds-karp", "simple")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Input.Source != "S" || cfg.Input.Sink != "T" {
		t.Errorf("expected S->T, got %s->%s", cfg.Input.Source, cfg.Input.Sink)
	}
	if cfg.MaxFrames != DefaultMaxFrames {
		t.Errorf("expected default max frames, got %d", cfg.MaxFrames)
	}

	cfg.Input.Source = "X"
	if GetPreset("edmonds-karp", "simple").Input.Source != "S" {
		t.Error("preset was modified through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bfs", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "default") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestEveryPresetNamesItsAlgorithm(t *testing.T) {
	for algo, byName := range Presets {
		if _, ok := byName["default"]; !ok {
			t.Errorf("%s: missing default preset", algo)
		}
		for name, p := range byName {
			if p.Algorithm != algo {
				t.Errorf("%s/%s: algorithm is %q", algo, name, p.Algorithm)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"clrs", "default", "simple"}, ListPresets("dinic"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `input:
  start: C
playback:
  interval: 250ms
  loop: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := GetPreset("bfs", "default")
	require.NoError(t, LoadInto(path, cfg))

	assert.Equal(t, "bfs", cfg.Algorithm)
	assert.Equal(t, "C", cfg.Input.Start)
	assert.Equal(t, "A-B, A-C, B-D, C-D, D-E", cfg.Input.Edges)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Interval)
	assert.True(t, cfg.Playback.Loop)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := GetPreset("lfu", "leetcode")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = ""
	assert.ErrorIs(t, cfg.Validate(), ErrNoAlgorithm)

	cfg = DefaultConfig()
	cfg.MaxFrames = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
