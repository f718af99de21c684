package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/config"
)

func newRunCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	configFile, preset, limit = "", "", 0
	settings = &config.Settings{
		MaxFrames: config.DefaultMaxFrames,
		Playback:  config.PlaybackSettings{Interval: config.DefaultInterval},
	}

	cmd := &cobra.Command{Use: "run"}
	addInputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func TestBuildConfigDefaultPreset(t *testing.T) {
	cmd := newRunCmd(t)
	cfg, err := buildConfig(cmd, []string{"lfu"})
	require.NoError(t, err)

	want := config.GetPreset("lfu", "default")
	assert.Equal(t, "lfu", cfg.Algorithm)
	assert.Equal(t, want.Input, cfg.Input)
}

func TestBuildConfigFlagsOverridePreset(t *testing.T) {
	cmd := newRunCmd(t, "--preset", "default", "--capacity", "5", "--limit", "40")
	cfg, err := buildConfig(cmd, []string{"lfu"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Input.Capacity)
	assert.Equal(t, 40, cfg.MaxFrames)
	assert.Equal(t, config.GetPreset("lfu", "default").Input.Ops, cfg.Input.Ops)
}

func TestBuildConfigFileOverridesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  array: \"3,1,2\"\n"), 0o644))

	cmd := newRunCmd(t, "--preset", "reversed", "--config", path)
	cfg, err := buildConfig(cmd, []string{"merge-sort"})
	require.NoError(t, err)
	assert.Equal(t, "3,1,2", cfg.Input.Array)
	assert.Equal(t, "merge-sort", cfg.Algorithm)
}

func TestBuildConfigInputWithoutPreset(t *testing.T) {
	cmd := newRunCmd(t, "--array", "4,2")
	cfg, err := buildConfig(cmd, []string{"quick-sort"})
	require.NoError(t, err)
	assert.Equal(t, config.InputConfig{Array: "4,2"}, cfg.Input)
}

func TestBuildConfigUnknownPreset(t *testing.T) {
	cmd := newRunCmd(t, "--preset", "nope")
	_, err := buildConfig(cmd, []string{"bfs"})
	assert.ErrorContains(t, err, "unknown preset")
}

func TestSavedPlaybackUsesSettings(t *testing.T) {
	settings = &config.Settings{
		Playback: config.PlaybackSettings{Interval: 80 * time.Millisecond, Loop: true},
	}
	cmd := &cobra.Command{Use: "play"}
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "")
	cmd.Flags().BoolVar(&loop, "loop", false, "")

	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, config.PlaybackConfig{Interval: 80 * time.Millisecond, Loop: true}, savedPlayback(cmd))

	require.NoError(t, cmd.ParseFlags([]string{"--interval", "1s", "--loop=false"}))
	assert.Equal(t, config.PlaybackConfig{Interval: time.Second}, savedPlayback(cmd))
}
