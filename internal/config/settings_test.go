package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/config"
)

func TestLoadSettings_EmptyFile_UsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, s.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, s.LogFormat)
	assert.Equal(t, config.DefaultMaxFrames, s.MaxFrames)
	assert.Equal(t, config.DefaultInterval, s.Playback.Interval)
	assert.NotEmpty(t, s.DataDir)
	assert.Empty(t, s.LogFile)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `log_level: debug
playback:
  interval: 100ms
  loop: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ALGOSCOPE_DATA_DIR", "/tmp/runs")
	t.Setenv("ALGOSCOPE_LOG_FORMAT", "json")
	t.Setenv("ALGOSCOPE_LOG_FILE", "/tmp/algoscope.log")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "/tmp/runs", s.DataDir)
	assert.Equal(t, "/tmp/algoscope.log", s.LogFile)
	assert.Equal(t, 100*time.Millisecond, s.Playback.Interval)
	assert.True(t, s.Playback.Loop)
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: xml\n"), 0o600))

	_, err := config.LoadSettings(path)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestSettingsApply(t *testing.T) {
	s := &config.Settings{MaxFrames: 50, Playback: config.PlaybackSettings{Interval: time.Second, Loop: true}}

	cfg := config.DefaultConfig()
	s.Apply(cfg)
	assert.Equal(t, time.Second, cfg.Playback.Interval)
	assert.True(t, cfg.Playback.Loop)
	assert.Equal(t, 50, cfg.MaxFrames)

	cfg = config.DefaultConfig()
	cfg.Playback.Interval = 200 * time.Millisecond
	cfg.MaxFrames = 10
	s.Apply(cfg)
	assert.Equal(t, 200*time.Millisecond, cfg.Playback.Interval)
	assert.Equal(t, 10, cfg.MaxFrames)
}
