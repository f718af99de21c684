package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	settingsName = ".algoscope"
	settingsType = "yaml"
	envPrefix    = "ALGOSCOPE"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Settings are global, user-level options shared by every command. They come
// from an optional settings file, ALGOSCOPE_* environment variables and
// built-in defaults, in that order of precedence after flags.
type Settings struct {
	DataDir   string           `mapstructure:"data_dir"`
	LogLevel  string           `mapstructure:"log_level"`
	LogFormat string           `mapstructure:"log_format"`
	LogFile   string           `mapstructure:"log_file"`
	MaxFrames int              `mapstructure:"max_frames"`
	Playback  PlaybackSettings `mapstructure:"playback"`
}

type PlaybackSettings struct {
	Interval time.Duration `mapstructure:"interval"`
	Loop     bool          `mapstructure:"loop"`
}

// DefaultDataDir is where runs are stored unless configured otherwise.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".algoscope"
	}
	return filepath.Join(home, ".algoscope")
}

// LoadSettings reads settings from path, or from .algoscope.yaml in the
// working directory or home directory when path is empty. A missing file is
// not an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(settingsType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(settingsName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}
	return &s, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("log_file", "")
	v.SetDefault("max_frames", DefaultMaxFrames)
	v.SetDefault("playback.interval", DefaultInterval)
	v.SetDefault("playback.loop", false)
}

func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, s.LogFormat)
	}
	if s.MaxFrames < 0 {
		return fmt.Errorf("%w: max_frames %d", ErrInvalid, s.MaxFrames)
	}
	if s.Playback.Interval <= 0 {
		return fmt.Errorf("%w: playback.interval %s", ErrInvalid, s.Playback.Interval)
	}
	return nil
}

// Apply fills the playback and frame limit of cfg from the settings where
// cfg leaves them unset.
func (s *Settings) Apply(cfg *Config) {
	if cfg.Playback.Interval == 0 || cfg.Playback.Interval == DefaultInterval {
		cfg.Playback.Interval = s.Playback.Interval
	}
	if s.Playback.Loop {
		cfg.Playback.Loop = true
	}
	if cfg.MaxFrames == 0 || cfg.MaxFrames == DefaultMaxFrames {
		cfg.MaxFrames = s.MaxFrames
	}
}
