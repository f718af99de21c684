package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoscope/internal/trace"
)

const (
	DefaultAlgorithm = "bfs"
	DefaultInterval  = 500 * time.Millisecond
	DefaultMaxFrames = trace.DefaultMaxFrames
)

var (
	ErrNoAlgorithm = errors.New("config: algorithm is required")
	ErrInvalid     = errors.New("config: invalid value")
)

// Config describes one run: which algorithm, its textual input and how the
// resulting history is played back.
type Config struct {
	Algorithm string         `yaml:"algorithm"`
	Input     InputConfig    `yaml:"input"`
	Playback  PlaybackConfig `yaml:"playback"`
	MaxFrames int            `yaml:"max_frames"`
}

// InputConfig holds raw input text; each algorithm parses the fields it
// needs and ignores the rest.
type InputConfig struct {
	Array    string `yaml:"array,omitempty"`
	Edges    string `yaml:"edges,omitempty"`
	Ops      string `yaml:"ops,omitempty"`
	Costs    string `yaml:"costs,omitempty"`
	Start    string `yaml:"start,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Sink     string `yaml:"sink,omitempty"`
	Target   int    `yaml:"target,omitempty"`
	K        int    `yaml:"k,omitempty"`
	Capacity int    `yaml:"capacity,omitempty"`
	Buckets  int    `yaml:"buckets,omitempty"`
	Directed bool   `yaml:"directed,omitempty"`
}

type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"`
	Loop     bool          `yaml:"loop"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Playback:  PlaybackConfig{Interval: DefaultInterval},
		MaxFrames: DefaultMaxFrames,
	}
}

// Load reads a YAML run config on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML run config on top of cfg. Keys missing from the file
// keep their current values, so a preset can serve as the base.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Algorithm == "" {
		return ErrNoAlgorithm
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: max_frames %d", ErrInvalid, c.MaxFrames)
	}
	if c.Playback.Interval < 0 {
		return fmt.Errorf("%w: playback interval %s", ErrInvalid, c.Playback.Interval)
	}
	return nil
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// TraceConfig converts the run limits for trace.Runner.
func (c *Config) TraceConfig() trace.Config {
	return trace.Config{MaxFrames: c.MaxFrames}
}
