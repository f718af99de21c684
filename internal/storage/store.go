// Package storage persists recorded runs so they can be replayed, listed and
// exported later. Each run is a directory named by its ID holding
// metadata.json, steps.json and steps.csv.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/trace"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.json"
	csvFile      = "steps.csv"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrAmbiguousID = errors.New("storage: run id prefix is ambiguous")
)

type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Input     config.InputConfig `json:"input"`
	Output    string             `json:"output"`
	Frames    int                `json:"frames"`
	Truncated bool               `json:"truncated"`
	Elapsed   time.Duration      `json:"elapsed"`
	Metrics   map[string]float64 `json:"metrics"`
	Code      []string           `json:"code"`
}

// Save writes a run and returns its ID.
func (s *Store) Save(cfg *config.Config, code []string, result *trace.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: cfg.Algorithm,
		Timestamp: time.Now(),
		Input:     cfg.Input,
		Output:    fmt.Sprint(result.Output),
		Frames:    result.History.Len(),
		Truncated: result.Truncated,
		Elapsed:   result.Elapsed,
		Metrics:   result.Metrics,
		Code:      code,
	}
	steps := result.History.Steps()
	if err := writeRun(runDir, &meta, steps); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	s.logger.Debug("run saved", "id", runID, "algorithm", cfg.Algorithm, "frames", len(steps))
	return runID, nil
}

// writeRun writes metadata.json last; List skips directories without it.
func writeRun(runDir string, meta *RunMetadata, steps []trace.Step) error {
	if err := writeJSON(filepath.Join(runDir, stepsFile), steps); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(runDir, csvFile))
	if err != nil {
		return err
	}
	if err := ExportCSV(f, steps); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return writeJSON(filepath.Join(runDir, metadataFile), meta)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns saved runs, newest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.readMetadata(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run directory", "dir", entry.Name(), "error", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Resolve expands a unique prefix of a run ID to the full ID.
func (s *Store) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrRunNotFound
	}
	if _, err := os.Stat(filepath.Join(s.baseDir, prefix, metadataFile)); err == nil {
		return prefix, nil
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRunNotFound, prefix)
		}
		return "", err
	}
	var match string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
		}
		match = entry.Name()
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, prefix)
	}
	return match, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}
	return s.readMetadata(id)
}

func (s *Store) readMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]trace.Step, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, stepsFile))
	if err != nil {
		return nil, err
	}

	var steps []trace.Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("decode steps of %s: %w", id, err)
	}
	s.logger.Debug("run loaded", "id", id, "frames", len(steps))
	return steps, nil
}
