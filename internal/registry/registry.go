// Package registry is the catalog of visualizable algorithms. Each entry
// knows how to bind textual input to an instrumented trace.Algorithm.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/trace"
)

var (
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")
	ErrDuplicate        = errors.New("registry: algorithm already registered")
	ErrMissingInput     = errors.New("registry: missing input")
)

// Builder parses the input fields an algorithm needs and returns the bound
// algorithm. Parsing errors surface here, before anything runs.
type Builder func(in config.InputConfig) (trace.Algorithm, error)

// Entry describes one algorithm. Inputs names the config.InputConfig fields
// its builder reads; Code is the pseudo-code that frame lines index into.
type Entry struct {
	Name     string
	Category string
	Summary  string
	Inputs   []string
	Code     []string
	Build    Builder
}

type Registry struct {
	entries map[string]Entry
}

func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// NewDefault returns a registry holding every built-in algorithm.
func NewDefault() *Registry {
	r := New()
	for _, e := range builtin() {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(e Entry) error {
	if _, ok := r.entries[e.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Build looks up name and binds it to in.
func (r *Registry) Build(name string, in config.InputConfig) (trace.Algorithm, Entry, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, Entry{}, err
	}
	alg, err := e.Build(in)
	if err != nil {
		return nil, e, fmt.Errorf("%s: %w", name, err)
	}
	return alg, e, nil
}

// List returns all entries ordered by category, then name.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
