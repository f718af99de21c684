package trace

import (
	"context"
	"time"
)

// Field is one labelled value of a state, already formatted for display.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// State is the algorithm-specific part of a snapshot.
// Clone must return a deep copy that shares no mutable memory with the
// receiver.
type State interface {
	Clone() State
	Fields() []Field
}

// Series is implemented by states that have a natural numeric view
// (the array being sorted, the heights of a container problem).
type Series interface {
	Series() []float64
}

// Sizer is implemented by states whose primary working structure has a size
// (queue, stack, cache, window).
type Sizer interface {
	Size() int
}

// Frame is one recorded snapshot.
type Frame struct {
	Index       int    `json:"index"`
	Line        int    `json:"line"`
	Explanation string `json:"explanation"`
	State       State  `json:"state"`
}

// Step returns the serializable view of the frame.
func (f Frame) Step() Step {
	s := Step{
		Index:       f.Index,
		Line:        f.Line,
		Explanation: f.Explanation,
	}
	if f.State == nil {
		return s
	}
	s.Fields = f.State.Fields()
	if sr, ok := f.State.(Series); ok {
		s.Series = sr.Series()
	}
	if sz, ok := f.State.(Sizer); ok {
		s.Size = sz.Size()
	}
	return s
}

// Step is the algorithm-agnostic form of a frame used by the player,
// storage and exports.
type Step struct {
	Index       int       `json:"index"`
	Line        int       `json:"line"`
	Explanation string    `json:"explanation"`
	Fields      []Field   `json:"fields"`
	Series      []float64 `json:"series,omitempty"`
	Size        int       `json:"size"`
}

// Field returns the value of the named field and whether it exists.
func (s Step) Field(name string) (string, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// History is the ordered list of frames produced by one run.
type History []Frame

// Len returns the number of frames.
func (h History) Len() int { return len(h) }

// At returns the frame at index i.
func (h History) At(i int) (Frame, bool) {
	if i < 0 || i >= len(h) {
		return Frame{}, false
	}
	return h[i], true
}

// Last returns the final frame.
func (h History) Last() (Frame, bool) { return h.At(len(h) - 1) }

// Steps converts every frame to its serializable view.
func (h History) Steps() []Step {
	steps := make([]Step, len(h))
	for i, f := range h {
		steps[i] = f.Step()
	}
	return steps
}

// Algorithm is an instrumented procedure already bound to its input.
type Algorithm interface {
	Name() string
	Run(rec *Recorder) (any, error)
}

// AlgorithmFunc adapts a function to the Algorithm interface.
type AlgorithmFunc struct {
	ID string
	Fn func(rec *Recorder) (any, error)
}

func (a AlgorithmFunc) Name() string                   { return a.ID }
func (a AlgorithmFunc) Run(rec *Recorder) (any, error) { return a.Fn(rec) }

type Observer interface {
	OnFrame(f Frame)
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Config struct {
	// MaxFrames caps the recorded history; 0 means DefaultMaxFrames.
	MaxFrames int
	Timeout   time.Duration
}

const DefaultMaxFrames = 10000

func DefaultConfig() Config {
	return Config{MaxFrames: DefaultMaxFrames}
}

type Result struct {
	Algorithm string
	Output    any
	History   History
	Metrics   map[string]float64
	Truncated bool
	Elapsed   time.Duration
}

// Context returns a context honoring cfg.Timeout.
func (cfg Config) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(parent, cfg.Timeout)
	}
	return context.WithCancel(parent)
}
