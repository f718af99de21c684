package trace

import "fmt"

// Recorder accumulates frames in temporal order.
// The zero value is ready to use; a nil *Recorder discards everything.
type Recorder struct {
	frames    History
	limit     int
	truncated bool
}

type RecorderOption func(*Recorder)

// WithLimit caps the number of frames kept. Frames past the limit are
// dropped and Truncated reports true.
func WithLimit(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.limit = n
		}
	}
}

func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{frames: make(History, 0, 64)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether the next frame will be recorded. Cores use it to
// skip building expensive states; a false answer at the limit marks the
// history truncated because the caller drops that frame.
func (r *Recorder) Enabled() bool {
	if r == nil {
		return false
	}
	if r.limit > 0 && len(r.frames) >= r.limit {
		r.truncated = true
		return false
	}
	return true
}

// Record appends a snapshot of s. The state is cloned before it is stored.
func (r *Recorder) Record(line int, explanation string, s State) {
	if r == nil {
		return
	}
	if r.limit > 0 && len(r.frames) >= r.limit {
		r.truncated = true
		return
	}
	var snap State
	if s != nil {
		snap = s.Clone()
	}
	r.frames = append(r.frames, Frame{
		Index:       len(r.frames),
		Line:        line,
		Explanation: explanation,
		State:       snap,
	})
}

// Recordf is Record with a formatted explanation.
func (r *Recorder) Recordf(line int, s State, format string, args ...any) {
	if !r.Enabled() {
		return
	}
	r.Record(line, fmt.Sprintf(format, args...), s)
}

// History returns the frames recorded so far. The slice header is copied;
// frames themselves are immutable.
func (r *Recorder) History() History {
	if r == nil {
		return nil
	}
	h := make(History, len(r.frames))
	copy(h, r.frames)
	return h
}

func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.frames)
}

func (r *Recorder) Truncated() bool { return r != nil && r.truncated }

// Reset discards every frame.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.frames = r.frames[:0]
	r.truncated = false
}
