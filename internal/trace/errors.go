package trace

import "errors"

var (
	// ErrEmptyHistory indicates an algorithm finished without recording a frame.
	ErrEmptyHistory = errors.New("trace: algorithm recorded no frames")

	// ErrNilAlgorithm indicates Run was called without an algorithm.
	ErrNilAlgorithm = errors.New("trace: nil algorithm")

	// ErrCanceled indicates the run was interrupted by its context.
	ErrCanceled = errors.New("trace: run canceled by context")
)

// RunError wraps an algorithm failure with the point it was reached.
type RunError struct {
	Algorithm string
	Frames    int
	Wrapped   error
}

func (e *RunError) Error() string {
	return e.Algorithm + ": " + e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
