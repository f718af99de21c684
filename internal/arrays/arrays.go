// Package arrays implements instrumented single-pass array techniques:
// sliding windows, two pointers, prefix sums and monotonic stacks.
package arrays

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/trace"
)

var (
	ErrEmptyArray = errors.New("arrays: empty array")
	ErrNotBinary  = errors.New("arrays: values must be 0 or 1")
	ErrNegative   = errors.New("arrays: value must not be negative")
)

// pointer is a named index into the array, such as left or right.
type pointer struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// scanState is shared by every algorithm in this package. Pointers and Vars
// keep their insertion order so Fields is stable across frames.
type scanState struct {
	Array    []int         `json:"array"`
	Pointers []pointer     `json:"pointers"`
	Vars     []trace.Field `json:"vars"`
	Stack    []int         `json:"stack,omitempty"`
	Window   int           `json:"window"`
}

func (s *scanState) Clone() trace.State {
	c := *s
	c.Array = slices.Clone(s.Array)
	c.Pointers = slices.Clone(s.Pointers)
	c.Vars = slices.Clone(s.Vars)
	c.Stack = slices.Clone(s.Stack)
	return &c
}

func (s *scanState) Fields() []trace.Field {
	fields := []trace.Field{{Name: "array", Value: joinInts(s.Array)}}
	for _, p := range s.Pointers {
		fields = append(fields, trace.Field{Name: p.Name, Value: strconv.Itoa(p.Index)})
	}
	if s.Stack != nil {
		fields = append(fields, trace.Field{Name: "stack", Value: joinInts(s.Stack)})
	}
	return append(fields, s.Vars...)
}

func (s *scanState) Series() []float64 {
	out := make([]float64, len(s.Array))
	for i, v := range s.Array {
		out[i] = float64(v)
	}
	return out
}

func (s *scanState) Size() int { return s.Window }

// at sets the named pointer, adding it on first use.
func (s *scanState) at(name string, index int) *scanState {
	for i := range s.Pointers {
		if s.Pointers[i].Name == name {
			s.Pointers[i].Index = index
			return s
		}
	}
	s.Pointers = append(s.Pointers, pointer{Name: name, Index: index})
	return s
}

// set updates the named variable, adding it on first use.
func (s *scanState) set(name string, value int) *scanState {
	return s.setString(name, strconv.Itoa(value))
}

func (s *scanState) setString(name, value string) *scanState {
	for i := range s.Vars {
		if s.Vars[i].Name == name {
			s.Vars[i].Value = value
			return s
		}
	}
	s.Vars = append(s.Vars, trace.Field{Name: name, Value: value})
	return s
}

func newScan(a []int) *scanState {
	return &scanState{Array: append([]int(nil), a...)}
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func checkNonNegative(a []int) error {
	for _, v := range a {
		if v < 0 {
			return ErrNegative
		}
	}
	return nil
}
