// Package sorting implements instrumented comparison sorts.
package sorting

import (
	"errors"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/trace"
)

// ErrEmptyArray is returned for an empty input.
var ErrEmptyArray = errors.New("sorting: empty array")

// arrayState is the snapshot of an in-progress sort. Lo/Hi bound the active
// range; Marks are the indices being compared or written.
type arrayState struct {
	Array []int `json:"array"`
	Lo    int   `json:"lo"`
	Hi    int   `json:"hi"`
	Pivot int   `json:"pivot"`
	Marks []int `json:"marks"`
}

func (s *arrayState) Clone() trace.State {
	c := *s
	c.Array = append([]int(nil), s.Array...)
	c.Marks = append([]int(nil), s.Marks...)
	return &c
}

func (s *arrayState) Fields() []trace.Field {
	fields := []trace.Field{
		{Name: "array", Value: joinInts(s.Array)},
		{Name: "range", Value: "[" + strconv.Itoa(s.Lo) + ".." + strconv.Itoa(s.Hi) + "]"},
	}
	if len(s.Marks) > 0 {
		fields = append(fields, trace.Field{Name: "marks", Value: joinInts(s.Marks)})
	}
	if s.Pivot >= 0 {
		fields = append(fields, trace.Field{Name: "pivot", Value: strconv.Itoa(s.Pivot)})
	}
	return fields
}

func (s *arrayState) Series() []float64 {
	out := make([]float64, len(s.Array))
	for i, v := range s.Array {
		out[i] = float64(v)
	}
	return out
}

func (s *arrayState) Size() int { return s.Hi - s.Lo + 1 }

func (s *arrayState) mark(lo, hi int, marks ...int) *arrayState {
	s.Lo, s.Hi = lo, hi
	s.Marks = marks
	return s
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
