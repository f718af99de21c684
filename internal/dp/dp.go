// Package dp implements instrumented bottom-up dynamic programming.
package dp

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/trace"
)

var (
	ErrEmptyArray = errors.New("dp: empty array")
	ErrNoCoins    = errors.New("dp: no coin denominations")
	ErrNegative   = errors.New("dp: value must be positive")
	ErrTooLarge   = errors.New("dp: amount too large")
)

// tableState is a one-dimensional DP table plus the cells being read and
// written. Unset table cells hold unset and print as "-".
type tableState struct {
	Input  []int         `json:"input"`
	Table  []int         `json:"table"`
	Cell   int           `json:"cell"`
	Source int           `json:"source"`
	Extra  []trace.Field `json:"extra"`
}

const unset = math.MinInt

func (s *tableState) Clone() trace.State {
	c := *s
	c.Input = slices.Clone(s.Input)
	c.Table = slices.Clone(s.Table)
	c.Extra = slices.Clone(s.Extra)
	return &c
}

func (s *tableState) Fields() []trace.Field {
	fields := []trace.Field{
		{Name: "input", Value: joinInts(s.Input)},
		{Name: "table", Value: joinCells(s.Table)},
		{Name: "cell", Value: index(s.Cell)},
		{Name: "source", Value: index(s.Source)},
	}
	return append(fields, s.Extra...)
}

// Series plots the table with unset cells at zero.
func (s *tableState) Series() []float64 {
	out := make([]float64, len(s.Table))
	for i, v := range s.Table {
		if v != unset {
			out[i] = float64(v)
		}
	}
	return out
}

// Size is the number of cells filled so far.
func (s *tableState) Size() int {
	n := 0
	for _, v := range s.Table {
		if v != unset {
			n++
		}
	}
	return n
}

func (s *tableState) at(cell, source int) *tableState {
	s.Cell, s.Source = cell, source
	return s
}

func (s *tableState) set(name, value string) *tableState {
	for i := range s.Extra {
		if s.Extra[i].Name == name {
			s.Extra[i].Value = value
			return s
		}
	}
	s.Extra = append(s.Extra, trace.Field{Name: name, Value: value})
	return s
}

func index(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}

func joinCells(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		if v == unset {
			parts[i] = "-"
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
