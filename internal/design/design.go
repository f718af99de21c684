// Package design implements instrumented data structure designs built from
// stacks: a stack with constant-time minimum and a queue made of two stacks.
package design

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

var (
	ErrEmpty     = errors.New("design: structure is empty")
	ErrUnknownOp = errors.New("design: unknown operation")
)

// stacksState shows named stacks bottom to top.
type stacksState struct {
	Op     string   `json:"op"`
	Names  []string `json:"names"`
	Stacks [][]int  `json:"stacks"`
	Result string   `json:"result"`
}

func (s *stacksState) Clone() trace.State {
	c := *s
	c.Names = slices.Clone(s.Names)
	c.Stacks = make([][]int, len(s.Stacks))
	for i, st := range s.Stacks {
		c.Stacks[i] = slices.Clone(st)
	}
	return &c
}

func (s *stacksState) Fields() []trace.Field {
	fields := []trace.Field{{Name: "op", Value: orDash(s.Op)}}
	for i, name := range s.Names {
		fields = append(fields, trace.Field{Name: name, Value: joinInts(s.Stacks[i])})
	}
	return append(fields, trace.Field{Name: "result", Value: orDash(s.Result)})
}

// Size is the element count of the first stack.
func (s *stacksState) Size() int {
	if len(s.Stacks) == 0 {
		return 0
	}
	return len(s.Stacks[0])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// checkOps validates every operation name and arity before anything runs so
// a bad script produces no partial history.
func checkOps(ops []parse.Op, arity map[string]int) error {
	for _, op := range ops {
		n, ok := arity[op.Name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownOp, op)
		}
		if err := parse.Arity(op, n); err != nil {
			return err
		}
	}
	return nil
}
