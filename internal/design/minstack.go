package design

import (
	"fmt"
	"strconv"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

// MinStackCode is the pseudo-code for MinStack.
var MinStackCode = []string{
	"push(x): stack.push(x)",
	"    mins.push(x if mins empty else min(x, mins.top))",
	"pop(): stack.pop(); mins.pop()",
	"top(): return stack.top",
	"getMin(): return mins.top",
}

// MinStack is a stack that reports its minimum in constant time. A second
// stack holds the running minimum for every depth.
type MinStack struct {
	values []int
	mins   []int
	rec    *trace.Recorder
	op     string
}

func NewMinStack(rec *trace.Recorder) *MinStack {
	s := &MinStack{rec: rec}
	s.record(0, "", "empty stack")
	return s
}

func (s *MinStack) Len() int { return len(s.values) }

func (s *MinStack) Push(x int) {
	s.op = fmt.Sprintf("push(%d)", x)
	s.values = append(s.values, x)
	s.record(1, "", "push %d", x)
	m := x
	if n := len(s.mins); n > 0 && s.mins[n-1] < x {
		m = s.mins[n-1]
	}
	s.mins = append(s.mins, m)
	s.record(2, "", "minimum at depth %d is %d", len(s.mins), m)
}

func (s *MinStack) Pop() (int, error) {
	s.op = "pop()"
	n := len(s.values)
	if n == 0 {
		return 0, fmt.Errorf("%w: pop", ErrEmpty)
	}
	x := s.values[n-1]
	s.values = s.values[:n-1]
	s.mins = s.mins[:n-1]
	s.record(3, strconv.Itoa(x), "pop %d", x)
	return x, nil
}

func (s *MinStack) Top() (int, error) {
	s.op = "top()"
	n := len(s.values)
	if n == 0 {
		return 0, fmt.Errorf("%w: top", ErrEmpty)
	}
	s.record(4, strconv.Itoa(s.values[n-1]), "top is %d", s.values[n-1])
	return s.values[n-1], nil
}

func (s *MinStack) Min() (int, error) {
	s.op = "getMin()"
	n := len(s.mins)
	if n == 0 {
		return 0, fmt.Errorf("%w: getMin", ErrEmpty)
	}
	s.record(5, strconv.Itoa(s.mins[n-1]), "minimum is %d", s.mins[n-1])
	return s.mins[n-1], nil
}

func (s *MinStack) record(line int, result, format string, args ...any) {
	s.rec.Recordf(line, &stacksState{
		Op:     s.op,
		Names:  []string{"stack", "mins"},
		Stacks: [][]int{s.values, s.mins},
		Result: result,
	}, format, args...)
}

// RunMinStack executes push(x), pop(), top() and getMin() operations. Pushes
// output "null"; the others output the returned value.
func RunMinStack(ops []parse.Op, rec *trace.Recorder) ([]string, error) {
	if err := checkOps(ops, map[string]int{"push": 1, "pop": 0, "top": 0, "getmin": 0}); err != nil {
		return nil, err
	}
	s := NewMinStack(rec)
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		var (
			v   int
			err error
		)
		switch op.Name {
		case "push":
			s.Push(op.Args[0])
			out = append(out, "null")
			continue
		case "pop":
			v, err = s.Pop()
		case "top":
			v, err = s.Top()
		case "getmin":
			v, err = s.Min()
		}
		if err != nil {
			return out, err
		}
		out = append(out, strconv.Itoa(v))
	}
	return out, nil
}
