package design

import (
	"fmt"
	"strconv"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

// TwoStackQueueCode is the pseudo-code for TwoStackQueue.
var TwoStackQueueCode = []string{
	"push(x): in.push(x)",
	"move(): if out empty:",
	"    while in not empty: out.push(in.pop())",
	"pop(): move(); return out.pop()",
	"peek(): move(); return out.top",
	"empty(): return in empty and out empty",
}

// TwoStackQueue is a FIFO queue built from two LIFO stacks. Elements move
// from the in stack to the out stack only when out is empty, so each element
// is moved at most once.
type TwoStackQueue struct {
	in  []int
	out []int
	rec *trace.Recorder
	op  string
}

func NewTwoStackQueue(rec *trace.Recorder) *TwoStackQueue {
	q := &TwoStackQueue{rec: rec}
	q.record(0, "", "empty queue")
	return q
}

func (q *TwoStackQueue) Len() int { return len(q.in) + len(q.out) }

func (q *TwoStackQueue) Push(x int) {
	q.op = fmt.Sprintf("push(%d)", x)
	q.in = append(q.in, x)
	q.record(1, "", "push %d onto in", x)
}

func (q *TwoStackQueue) move() {
	if len(q.out) > 0 {
		q.record(2, "", "out is not empty, no transfer")
		return
	}
	for len(q.in) > 0 {
		n := len(q.in)
		x := q.in[n-1]
		q.in = q.in[:n-1]
		q.out = append(q.out, x)
		q.record(3, "", "move %d from in to out", x)
	}
}

func (q *TwoStackQueue) Pop() (int, error) {
	q.op = "pop()"
	if q.Len() == 0 {
		return 0, fmt.Errorf("%w: pop", ErrEmpty)
	}
	q.move()
	n := len(q.out)
	x := q.out[n-1]
	q.out = q.out[:n-1]
	q.record(4, strconv.Itoa(x), "pop %d from out", x)
	return x, nil
}

func (q *TwoStackQueue) Peek() (int, error) {
	q.op = "peek()"
	if q.Len() == 0 {
		return 0, fmt.Errorf("%w: peek", ErrEmpty)
	}
	q.move()
	x := q.out[len(q.out)-1]
	q.record(5, strconv.Itoa(x), "front is %d", x)
	return x, nil
}

func (q *TwoStackQueue) Empty() bool {
	q.op = "empty()"
	e := q.Len() == 0
	q.record(6, strconv.FormatBool(e), "empty = %t", e)
	return e
}

func (q *TwoStackQueue) record(line int, result, format string, args ...any) {
	q.rec.Recordf(line, &stacksState{
		Op:     q.op,
		Names:  []string{"in", "out"},
		Stacks: [][]int{q.in, q.out},
		Result: result,
	}, format, args...)
}

// RunTwoStackQueue executes push(x), pop(), peek() and empty() operations.
func RunTwoStackQueue(ops []parse.Op, rec *trace.Recorder) ([]string, error) {
	if err := checkOps(ops, map[string]int{"push": 1, "pop": 0, "peek": 0, "empty": 0}); err != nil {
		return nil, err
	}
	q := NewTwoStackQueue(rec)
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op.Name {
		case "push":
			q.Push(op.Args[0])
			out = append(out, "null")
		case "pop":
			v, err := q.Pop()
			if err != nil {
				return out, err
			}
			out = append(out, strconv.Itoa(v))
		case "peek":
			v, err := q.Peek()
			if err != nil {
				return out, err
			}
			out = append(out, strconv.Itoa(v))
		case "empty":
			out = append(out, strconv.FormatBool(q.Empty()))
		}
	}
	return out, nil
}
