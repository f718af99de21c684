// Package greedy implements instrumented greedy scheduling.
package greedy

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/algoscope/internal/trace"
)

var (
	ErrNoPeople  = errors.New("greedy: no costs given")
	ErrOddPeople = errors.New("greedy: number of people must be even")
)

// TwoCityCode is the pseudo-code for TwoCity.
var TwoCityCode = []string{
	"order people by costA - costB ascending",
	"for i, p in order:",
	"    if i < n/2: send p to A, total += p.costA",
	"    else: send p to B, total += p.costB",
	"return total",
}

// Schedule is the result of TwoCity. Assignment[i] is 'A' or 'B' for the
// i-th person of the input.
type Schedule struct {
	Total      int
	Assignment []byte
}

func (s Schedule) String() string {
	return fmt.Sprintf("%d %s", s.Total, s.Assignment)
}

// TwoCity sends exactly half of the people to each city at minimum total
// cost. costs[i] is {costA, costB}.
func TwoCity(costs [][2]int, rec *trace.Recorder) (Schedule, error) {
	n := len(costs)
	if n == 0 {
		return Schedule{}, ErrNoPeople
	}
	if n%2 != 0 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrOddPeople, n)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable so equal differences keep input order.
	slices.SortStableFunc(order, func(x, y int) int {
		return (costs[x][0] - costs[x][1]) - (costs[y][0] - costs[y][1])
	})

	st := &cityState{Costs: slices.Clone(costs), Order: order, Assign: make([]byte, n), Current: -1}
	for i := range st.Assign {
		st.Assign[i] = '.'
	}
	rec.Recordf(1, st, "sorted by cost difference: %s", st.orderString())

	total := 0
	for i, p := range order {
		st.Current = p
		if i < n/2 {
			st.Assign[p] = 'A'
			total += costs[p][0]
			st.Total = total
			rec.Recordf(3, st, "person %d saves %d by going to A, pay %d",
				p, costs[p][1]-costs[p][0], costs[p][0])
		} else {
			st.Assign[p] = 'B'
			total += costs[p][1]
			st.Total = total
			rec.Recordf(4, st, "A is full, person %d goes to B, pay %d", p, costs[p][1])
		}
	}

	st.Current = -1
	rec.Recordf(5, st, "minimum total cost = %d", total)
	return Schedule{Total: total, Assignment: slices.Clone(st.Assign)}, nil
}

type cityState struct {
	Costs   [][2]int `json:"costs"`
	Order   []int    `json:"order"`
	Assign  []byte   `json:"assign"`
	Current int      `json:"current"`
	Total   int      `json:"total"`
}

func (s *cityState) Clone() trace.State {
	c := *s
	c.Costs = slices.Clone(s.Costs)
	c.Order = slices.Clone(s.Order)
	c.Assign = slices.Clone(s.Assign)
	return &c
}

func (s *cityState) Fields() []trace.Field {
	cur := "-"
	if s.Current >= 0 {
		cur = fmt.Sprintf("%d (%d, %d)", s.Current, s.Costs[s.Current][0], s.Costs[s.Current][1])
	}
	return []trace.Field{
		{Name: "order", Value: s.orderString()},
		{Name: "assignment", Value: string(s.Assign)},
		{Name: "current", Value: cur},
		{Name: "total", Value: fmt.Sprint(s.Total)},
	}
}

// Series is the cost difference of each person in input order.
func (s *cityState) Series() []float64 {
	out := make([]float64, len(s.Costs))
	for i, c := range s.Costs {
		out[i] = float64(c[0] - c[1])
	}
	return out
}

func (s *cityState) Size() int {
	n := 0
	for _, a := range s.Assign {
		if a != '.' {
			n++
		}
	}
	return n
}

func (s *cityState) orderString() string {
	parts := make([]string, len(s.Order))
	for i, p := range s.Order {
		parts[i] = fmt.Sprintf("%d(%+d)", p, s.Costs[p][0]-s.Costs[p][1])
	}
	return strings.Join(parts, " ")
}
