package flow

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

var (
	// ErrEmptyNetwork is returned when no edges were supplied.
	ErrEmptyNetwork = errors.New("flow: no edges")

	// ErrVertexNotFound is returned when source or sink is absent.
	ErrVertexNotFound = errors.New("flow: vertex not found")

	// ErrSameTerminal is returned when source equals sink.
	ErrSameTerminal = errors.New("flow: source and sink are the same vertex")
)

// CapacityError is returned for an edge with a negative capacity.
type CapacityError struct {
	From, To string
	Cap      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %s->%s: %d", e.From, e.To, e.Cap)
}

type arc struct {
	to   int
	cap  int
	flow int
	// input is the index of the input edge for forward arcs, -1 for reverse arcs.
	input int
}

func (a *arc) residual() int { return a.cap - a.flow }

// Network is a residual flow network built from directed edges.
type Network struct {
	names []string
	index map[string]int
	arcs  []arc
	adj   [][]int
	edges []parse.Edge
}

// NewNetwork builds a network. Vertex ids follow sorted vertex names and
// each adjacency list keeps input order, so runs are deterministic.
func NewNetwork(edges []parse.Edge) (*Network, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyNetwork
	}
	n := &Network{index: make(map[string]int)}
	for _, e := range edges {
		if e.Capacity < 0 {
			return nil, &CapacityError{From: e.From, To: e.To, Cap: e.Capacity}
		}
		n.index[e.From] = 0
		n.index[e.To] = 0
	}
	for name := range n.index {
		n.names = append(n.names, name)
	}
	sort.Strings(n.names)
	for i, name := range n.names {
		n.index[name] = i
	}
	n.adj = make([][]int, len(n.names))
	for i, e := range edges {
		u, v := n.index[e.From], n.index[e.To]
		n.adj[u] = append(n.adj[u], len(n.arcs))
		n.arcs = append(n.arcs, arc{to: v, cap: e.Capacity, input: i})
		n.adj[v] = append(n.adj[v], len(n.arcs))
		n.arcs = append(n.arcs, arc{to: u, cap: 0, input: -1})
	}
	n.edges = append(n.edges, edges...)
	return n, nil
}

// Vertices returns the sorted vertex names.
func (n *Network) Vertices() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

func (n *Network) reset() {
	for i := range n.arcs {
		n.arcs[i].flow = 0
	}
}

func (n *Network) terminals(source, sink string) (int, int, error) {
	s, ok := n.index[source]
	if !ok {
		return 0, 0, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	t, ok := n.index[sink]
	if !ok {
		return 0, 0, fmt.Errorf("%w: sink %q", ErrVertexNotFound, sink)
	}
	if s == t {
		return 0, 0, ErrSameTerminal
	}
	return s, t, nil
}

// push sends f units along arc id and its pair.
func (n *Network) push(id, f int) {
	n.arcs[id].flow += f
	n.arcs[id^1].flow -= f
}

// EdgeFlow is the flow assigned to one input edge.
type EdgeFlow struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Flow     int    `json:"flow"`
	Capacity int    `json:"capacity"`
}

// Result of a max-flow computation.
type Result struct {
	MaxFlow int        `json:"max_flow"`
	Flows   []EdgeFlow `json:"flows"`
	// MinCut is the set of vertices reachable from the source in the final
	// residual network, sorted by name.
	MinCut []string `json:"min_cut"`
}

func (n *Network) result(total, s int) *Result {
	res := &Result{MaxFlow: total}
	for i := 0; i < len(n.arcs); i += 2 {
		a := n.arcs[i]
		e := n.edges[a.input]
		res.Flows = append(res.Flows, EdgeFlow{From: e.From, To: e.To, Flow: a.flow, Capacity: a.cap})
	}
	reach := n.reachable(s)
	for v, ok := range reach {
		if ok {
			res.MinCut = append(res.MinCut, n.names[v])
		}
	}
	return res
}

func (n *Network) reachable(s int) []bool {
	seen := make([]bool, len(n.names))
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, id := range n.adj[u] {
			a := n.arcs[id]
			if a.residual() > 0 && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	return seen
}

// flowState is the snapshot recorded by both algorithms.
type flowState struct {
	Total int      `json:"total"`
	Flows []string `json:"flows"`
	Path  []string `json:"path,omitempty"`
	Level []int    `json:"level,omitempty"`
	names []string
}

func (s *flowState) Clone() trace.State {
	c := *s
	c.Flows = append([]string(nil), s.Flows...)
	c.Path = append([]string(nil), s.Path...)
	c.Level = append([]int(nil), s.Level...)
	return &c
}

func (s *flowState) Fields() []trace.Field {
	fields := []trace.Field{
		{Name: "total", Value: strconv.Itoa(s.Total)},
		{Name: "flows", Value: strings.Join(s.Flows, " ")},
	}
	if len(s.Path) > 0 {
		fields = append(fields, trace.Field{Name: "path", Value: strings.Join(s.Path, "->")})
	}
	if len(s.Level) > 0 {
		parts := make([]string, 0, len(s.Level))
		for v, l := range s.Level {
			if l >= 0 {
				parts = append(parts, fmt.Sprintf("%s:%d", s.names[v], l))
			}
		}
		fields = append(fields, trace.Field{Name: "level", Value: strings.Join(parts, " ")})
	}
	return fields
}

func (s *flowState) Size() int { return len(s.Path) }

func (n *Network) snapshot(total int, path []int, level []int) *flowState {
	st := &flowState{Total: total, names: n.names}
	for i := 0; i < len(n.arcs); i += 2 {
		a := n.arcs[i]
		e := n.edges[a.input]
		st.Flows = append(st.Flows, fmt.Sprintf("%s->%s:%d/%d", e.From, e.To, a.flow, a.cap))
	}
	for _, v := range path {
		st.Path = append(st.Path, n.names[v])
	}
	if level != nil {
		st.Level = append([]int(nil), level...)
	}
	return st
}
