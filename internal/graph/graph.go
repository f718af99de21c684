package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

var (
	// ErrEmptyGraph is returned when no edges were supplied.
	ErrEmptyGraph = errors.New("graph: no edges")

	// ErrVertexNotFound is returned when the start vertex is absent.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Graph is an adjacency list with sorted neighbour lists.
type Graph struct {
	directed bool
	vertices []string
	adj      map[string][]string
}

// New builds a graph from edges. Undirected graphs store both directions.
// Duplicate edges collapse into one.
func New(edges []parse.Edge, directed bool) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}
	g := &Graph{directed: directed, adj: make(map[string][]string)}
	seen := make(map[[2]string]bool)
	add := func(u, v string) {
		if _, ok := g.adj[u]; !ok {
			g.adj[u] = nil
		}
		if _, ok := g.adj[v]; !ok {
			g.adj[v] = nil
		}
		if seen[[2]string{u, v}] {
			return
		}
		seen[[2]string{u, v}] = true
		g.adj[u] = append(g.adj[u], v)
	}
	for _, e := range edges {
		add(e.From, e.To)
		if !directed {
			add(e.To, e.From)
		}
	}
	for v, nbrs := range g.adj {
		sort.Strings(nbrs)
		g.vertices = append(g.vertices, v)
	}
	sort.Strings(g.vertices)
	return g, nil
}

func (g *Graph) Directed() bool { return g.directed }

// Vertices returns the sorted vertex list.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)
	return out
}

func (g *Graph) HasVertex(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// Neighbors returns the sorted neighbours of v.
func (g *Graph) Neighbors(v string) []string {
	return g.adj[v]
}

// Traversal is the outcome of BFS or DFS.
type Traversal struct {
	Order  []string
	Parent map[string]string
	Depth  map[string]int
}

// PathTo reconstructs the tree path from the start vertex to v.
func (t *Traversal) PathTo(v string) ([]string, bool) {
	if _, ok := t.Depth[v]; !ok {
		return nil, false
	}
	path := []string{v}
	for {
		p, ok := t.Parent[v]
		if !ok {
			break
		}
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// walkState is the snapshot shared by BFS and DFS. Frontier is the queue
// for BFS and the stack (bottom first) for DFS.
type walkState struct {
	frontierName string
	Visited      []string          `json:"visited"`
	Frontier     []string          `json:"frontier"`
	Current      string            `json:"current"`
	Order        []string          `json:"order"`
	Parent       map[string]string `json:"parent"`
}

func (s *walkState) Clone() trace.State {
	c := &walkState{
		frontierName: s.frontierName,
		Visited:      cloneStrings(s.Visited),
		Frontier:     cloneStrings(s.Frontier),
		Current:      s.Current,
		Order:        cloneStrings(s.Order),
		Parent:       make(map[string]string, len(s.Parent)),
	}
	for k, v := range s.Parent {
		c.Parent[k] = v
	}
	return c
}

func (s *walkState) Fields() []trace.Field {
	current := s.Current
	if current == "" {
		current = "-"
	}
	return []trace.Field{
		{Name: "current", Value: current},
		{Name: s.frontierName, Value: list(s.Frontier)},
		{Name: "visited", Value: list(s.Visited)},
		{Name: "order", Value: list(s.Order)},
	}
}

func (s *walkState) Size() int { return len(s.Frontier) }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func list(s []string) string {
	return "[" + strings.Join(s, " ") + "]"
}

func validate(g *Graph, start string) error {
	if g == nil {
		return ErrEmptyGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}
	return nil
}
