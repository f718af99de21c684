package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/graph"
	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

func mustGraph(t *testing.T, edges string, directed bool) *graph.Graph {
	t.Helper()
	es, err := parse.Edges(edges)
	require.NoError(t, err)
	g, err := graph.New(es, directed)
	require.NoError(t, err)
	return g
}

// assertTree checks that every reachable vertex appears once and parent
// pointers lead back to start.
func assertTree(t *testing.T, res *graph.Traversal, start string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, v := range res.Order {
		assert.False(t, seen[v], "vertex %s visited twice", v)
		seen[v] = true
	}
	assert.NotContains(t, res.Parent, start)
	for _, v := range res.Order {
		path, ok := res.PathTo(v)
		require.True(t, ok)
		assert.Equal(t, start, path[0])
		assert.Equal(t, v, path[len(path)-1])
		assert.Equal(t, res.Depth[v], len(path)-1)
	}
}

func TestBFS(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "A-B, A-C, B-D, C-D, D-E, X-Y", false)
	rec := trace.NewRecorder()

	res, err := graph.BFS(g, "A", rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
	assertTree(t, res, "A")

	h := rec.History()
	require.NotEmpty(t, h)
	first, _ := h.At(0)
	assert.Equal(t, 1, first.Line)
	last, _ := h.Last()
	assert.Equal(t, 8, last.Line)
	v, _ := last.Step().Field("order")
	assert.Equal(t, "[A B C D E]", v)
}

func TestDFS(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "A-B, A-C, B-D, C-D, D-E", false)
	res, err := graph.DFS(g, "A", trace.NewRecorder())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, "D", res.Parent["C"])
	assertTree(t, res, "A")
}

func TestDirected(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "A-B, B-C, C-A, D-A", true)
	res, err := graph.BFS(g, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
}

func TestUninstrumentedMatches(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, "1-2, 1-3, 2-4, 3-5, 4-6, 5-6", false)
	plain, err := graph.DFS(g, "1", nil)
	require.NoError(t, err)
	traced, err := graph.DFS(g, "1", trace.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, plain.Order, traced.Order)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := graph.New(nil, false)
	require.ErrorIs(t, err, graph.ErrEmptyGraph)

	g := mustGraph(t, "A-B", false)
	_, err = graph.BFS(g, "Z", nil)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = graph.DFS(g, "Z", nil)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}
