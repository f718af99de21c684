package flow_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/flow"
	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

type solver func(*flow.Network, string, string, *trace.Recorder) (*flow.Result, error)

var solvers = map[string]solver{
	"edmonds-karp": flow.EdmondsKarp,
	"dinic":        flow.Dinic,
}

const (
	simpleEdges = "S-A:3, S-B:2, A-B:1, A-T:2, B-T:3"
	clrsEdges   = "s-v1:16, s-v2:13, v1-v3:12, v2-v1:4, v2-v4:14, v3-v2:9, v3-t:20, v4-v3:7, v4-t:4"
)

func network(t *testing.T, edges string) *flow.Network {
	t.Helper()
	es, err := parse.Edges(edges)
	require.NoError(t, err)
	n, err := flow.NewNetwork(es)
	require.NoError(t, err)
	return n
}

// checkFlow verifies capacity bounds, conservation and the min-cut value.
func checkFlow(t *testing.T, res *flow.Result, source, sink string) {
	t.Helper()

	net := make(map[string]int)
	for _, e := range res.Flows {
		assert.GreaterOrEqual(t, e.Flow, 0, "%s->%s", e.From, e.To)
		assert.LessOrEqual(t, e.Flow, e.Capacity, "%s->%s", e.From, e.To)
		net[e.From] -= e.Flow
		net[e.To] += e.Flow
	}
	for v, balance := range net {
		switch v {
		case source:
			assert.Equal(t, -res.MaxFlow, balance)
		case sink:
			assert.Equal(t, res.MaxFlow, balance)
		default:
			assert.Zero(t, balance, "conservation at %s", v)
		}
	}

	inCut := make(map[string]bool)
	for _, v := range res.MinCut {
		inCut[v] = true
	}
	require.True(t, inCut[source])
	require.False(t, inCut[sink])
	cut := 0
	for _, e := range res.Flows {
		if inCut[e.From] && !inCut[e.To] {
			cut += e.Capacity
		}
	}
	assert.Equal(t, res.MaxFlow, cut)
}

func TestMaxFlow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		edges        string
		source, sink string
		want         int
	}{
		{"simple preset", simpleEdges, "S", "T", 5},
		{"clrs", clrsEdges, "s", "t", 23},
		{"disconnected", "S-A:4, B-T:4", "S", "T", 0},
		{"parallel edges", "S-T:2, S-T:3", "S", "T", 5},
	}

	for name, solve := range solvers {
		name, solve := name, solve
		for _, tt := range tests {
			tt := tt
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				rec := trace.NewRecorder()
				res, err := solve(network(t, tt.edges), tt.source, tt.sink, rec)
				require.NoError(t, err)
				assert.Equal(t, tt.want, res.MaxFlow)
				checkFlow(t, res, tt.source, tt.sink)

				h := rec.History()
				require.GreaterOrEqual(t, h.Len(), 2)
				last, _ := h.Last()
				total, _ := last.Step().Field("total")
				assert.Equal(t, strconv.Itoa(tt.want), total)
			})
		}
	}
}

func TestNetworkReuse(t *testing.T) {
	t.Parallel()

	n := network(t, simpleEdges)
	first, err := flow.Dinic(n, "S", "T", nil)
	require.NoError(t, err)
	second, err := flow.EdmondsKarp(n, "S", "T", nil)
	require.NoError(t, err)
	assert.Equal(t, first.MaxFlow, second.MaxFlow)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := flow.NewNetwork(nil)
	require.ErrorIs(t, err, flow.ErrEmptyNetwork)

	_, err = flow.NewNetwork([]parse.Edge{{From: "A", To: "B", Capacity: -1}})
	var capErr *flow.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, -1, capErr.Cap)

	n := network(t, simpleEdges)
	for _, solve := range solvers {
		_, err = solve(n, "X", "T", nil)
		require.ErrorIs(t, err, flow.ErrVertexNotFound)
		_, err = solve(n, "S", "S", nil)
		require.ErrorIs(t, err, flow.ErrSameTerminal)
	}
}
