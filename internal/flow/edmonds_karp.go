package flow

import (
	"math"

	"github.com/san-kum/algoscope/internal/trace"
)

// EdmondsKarpCode is the pseudo-code that Edmonds–Karp frames point into.
var EdmondsKarpCode = []string{
	"flow = 0",
	"loop:",
	"    path = BFS shortest s-t path in residual graph",
	"    if no path: break",
	"    b = min residual capacity along path",
	"    for each arc on path: push b",
	"    flow += b",
	"return flow",
}

// EdmondsKarp computes a maximum flow from source to sink. The network's
// flows are reset first, so a Network can be solved repeatedly.
func EdmondsKarp(n *Network, source, sink string, rec *trace.Recorder) (*Result, error) {
	s, t, err := n.terminals(source, sink)
	if err != nil {
		return nil, err
	}
	n.reset()

	total := 0
	rec.Recordf(1, n.snapshot(total, nil, nil), "start with zero flow from %s to %s", source, sink)

	for {
		parentArc := n.bfsPath(s, t)
		if parentArc[t] < 0 {
			rec.Recordf(4, n.snapshot(total, nil, nil), "no augmenting path left")
			break
		}

		var path []int
		bottleneck := math.MaxInt
		for v := t; v != s; v = n.arcs[parentArc[v]^1].to {
			id := parentArc[v]
			bottleneck = min(bottleneck, n.arcs[id].residual())
			path = append(path, v)
		}
		path = append(path, s)
		reverse(path)

		rec.Recordf(3, n.snapshot(total, path, nil), "shortest augmenting path has %d arcs", len(path)-1)
		rec.Recordf(5, n.snapshot(total, path, nil), "bottleneck capacity is %d", bottleneck)

		for v := t; v != s; v = n.arcs[parentArc[v]^1].to {
			n.push(parentArc[v], bottleneck)
		}
		total += bottleneck
		rec.Recordf(7, n.snapshot(total, path, nil), "push %d along the path, flow is now %d", bottleneck, total)
	}

	rec.Recordf(8, n.snapshot(total, nil, nil), "maximum flow is %d", total)
	return n.result(total, s), nil
}

// bfsPath returns, for every vertex, the arc used to reach it (-1 if
// unreached). The source maps to -2.
func (n *Network) bfsPath(s, t int) []int {
	parentArc := make([]int, len(n.names))
	for i := range parentArc {
		parentArc[i] = -1
	}
	parentArc[s] = -2
	queue := []int{s}
	for len(queue) > 0 && parentArc[t] < 0 {
		u := queue[0]
		queue = queue[1:]
		for _, id := range n.adj[u] {
			a := n.arcs[id]
			if a.residual() > 0 && parentArc[a.to] == -1 {
				parentArc[a.to] = id
				queue = append(queue, a.to)
			}
		}
	}
	return parentArc
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
