package flow

import (
	"math"

	"github.com/san-kum/algoscope/internal/trace"
)

// DinicCode is the pseudo-code that Dinic frames point into.
var DinicCode = []string{
	"flow = 0",
	"loop:",
	"    level = BFS distances from s in residual graph",
	"    if t unreachable: break",
	"    reset edge iterators",
	"    while f = DFS push along level+1 arcs:",
	"        flow += f",
	"return flow",
}

// Dinic computes a maximum flow from source to sink using level graphs and
// blocking flows. The network's flows are reset first.
func Dinic(n *Network, source, sink string, rec *trace.Recorder) (*Result, error) {
	s, t, err := n.terminals(source, sink)
	if err != nil {
		return nil, err
	}
	n.reset()

	total := 0
	rec.Recordf(1, n.snapshot(total, nil, nil), "start with zero flow from %s to %s", source, sink)

	phase := 0
	for {
		level := n.levels(s)
		if level[t] < 0 {
			rec.Recordf(4, n.snapshot(total, nil, level), "sink unreachable in level graph")
			break
		}
		phase++
		rec.Recordf(3, n.snapshot(total, nil, level), "phase %d: sink is at level %d", phase, level[t])

		iter := make([]int, len(n.names))
		for {
			var path []int
			pushed := n.dfsPush(s, t, math.MaxInt, level, iter, &path)
			if pushed == 0 {
				rec.Recordf(5, n.snapshot(total, nil, level), "blocking flow reached for phase %d", phase)
				break
			}
			reverse(path)
			total += pushed
			rec.Recordf(7, n.snapshot(total, path, level), "push %d along level path, flow is now %d", pushed, total)
		}
	}

	rec.Recordf(8, n.snapshot(total, nil, nil), "maximum flow is %d", total)
	return n.result(total, s), nil
}

func (n *Network) levels(s int) []int {
	level := make([]int, len(n.names))
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, id := range n.adj[u] {
			a := n.arcs[id]
			if a.residual() > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}
	return level
}

// dfsPush sends up to avail units from u to t along arcs that climb one
// level. The iterator only advances past arcs that cannot carry more flow.
// Vertices of the successful path are appended to path from t back to u.
func (n *Network) dfsPush(u, t, avail int, level, iter []int, path *[]int) int {
	if u == t {
		*path = append(*path, t)
		return avail
	}
	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		id := n.adj[u][iter[u]]
		a := n.arcs[id]
		if a.residual() <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		pushed := n.dfsPush(a.to, t, min(avail, a.residual()), level, iter, path)
		if pushed > 0 {
			n.push(id, pushed)
			*path = append(*path, u)
			return pushed
		}
	}
	return 0
}
