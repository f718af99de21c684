package graph

import (
	"sort"

	"github.com/san-kum/algoscope/internal/trace"
)

// BFSCode is the pseudo-code that BFS frames point into.
var BFSCode = []string{
	"mark start visited; enqueue start",
	"while queue not empty:",
	"    u = dequeue()",
	"    append u to order",
	"    for v in neighbors(u):",
	"        if v not visited:",
	"            mark v visited; parent[v] = u; enqueue v",
	"return order",
}

// BFS visits every vertex reachable from start in breadth-first order.
func BFS(g *Graph, start string, rec *trace.Recorder) (*Traversal, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}

	res := &Traversal{
		Parent: make(map[string]string),
		Depth:  map[string]int{start: 0},
	}
	visited := map[string]bool{start: true}
	st := &walkState{frontierName: "queue", Parent: res.Parent}
	st.Visited = []string{start}
	st.Frontier = []string{start}
	rec.Recordf(1, st, "mark %s visited and enqueue it", start)

	for len(st.Frontier) > 0 {
		u := st.Frontier[0]
		st.Frontier = st.Frontier[1:]
		st.Current = u
		rec.Recordf(3, st, "dequeue %s (depth %d)", u, res.Depth[u])

		res.Order = append(res.Order, u)
		st.Order = res.Order

		for _, v := range g.Neighbors(u) {
			if visited[v] {
				rec.Recordf(6, st, "%s already visited, skip", v)
				continue
			}
			visited[v] = true
			res.Parent[v] = u
			res.Depth[v] = res.Depth[u] + 1
			st.Visited = sortedKeys(visited)
			st.Frontier = append(st.Frontier, v)
			rec.Recordf(7, st, "visit %s from %s and enqueue it", v, u)
		}
	}

	st.Current = ""
	rec.Recordf(8, st, "queue empty: visited %d vertices", len(res.Order))
	return res, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
