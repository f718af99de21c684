package graph

import "github.com/san-kum/algoscope/internal/trace"

// DFSCode is the pseudo-code that DFS frames point into.
var DFSCode = []string{
	"push start",
	"while stack not empty:",
	"    u = pop()",
	"    if u visited: continue",
	"    mark u visited; append u to order",
	"    for v in reversed(neighbors(u)):",
	"        if v not visited: parent[v] = u; push v",
	"return order",
}

// DFS visits every vertex reachable from start in depth-first order using
// an explicit stack. Neighbours are pushed in reverse so they are visited in
// ascending order, matching the recursive formulation.
func DFS(g *Graph, start string, rec *trace.Recorder) (*Traversal, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}

	res := &Traversal{
		Parent: make(map[string]string),
		Depth:  make(map[string]int),
	}
	visited := make(map[string]bool)
	depth := map[string]int{start: 0}
	// parent candidates are overwritten until the vertex is actually visited
	cand := make(map[string]string)

	st := &walkState{frontierName: "stack", Parent: res.Parent}
	st.Frontier = []string{start}
	rec.Recordf(1, st, "push %s", start)

	for len(st.Frontier) > 0 {
		top := len(st.Frontier) - 1
		u := st.Frontier[top]
		st.Frontier = st.Frontier[:top]
		st.Current = u
		if visited[u] {
			rec.Recordf(4, st, "pop %s: already visited", u)
			continue
		}
		rec.Recordf(3, st, "pop %s", u)

		visited[u] = true
		if p, ok := cand[u]; ok {
			res.Parent[u] = p
			depth[u] = depth[p] + 1
		}
		res.Depth[u] = depth[u]
		res.Order = append(res.Order, u)
		st.Order = res.Order
		st.Visited = sortedKeys(visited)
		rec.Recordf(5, st, "visit %s (depth %d)", u, res.Depth[u])

		nbrs := g.Neighbors(u)
		for i := len(nbrs) - 1; i >= 0; i-- {
			v := nbrs[i]
			if visited[v] {
				continue
			}
			cand[v] = u
			st.Frontier = append(st.Frontier, v)
			rec.Recordf(7, st, "push %s (reached from %s)", v, u)
		}
	}

	st.Current = ""
	rec.Recordf(8, st, "stack empty: visited %d vertices", len(res.Order))
	return res, nil
}
