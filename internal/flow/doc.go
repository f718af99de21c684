// Package flow implements instrumented maximum-flow algorithms over integer
// capacity networks.
//
//   - [EdmondsKarp]: Ford–Fulkerson with BFS shortest augmenting paths,
//     O(V·E²).
//   - [Dinic]: BFS level graphs plus blocking flows found by DFS with
//     per-vertex edge iterators, O(V²·E).
//
// Both return a [Result] with the flow on every input edge and the source
// side of a minimum cut, which makes max-flow/min-cut checks trivial.
//
// # Residual representation
//
// Every input edge u→v of capacity c becomes a forward arc (cap c) and a
// paired reverse arc (cap 0) stored at index id^1, so pushing f units is
// arcs[id].flow += f; arcs[id^1].flow -= f.
package flow
