// Package trace provides the history generation primitives shared by every
// instrumented algorithm.
//
// An algorithm core receives an optional [Recorder] and calls
// [Recorder.Record] at each meaningfully distinct point of its execution.
// Every recorded [State] is cloned, so the resulting [History] is an ordered
// list of immutable snapshots:
//
//   - [Frame]: one snapshot (pseudo-code line, explanation, state)
//   - [State]: the algorithm-specific variables captured by a frame
//   - [Step]: the serializable, algorithm-agnostic view of a frame
//   - [Runner]: runs an [Algorithm] with observers and metrics
//   - [Batch]: runs many algorithm instances concurrently
//
// # Example
//
//	rec := trace.NewRecorder()
//	order, _ := graph.BFS(g, "A", rec)
//	for _, f := range rec.History() {
//		fmt.Println(f.Index, f.Explanation)
//	}
//
// A nil *Recorder is valid and records nothing, which makes every core its
// own uninstrumented implementation.
package trace
