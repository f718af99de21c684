package registry

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoscope/internal/arrays"
	"github.com/san-kum/algoscope/internal/cache"
	"github.com/san-kum/algoscope/internal/config"
	"github.com/san-kum/algoscope/internal/design"
	"github.com/san-kum/algoscope/internal/dp"
	"github.com/san-kum/algoscope/internal/flow"
	"github.com/san-kum/algoscope/internal/graph"
	"github.com/san-kum/algoscope/internal/greedy"
	"github.com/san-kum/algoscope/internal/hashing"
	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/sorting"
	"github.com/san-kum/algoscope/internal/trace"
)

func bind(name string, fn func(rec *trace.Recorder) (any, error)) trace.Algorithm {
	return trace.AlgorithmFunc{ID: name, Fn: fn}
}

func needInput(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, field)
	}
	return nil
}

func builtin() []Entry {
	return []Entry{
		{
			Name:     "bfs",
			Category: "graph",
			Summary:  "breadth-first traversal with a FIFO queue",
			Inputs:   []string{"edges", "start", "directed"},
			Code:     graph.BFSCode,
			Build:    traversal("bfs", graph.BFS),
		},
		{
			Name:     "dfs",
			Category: "graph",
			Summary:  "depth-first traversal with an explicit stack",
			Inputs:   []string{"edges", "start", "directed"},
			Code:     graph.DFSCode,
			Build:    traversal("dfs", graph.DFS),
		},
		{
			Name:     "edmonds-karp",
			Category: "flow",
			Summary:  "max flow by shortest augmenting paths",
			Inputs:   []string{"edges", "source", "sink"},
			Code:     flow.EdmondsKarpCode,
			Build:    maxFlow("edmonds-karp", flow.EdmondsKarp),
		},
		{
			Name:     "dinic",
			Category: "flow",
			Summary:  "max flow by level graphs and blocking flows",
			Inputs:   []string{"edges", "source", "sink"},
			Code:     flow.DinicCode,
			Build:    maxFlow("dinic", flow.Dinic),
		},
		{
			Name:     "merge-sort",
			Category: "sorting",
			Summary:  "top-down merge sort",
			Inputs:   []string{"array"},
			Code:     sorting.MergeSortCode,
			Build:    sorter("merge-sort", sorting.MergeSort),
		},
		{
			Name:     "quick-sort",
			Category: "sorting",
			Summary:  "quick sort with Lomuto partition",
			Inputs:   []string{"array"},
			Code:     sorting.QuickSortCode,
			Build:    sorter("quick-sort", sorting.QuickSort),
		},
		{
			Name:     "lfu",
			Category: "cache",
			Summary:  "least frequently used cache with O(1) get and put",
			Inputs:   []string{"capacity", "ops"},
			Code:     cache.LFUCode,
			Build: func(in config.InputConfig) (trace.Algorithm, error) {
				ops, err := parse.Ops(in.Ops)
				if err != nil {
					return nil, err
				}
				return bind("lfu", func(rec *trace.Recorder) (any, error) {
					out, err := cache.RunLFU(in.Capacity, ops, rec)
					return joinOutputs(out), err
				}), nil
			},
		},
		{
			Name:     "hash-table",
			Category: "hashing",
			Summary:  "hash table with separate chaining",
			Inputs:   []string{"buckets", "ops"},
			Code:     hashing.TableCode,
			Build: func(in config.InputConfig) (trace.Algorithm, error) {
				ops, err := parse.Ops(in.Ops)
				if err != nil {
					return nil, err
				}
				m := in.Buckets
				if m == 0 {
					m = hashing.DefaultBuckets
				}
				return bind("hash-table", func(rec *trace.Recorder) (any, error) {
					out, err := hashing.RunTable(m, ops, rec)
					return joinOutputs(out), err
				}), nil
			},
		},
		{
			Name:     "longest-ones",
			Category: "arrays",
			Summary:  "sliding window with at most k zero flips",
			Inputs:   []string{"array", "k"},
			Code:     arrays.LongestOnesCode,
			Build: intsAlgorithm("longest-ones", func(a []int, in config.InputConfig, rec *trace.Recorder) (any, error) {
				return arrays.LongestOnes(a, in.K, rec)
			}),
		},
		{
			Name:     "container",
			Category: "arrays",
			Summary:  "container with most water, two pointers",
			Inputs:   []string{"array"},
			Code:     arrays.MaxAreaCode,
			Build: intsAlgorithm("container", func(a []int, _ config.InputConfig, rec *trace.Recorder) (any, error) {
				return arrays.MaxArea(a, rec)
			}),
		},
		{
			Name:     "trap",
			Category: "arrays",
			Summary:  "trapping rain water, two pointers with running maxima",
			Inputs:   []string{"array"},
			Code:     arrays.TrapCode,
			Build: intsAlgorithm("trap", func(a []int, _ config.InputConfig, rec *trace.Recorder) (any, error) {
				return arrays.Trap(a, rec)
			}),
		},
		{
			Name:     "subarray-sum",
			Category: "arrays",
			Summary:  "count subarrays summing to target with prefix sums",
			Inputs:   []string{"array", "target"},
			Code:     arrays.SubarraySumCode,
			Build: intsAlgorithm("subarray-sum", func(a []int, in config.InputConfig, rec *trace.Recorder) (any, error) {
				return arrays.SubarraySum(a, in.Target, rec)
			}),
		},
		{
			Name:     "subarray-ranges",
			Category: "arrays",
			Summary:  "sum of subarray ranges with monotonic stacks",
			Inputs:   []string{"array"},
			Code:     arrays.SubarrayRangesCode,
			Build: intsAlgorithm("subarray-ranges", func(a []int, _ config.InputConfig, rec *trace.Recorder) (any, error) {
				return arrays.SubarrayRanges(a, rec)
			}),
		},
		{
			Name:     "two-city",
			Category: "greedy",
			Summary:  "two city scheduling by cost difference",
			Inputs:   []string{"costs"},
			Code:     greedy.TwoCityCode,
			Build: func(in config.InputConfig) (trace.Algorithm, error) {
				pairs, err := parse.Pairs(in.Costs)
				if err != nil {
					return nil, err
				}
				return bind("two-city", func(rec *trace.Recorder) (any, error) {
					s, err := greedy.TwoCity(pairs, rec)
					if err != nil {
						return nil, err
					}
					return s.String(), nil
				}), nil
			},
		},
		{
			Name:     "coin-change",
			Category: "dp",
			Summary:  "fewest coins for an amount",
			Inputs:   []string{"array", "target"},
			Code:     dp.CoinChangeCode,
			Build: intsAlgorithm("coin-change", func(a []int, in config.InputConfig, rec *trace.Recorder) (any, error) {
				return dp.CoinChange(a, in.Target, rec)
			}),
		},
		{
			Name:     "lis",
			Category: "dp",
			Summary:  "longest increasing subsequence",
			Inputs:   []string{"array"},
			Code:     dp.LISCode,
			Build: intsAlgorithm("lis", func(a []int, _ config.InputConfig, rec *trace.Recorder) (any, error) {
				s, err := dp.LIS(a, rec)
				if err != nil {
					return nil, err
				}
				return fmt.Sprintf("%d %v", s.Length, s.Values), nil
			}),
		},
		{
			Name:     "min-stack",
			Category: "design",
			Summary:  "stack with constant-time minimum",
			Inputs:   []string{"ops"},
			Code:     design.MinStackCode,
			Build:    script("min-stack", design.RunMinStack),
		},
		{
			Name:     "two-stack-queue",
			Category: "design",
			Summary:  "FIFO queue from two stacks",
			Inputs:   []string{"ops"},
			Code:     design.TwoStackQueueCode,
			Build:    script("two-stack-queue", design.RunTwoStackQueue),
		},
	}
}

type traverseFunc func(*graph.Graph, string, *trace.Recorder) (*graph.Traversal, error)

func traversal(name string, fn traverseFunc) Builder {
	return func(in config.InputConfig) (trace.Algorithm, error) {
		if err := needInput("start", in.Start); err != nil {
			return nil, err
		}
		edges, err := parse.Edges(in.Edges)
		if err != nil {
			return nil, err
		}
		g, err := graph.New(edges, in.Directed)
		if err != nil {
			return nil, err
		}
		start := strings.TrimSpace(in.Start)
		return bind(name, func(rec *trace.Recorder) (any, error) {
			t, err := fn(g, start, rec)
			if err != nil {
				return nil, err
			}
			return strings.Join(t.Order, " "), nil
		}), nil
	}
}

type flowFunc func(*flow.Network, string, string, *trace.Recorder) (*flow.Result, error)

func maxFlow(name string, fn flowFunc) Builder {
	return func(in config.InputConfig) (trace.Algorithm, error) {
		if err := needInput("source", in.Source); err != nil {
			return nil, err
		}
		if err := needInput("sink", in.Sink); err != nil {
			return nil, err
		}
		edges, err := parse.Edges(in.Edges)
		if err != nil {
			return nil, err
		}
		n, err := flow.NewNetwork(edges)
		if err != nil {
			return nil, err
		}
		source, sink := strings.TrimSpace(in.Source), strings.TrimSpace(in.Sink)
		return bind(name, func(rec *trace.Recorder) (any, error) {
			r, err := fn(n, source, sink, rec)
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("%d (cut: %s)", r.MaxFlow, strings.Join(r.MinCut, " ")), nil
		}), nil
	}
}

func sorter(name string, fn func([]int, *trace.Recorder) ([]int, error)) Builder {
	return intsAlgorithm(name, func(a []int, _ config.InputConfig, rec *trace.Recorder) (any, error) {
		out, err := fn(a, rec)
		if err != nil {
			return nil, err
		}
		return fmt.Sprint(out), nil
	})
}

func intsAlgorithm(name string, fn func([]int, config.InputConfig, *trace.Recorder) (any, error)) Builder {
	return func(in config.InputConfig) (trace.Algorithm, error) {
		a, err := parse.Ints(in.Array)
		if err != nil {
			return nil, err
		}
		return bind(name, func(rec *trace.Recorder) (any, error) {
			return fn(a, in, rec)
		}), nil
	}
}

func script(name string, fn func([]parse.Op, *trace.Recorder) ([]string, error)) Builder {
	return func(in config.InputConfig) (trace.Algorithm, error) {
		ops, err := parse.Ops(in.Ops)
		if err != nil {
			return nil, err
		}
		return bind(name, func(rec *trace.Recorder) (any, error) {
			out, err := fn(ops, rec)
			return joinOutputs(out), err
		}), nil
	}
}

func joinOutputs(out []string) string {
	return "[" + strings.Join(out, " ") + "]"
}
