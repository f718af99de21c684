package config

import "sort"

// Presets maps algorithm name to named example inputs. Every algorithm has a
// "default" preset used when a run names no input at all.
var Presets = map[string]map[string]*Config{
	"bfs": {
		"default": {Algorithm: "bfs", Input: InputConfig{Edges: "A-B, A-C, B-D, C-D, D-E", Start: "A"}},
		"tree":    {Algorithm: "bfs", Input: InputConfig{Edges: "1-2, 1-3, 2-4, 2-5, 3-6, 3-7", Start: "1"}},
		"cycle":   {Algorithm: "bfs", Input: InputConfig{Edges: "A-B, B-C, C-A, C-D", Start: "A", Directed: true}},
	},
	"dfs": {
		"default": {Algorithm: "dfs", Input: InputConfig{Edges: "A-B, A-C, B-D, C-D, D-E", Start: "A"}},
		"tree":    {Algorithm: "dfs", Input: InputConfig{Edges: "1-2, 1-3, 2-4, 2-5, 3-6, 3-7", Start: "1"}},
		"cycle":   {Algorithm: "dfs", Input: InputConfig{Edges: "A-B, B-C, C-A, C-D", Start: "A", Directed: true}},
	},
	"edmonds-karp": {
		"default": {Algorithm: "edmonds-karp", Input: InputConfig{Edges: "S-A:3, S-B:2, A-B:1, A-T:2, B-T:3", Source: "S", Sink: "T"}},
		"simple":  {Algorithm: "edmonds-karp", Input: InputConfig{Edges: "S-A:3, S-B:2, A-B:1, A-T:2, B-T:3", Source: "S", Sink: "T"}},
		"clrs": {Algorithm: "edmonds-karp", Input: InputConfig{
			Edges:  "s-v1:16, s-v2:13, v1-v3:12, v2-v1:4, v2-v4:14, v3-v2:9, v3-t:20, v4-v3:7, v4-t:4",
			Source: "s", Sink: "t",
		}},
	},
	"dinic": {
		"default": {Algorithm: "dinic", Input: InputConfig{Edges: "S-A:3, S-B:2, A-B:1, A-T:2, B-T:3", Source: "S", Sink: "T"}},
		"simple":  {Algorithm: "dinic", Input: InputConfig{Edges: "S-A:3, S-B:2, A-B:1, A-T:2, B-T:3", Source: "S", Sink: "T"}},
		"clrs": {Algorithm: "dinic", Input: InputConfig{
			Edges:  "s-v1:16, s-v2:13, v1-v3:12, v2-v1:4, v2-v4:14, v3-v2:9, v3-t:20, v4-v3:7, v4-t:4",
			Source: "s", Sink: "t",
		}},
	},
	"merge-sort": {
		"default":  {Algorithm: "merge-sort", Input: InputConfig{Array: "5, 2, 4, 6, 1, 3"}},
		"reversed": {Algorithm: "merge-sort", Input: InputConfig{Array: "8, 7, 6, 5, 4, 3, 2, 1"}},
	},
	"quick-sort": {
		"default":  {Algorithm: "quick-sort", Input: InputConfig{Array: "5, 2, 4, 6, 1, 3"}},
		"reversed": {Algorithm: "quick-sort", Input: InputConfig{Array: "8, 7, 6, 5, 4, 3, 2, 1"}},
	},
	"lfu": {
		"default":  {Algorithm: "lfu", Input: InputConfig{Capacity: 2, Ops: "put(1,1) put(2,2) get(1) put(3,3) get(2) get(3) put(4,4) get(1) get(3) get(4)"}},
		"leetcode": {Algorithm: "lfu", Input: InputConfig{Capacity: 2, Ops: "put(1,1) put(2,2) get(1) put(3,3) get(2) get(3) put(4,4) get(1) get(3) get(4)"}},
	},
	"hash-table": {
		"default":    {Algorithm: "hash-table", Input: InputConfig{Buckets: 7, Ops: "insert(1) insert(8) insert(15) insert(3) search(8) delete(8) search(8)"}},
		"collisions": {Algorithm: "hash-table", Input: InputConfig{Buckets: 3, Ops: "insert(0) insert(3) insert(6) insert(-3) delete(3) search(6)"}},
	},
	"longest-ones": {
		"default": {Algorithm: "longest-ones", Input: InputConfig{Array: "1,1,1,0,0,0,1,1,1,1,0", K: 2}},
	},
	"container": {
		"default": {Algorithm: "container", Input: InputConfig{Array: "1,8,6,2,5,4,8,3,7"}},
	},
	"trap": {
		"default": {Algorithm: "trap", Input: InputConfig{Array: "0,1,0,2,1,0,1,3,2,1,2,1"}},
	},
	"subarray-sum": {
		"default": {Algorithm: "subarray-sum", Input: InputConfig{Array: "1,2,3,-2,2,1", Target: 3}},
	},
	"subarray-ranges": {
		"default": {Algorithm: "subarray-ranges", Input: InputConfig{Array: "4,-2,-3,4,1"}},
	},
	"two-city": {
		"default": {Algorithm: "two-city", Input: InputConfig{Costs: "10:20, 30:200, 400:50, 30:20"}},
	},
	"coin-change": {
		"default": {Algorithm: "coin-change", Input: InputConfig{Array: "1, 2, 5", Target: 11}},
	},
	"lis": {
		"default": {Algorithm: "lis", Input: InputConfig{Array: "10, 9, 2, 5, 3, 7, 101, 18"}},
	},
	"min-stack": {
		"default": {Algorithm: "min-stack", Input: InputConfig{Ops: "push(-2) push(0) push(-3) getMin() pop() top() getMin()"}},
	},
	"two-stack-queue": {
		"default": {Algorithm: "two-stack-queue", Input: InputConfig{Ops: "push(1) push(2) peek() pop() push(3) pop() pop() empty()"}},
	},
}

// GetPreset returns a copy of the named preset with run defaults filled in,
// or nil when it does not exist.
func GetPreset(algorithm, preset string) *Config {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := byName[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Input = p.Input
	return cfg
}

// ListPresets returns the preset names of an algorithm in sorted order.
func ListPresets(algorithm string) []string {
	byName, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
