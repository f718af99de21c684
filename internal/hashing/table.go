// Package hashing implements an instrumented separate-chaining hash table
// over integer keys.
package hashing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

var (
	// ErrBuckets is returned for a non-positive bucket count.
	ErrBuckets = errors.New("hashing: bucket count must be positive")

	// ErrUnknownOp is returned by RunTable for unsupported operations.
	ErrUnknownOp = errors.New("hashing: unknown operation")
)

// DefaultBuckets is used when no bucket count is configured.
const DefaultBuckets = 7

// TableCode is the pseudo-code that hash table frames point into.
var TableCode = []string{
	"h = ((key mod m) + m) mod m",
	"scan chain of bucket h",
	"insert: append key if absent",
	"search: report whether key is in chain",
	"delete: unlink key if present",
}

// Table is a fixed-size hash table with chained buckets.
type Table struct {
	buckets [][]int
	size    int
	rec     *trace.Recorder
	op      string
}

func NewTable(m int, rec *trace.Recorder) (*Table, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBuckets, m)
	}
	t := &Table{buckets: make([][]int, m), rec: rec}
	t.rec.Recordf(0, t.snapshot(-1), "empty table with %d buckets", m)
	return t, nil
}

// Hash maps key to a bucket index in [0, m).
func Hash(key, m int) int {
	return ((key % m) + m) % m
}

func (t *Table) Len() int { return t.size }

func (t *Table) find(key int) (int, int) {
	h := Hash(key, len(t.buckets))
	t.rec.Recordf(1, t.snapshot(h), "h(%d) = %d", key, h)
	for i, k := range t.buckets[h] {
		if k == key {
			t.rec.Recordf(2, t.snapshot(h), "found %d at position %d of bucket %d", key, i, h)
			return h, i
		}
	}
	t.rec.Recordf(2, t.snapshot(h), "%d not in bucket %d", key, h)
	return h, -1
}

// Insert adds key and reports whether it was absent.
func (t *Table) Insert(key int) bool {
	t.op = fmt.Sprintf("insert(%d)", key)
	h, pos := t.find(key)
	if pos >= 0 {
		t.rec.Recordf(3, t.snapshot(h), "%d already present, nothing to do", key)
		return false
	}
	t.buckets[h] = append(t.buckets[h], key)
	t.size++
	t.rec.Recordf(3, t.snapshot(h), "append %d to bucket %d", key, h)
	return true
}

func (t *Table) Search(key int) bool {
	t.op = fmt.Sprintf("search(%d)", key)
	h, pos := t.find(key)
	t.rec.Recordf(4, t.snapshot(h), "search(%d) = %t", key, pos >= 0)
	return pos >= 0
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key int) bool {
	t.op = fmt.Sprintf("delete(%d)", key)
	h, pos := t.find(key)
	if pos < 0 {
		t.rec.Recordf(5, t.snapshot(h), "%d not present, nothing to delete", key)
		return false
	}
	chain := t.buckets[h]
	t.buckets[h] = append(chain[:pos:pos], chain[pos+1:]...)
	t.size--
	t.rec.Recordf(5, t.snapshot(h), "unlink %d from bucket %d", key, h)
	return true
}

// LoadFactor is the number of keys per bucket.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

type tableState struct {
	Op      string  `json:"op"`
	Buckets [][]int `json:"buckets"`
	Probe   int     `json:"probe"`
	Count   int     `json:"count"`
}

func (s *tableState) Clone() trace.State {
	c := *s
	c.Buckets = make([][]int, len(s.Buckets))
	for i, b := range s.Buckets {
		c.Buckets[i] = append([]int(nil), b...)
	}
	return &c
}

func (s *tableState) Fields() []trace.Field {
	fields := []trace.Field{{Name: "op", Value: s.Op}}
	if s.Op == "" {
		fields[0].Value = "-"
	}
	for i, b := range s.Buckets {
		keys := make([]string, len(b))
		for j, k := range b {
			keys[j] = strconv.Itoa(k)
		}
		name := "bucket " + strconv.Itoa(i)
		if i == s.Probe {
			name += " *"
		}
		fields = append(fields, trace.Field{Name: name, Value: strings.Join(keys, " -> ")})
	}
	return fields
}

func (s *tableState) Series() []float64 {
	out := make([]float64, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = float64(len(b))
	}
	return out
}

func (s *tableState) Size() int { return s.Count }

// snapshot shares the bucket slices; Record clones them.
func (t *Table) snapshot(probe int) *tableState {
	if !t.rec.Enabled() {
		return nil
	}
	return &tableState{Op: t.op, Buckets: t.buckets, Probe: probe, Count: t.size}
}

// RunTable executes insert(x), search(x) and delete(x) operations and
// returns one output per operation.
func RunTable(m int, ops []parse.Op, rec *trace.Recorder) ([]string, error) {
	for _, op := range ops {
		switch op.Name {
		case "insert", "search", "delete":
			if err := parse.Arity(op, 1); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownOp, op)
		}
	}
	t, err := NewTable(m, rec)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		var ok bool
		switch op.Name {
		case "insert":
			ok = t.Insert(op.Args[0])
		case "search":
			ok = t.Search(op.Args[0])
		case "delete":
			ok = t.Delete(op.Args[0])
		}
		out = append(out, strconv.FormatBool(ok))
	}
	return out, nil
}
