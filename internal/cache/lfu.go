// Package cache provides an instrumented least-frequently-used cache with
// O(1) get and put.
package cache

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

// ErrUnknownOp is returned by RunLFU for anything other than get/put.
var ErrUnknownOp = errors.New("cache: unknown operation")

// LFUCode is the pseudo-code that LFU frames point into.
var LFUCode = []string{
	"get(key):",
	"    if key missing: return -1",
	"    move key from freq f list to freq f+1 list; update minFreq",
	"    return value",
	"put(key, value):",
	"    if capacity == 0: return",
	"    if key present: update value; touch key; return",
	"    if full: evict least recent key of minFreq list",
	"    insert key with freq 1; minFreq = 1",
}

// node is a doubly-linked list entry inside one frequency bucket.
type node struct {
	key   int
	value int
	freq  int
	prev  *node
	next  *node
}

// bucket holds the keys sharing one frequency, most recently used first.
type bucket struct {
	head *node
	tail *node
	size int
}

func (b *bucket) pushFront(n *node) {
	n.prev = nil
	n.next = b.head
	if b.head != nil {
		b.head.prev = n
	}
	b.head = n
	if b.tail == nil {
		b.tail = n
	}
	b.size++
}

func (b *bucket) remove(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		b.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		b.tail = n.prev
	}
	n.prev, n.next = nil, nil
	b.size--
}

// LFU is a least-frequently-used cache. Among keys with the lowest use
// count, the least recently used one is evicted first.
type LFU struct {
	capacity int
	entries  map[int]*node
	buckets  map[int]*bucket
	minFreq  int
	rec      *trace.Recorder
	op       string
}

// NewLFU returns an empty cache. A capacity of zero or less stores nothing.
func NewLFU(capacity int, rec *trace.Recorder) *LFU {
	c := &LFU{
		capacity: capacity,
		entries:  make(map[int]*node),
		buckets:  make(map[int]*bucket),
		rec:      rec,
	}
	c.rec.Recordf(0, c.snapshot(), "empty cache with capacity %d", capacity)
	return c
}

func (c *LFU) Len() int { return len(c.entries) }

func (c *LFU) Get(key int) (int, bool) {
	c.op = fmt.Sprintf("get(%d)", key)
	n, ok := c.entries[key]
	if !ok {
		c.rec.Recordf(2, c.snapshot(), "key %d not found, return -1", key)
		return -1, false
	}
	from := n.freq
	c.touch(n)
	c.rec.Recordf(3, c.snapshot(), "key %d: freq %d -> %d, minFreq %d", key, from, n.freq, c.minFreq)
	c.rec.Recordf(4, c.snapshot(), "return %d", n.value)
	return n.value, true
}

func (c *LFU) Put(key, value int) {
	c.op = fmt.Sprintf("put(%d,%d)", key, value)
	if c.capacity <= 0 {
		c.rec.Recordf(6, c.snapshot(), "capacity is 0, ignore")
		return
	}
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.touch(n)
		c.rec.Recordf(7, c.snapshot(), "update key %d to %d, freq now %d", key, value, n.freq)
		return
	}
	if len(c.entries) >= c.capacity {
		b := c.buckets[c.minFreq]
		victim := b.tail
		c.detach(victim)
		delete(c.entries, victim.key)
		c.rec.Recordf(8, c.snapshot(), "cache full: evict key %d (freq %d)", victim.key, victim.freq)
	}
	n := &node{key: key, value: value, freq: 1}
	c.entries[key] = n
	c.attach(n)
	c.minFreq = 1
	c.rec.Recordf(9, c.snapshot(), "insert key %d with freq 1", key)
}

func (c *LFU) touch(n *node) {
	c.detach(n)
	if _, ok := c.buckets[n.freq]; !ok && c.minFreq == n.freq {
		c.minFreq++
	}
	n.freq++
	c.attach(n)
}

func (c *LFU) attach(n *node) {
	b, ok := c.buckets[n.freq]
	if !ok {
		b = &bucket{}
		c.buckets[n.freq] = b
	}
	b.pushFront(n)
}

// detach removes n from its bucket, dropping the bucket when it empties.
func (c *LFU) detach(n *node) {
	b := c.buckets[n.freq]
	b.remove(n)
	if b.size == 0 {
		delete(c.buckets, n.freq)
	}
}

// Entry is one key of the cache as exposed by Snapshot.
type Entry struct {
	Key   int `json:"key"`
	Value int `json:"value"`
	Freq  int `json:"freq"`
}

type lfuState struct {
	Op         string        `json:"op"`
	Capacity   int           `json:"capacity"`
	Entries    []Entry       `json:"entries"`
	FreqGroups map[int][]int `json:"freq_groups"`
	MinFreq    int           `json:"min_freq"`
}

func (s *lfuState) Clone() trace.State {
	c := *s
	c.Entries = append([]Entry(nil), s.Entries...)
	c.FreqGroups = make(map[int][]int, len(s.FreqGroups))
	for f, keys := range s.FreqGroups {
		c.FreqGroups[f] = append([]int(nil), keys...)
	}
	return &c
}

func (s *lfuState) Fields() []trace.Field {
	entries := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = fmt.Sprintf("%d=%d(f%d)", e.Key, e.Value, e.Freq)
	}
	freqs := make([]int, 0, len(s.FreqGroups))
	for f := range s.FreqGroups {
		freqs = append(freqs, f)
	}
	sort.Ints(freqs)
	groups := make([]string, len(freqs))
	for i, f := range freqs {
		keys := make([]string, len(s.FreqGroups[f]))
		for j, k := range s.FreqGroups[f] {
			keys[j] = strconv.Itoa(k)
		}
		groups[i] = fmt.Sprintf("f%d:[%s]", f, strings.Join(keys, " "))
	}
	op := s.Op
	if op == "" {
		op = "-"
	}
	return []trace.Field{
		{Name: "op", Value: op},
		{Name: "cache", Value: "{" + strings.Join(entries, " ") + "}"},
		{Name: "freq groups", Value: strings.Join(groups, " ")},
		{Name: "min freq", Value: strconv.Itoa(s.MinFreq)},
	}
}

func (s *lfuState) Size() int { return len(s.Entries) }

// Snapshot returns the entries sorted by key and the frequency groups, most
// recently used key first.
func (c *LFU) Snapshot() ([]Entry, map[int][]int) {
	entries := make([]Entry, 0, len(c.entries))
	for _, n := range c.entries {
		entries = append(entries, Entry{Key: n.key, Value: n.value, Freq: n.freq})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	groups := make(map[int][]int, len(c.buckets))
	for f, b := range c.buckets {
		for n := b.head; n != nil; n = n.next {
			groups[f] = append(groups[f], n.key)
		}
	}
	return entries, groups
}

func (c *LFU) snapshot() *lfuState {
	if !c.rec.Enabled() {
		return nil
	}
	entries, groups := c.Snapshot()
	minFreq := c.minFreq
	if len(entries) == 0 {
		minFreq = 0
	}
	return &lfuState{Op: c.op, Capacity: c.capacity, Entries: entries, FreqGroups: groups, MinFreq: minFreq}
}

// RunLFU executes put(k,v) and get(k) operations against a fresh cache and
// returns one output per operation: "null" for put, the value or -1 for get.
func RunLFU(capacity int, ops []parse.Op, rec *trace.Recorder) ([]string, error) {
	if err := checkOps(ops); err != nil {
		return nil, err
	}
	c := NewLFU(capacity, rec)
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op.Name {
		case "put":
			c.Put(op.Args[0], op.Args[1])
			out = append(out, "null")
		case "get":
			v, _ := c.Get(op.Args[0])
			out = append(out, strconv.Itoa(v))
		}
	}
	return out, nil
}

func checkOps(ops []parse.Op) error {
	for _, op := range ops {
		switch op.Name {
		case "put":
			if err := parse.Arity(op, 2); err != nil {
				return err
			}
		case "get":
			if err := parse.Arity(op, 1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownOp, op)
		}
	}
	return nil
}
