package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/cache"
	"github.com/san-kum/algoscope/internal/parse"
	"github.com/san-kum/algoscope/internal/trace"
)

const leetcode460 = "put(1,1) put(2,2) get(1) put(3,3) get(2) get(3) put(4,4) get(1) get(3) get(4)"

func TestRunLFU_CanonicalExample(t *testing.T) {
	t.Parallel()

	ops, err := parse.Ops(leetcode460)
	require.NoError(t, err)

	rec := trace.NewRecorder()
	out, err := cache.RunLFU(2, ops, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"null", "null", "1", "null", "-1", "3", "null", "-1", "3", "4"}, out)

	last, ok := rec.History().Last()
	require.True(t, ok)
	step := last.Step()
	v, _ := step.Field("cache")
	assert.Equal(t, "{3=3(f3) 4=4(f2)}", v)
	assert.Equal(t, 2, step.Size)
}

func TestLFU_TieBreaksByRecency(t *testing.T) {
	t.Parallel()

	c := cache.NewLFU(2, nil)
	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30) // evicts 1, the older of two freq-1 keys

	_, ok := c.Get(1)
	assert.False(t, ok)
	v, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	entries, groups := c.Snapshot()
	assert.Equal(t, []cache.Entry{{Key: 2, Value: 20, Freq: 2}, {Key: 3, Value: 30, Freq: 1}}, entries)
	assert.Equal(t, map[int][]int{1: {3}, 2: {2}}, groups)
}

func TestLFU_UpdateBumpsFrequency(t *testing.T) {
	t.Parallel()

	c := cache.NewLFU(2, nil)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(1, 100) // freq of 1 becomes 2
	c.Put(3, 3)   // evicts 2

	_, ok := c.Get(2)
	assert.False(t, ok)
	v, _ := c.Get(1)
	assert.Equal(t, 100, v)
	assert.Equal(t, 2, c.Len())
}

func TestLFU_ZeroCapacity(t *testing.T) {
	t.Parallel()

	c := cache.NewLFU(0, trace.NewRecorder())
	c.Put(1, 1)
	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestRunLFU_Errors(t *testing.T) {
	t.Parallel()

	_, err := cache.RunLFU(2, []parse.Op{{Name: "del", Args: []int{1}}}, nil)
	require.ErrorIs(t, err, cache.ErrUnknownOp)

	_, err = cache.RunLFU(2, []parse.Op{{Name: "put", Args: []int{1}}}, nil)
	require.ErrorIs(t, err, parse.ErrSyntax)
}

func TestRunLFU_FrameLimit(t *testing.T) {
	t.Parallel()

	ops, err := parse.Ops(leetcode460)
	require.NoError(t, err)

	rec := trace.NewRecorder(trace.WithLimit(2))
	out, err := cache.RunLFU(2, ops, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"null", "null", "1", "null", "-1", "3", "null", "-1", "3", "4"}, out)
	assert.Equal(t, 2, rec.Len())
	assert.True(t, rec.Truncated())
}
