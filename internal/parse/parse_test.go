package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/parse"
)

func TestInts(t *testing.T) {
	t.Parallel()

	got, err := parse.Ints(" 5, 2,4  -1\n3")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 4, -1, 3}, got)

	_, err = parse.Ints("  , ")
	require.ErrorIs(t, err, parse.ErrEmptyInput)

	_, err = parse.Ints("1,x,3")
	require.ErrorIs(t, err, parse.ErrSyntax)

	var synErr *parse.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "x", synErr.Token)
}

func TestEdges(t *testing.T) {
	t.Parallel()

	got, err := parse.Edges("A-B, B-C S-T:7")
	require.NoError(t, err)
	assert.Equal(t, []parse.Edge{
		{From: "A", To: "B", Capacity: 1},
		{From: "B", To: "C", Capacity: 1},
		{From: "S", To: "T", Capacity: 7},
	}, got)

	for _, bad := range []string{"AB", "A-", "-B", "A-B:x"} {
		_, err := parse.Edges(bad)
		assert.ErrorIs(t, err, parse.ErrSyntax, bad)
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()

	got, err := parse.Pairs("10:20, 30:200")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{10, 20}, {30, 200}}, got)

	_, err = parse.Pairs("10-20")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

func TestOps(t *testing.T) {
	t.Parallel()

	got, err := parse.Ops("put(1,1) put(2, 2); GET(1),pop()")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, parse.Op{Name: "put", Args: []int{1, 1}}, got[0])
	assert.Equal(t, parse.Op{Name: "put", Args: []int{2, 2}}, got[1])
	assert.Equal(t, parse.Op{Name: "get", Args: []int{1}}, got[2])
	assert.Equal(t, "pop()", got[3].String())

	tests := []string{"put(1,1", "put)1(", "put(a)", "(1)", "put 1"}
	for _, in := range tests {
		_, err := parse.Ops(in)
		assert.ErrorIs(t, err, parse.ErrSyntax, in)
	}

	_, err = parse.Ops("  ")
	assert.ErrorIs(t, err, parse.ErrEmptyInput)
}

func TestArity(t *testing.T) {
	t.Parallel()

	op := parse.Op{Name: "put", Args: []int{1}}
	assert.ErrorIs(t, parse.Arity(op, 2), parse.ErrSyntax)
	assert.NoError(t, parse.Arity(op, 1))
}
