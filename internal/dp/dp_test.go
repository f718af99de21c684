package dp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/dp"
	"github.com/san-kum/algoscope/internal/trace"
)

func TestCoinChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coins  []int
		amount int
		want   int
	}{
		{"classic", []int{1, 2, 5}, 11, 3},
		{"unreachable", []int{2}, 3, -1},
		{"zero amount", []int{1}, 0, 0},
		{"greedy fails", []int{1, 3, 4}, 6, 2},
		{"duplicate coins", []int{5, 5, 1}, 7, 3},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := dp.CoinChange(tt.coins, tt.amount, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoinChangeTable(t *testing.T) {
	t.Parallel()

	rec := trace.NewRecorder()
	_, err := dp.CoinChange([]int{2, 3}, 7, rec)
	require.NoError(t, err)

	first, _ := rec.History().At(0)
	table, _ := first.Step().Field("table")
	assert.Equal(t, "[0 - - - - - - -]", table)

	last, _ := rec.History().Last()
	table, _ = last.Step().Field("table")
	assert.Equal(t, "[0 - 1 1 2 2 2 3]", table)
	assert.Equal(t, 7, last.Step().Size)
}

func TestCoinChangeErrors(t *testing.T) {
	t.Parallel()

	_, err := dp.CoinChange(nil, 3, nil)
	require.ErrorIs(t, err, dp.ErrNoCoins)
	_, err = dp.CoinChange([]int{0}, 3, nil)
	require.ErrorIs(t, err, dp.ErrNegative)
	_, err = dp.CoinChange([]int{1}, -1, nil)
	require.ErrorIs(t, err, dp.ErrNegative)
	_, err = dp.CoinChange([]int{1}, math.MaxInt, nil)
	require.ErrorIs(t, err, dp.ErrTooLarge)
	_, err = dp.CoinChange([]int{1}, dp.MaxAmount+1, nil)
	require.ErrorIs(t, err, dp.ErrTooLarge)
}

func TestLIS(t *testing.T) {
	t.Parallel()

	got, err := dp.LIS([]int{10, 9, 2, 5, 3, 7, 101, 18}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Length)
	assert.Equal(t, []int{2, 5, 7, 101}, got.Values)
	assert.Equal(t, []int{2, 3, 5, 6}, got.Indices)

	got, err = dp.LIS([]int{7, 7, 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Length)
	assert.Equal(t, []int{7}, got.Values)

	_, err = dp.LIS(nil, nil)
	require.ErrorIs(t, err, dp.ErrEmptyArray)
}

func TestLISHistory(t *testing.T) {
	t.Parallel()

	rec := trace.NewRecorder()
	_, err := dp.LIS([]int{0, 1, 0, 3, 2, 3}, rec)
	require.NoError(t, err)

	last, _ := rec.History().Last()
	seq, ok := last.Step().Field("sequence")
	require.True(t, ok)
	assert.Equal(t, "[0 1 2 3]", seq)
	table, _ := last.Step().Field("table")
	assert.Equal(t, "[1 2 1 3 3 4]", table)
}

func TestLISNegativeValues(t *testing.T) {
	t.Parallel()

	rec := trace.NewRecorder()
	got, err := dp.LIS([]int{-1, 2, -3}, rec)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2}, got.Values)

	last, _ := rec.History().Last()
	step := last.Step()
	input, _ := step.Field("input")
	assert.Equal(t, "[-1 2 -3]", input)
	seq, _ := step.Field("sequence")
	assert.Equal(t, "[-1 2]", seq)
	indices, _ := step.Field("indices")
	assert.Equal(t, "[0 1]", indices)
}
