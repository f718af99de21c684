package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoscope/internal/greedy"
	"github.com/san-kum/algoscope/internal/trace"
)

func TestTwoCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		costs  [][2]int
		total  int
		assign string
	}{
		{"leetcode 1", [][2]int{{10, 20}, {30, 200}, {400, 50}, {30, 20}}, 110, "AABB"},
		{"leetcode 2", [][2]int{{259, 770}, {448, 54}, {926, 667}, {184, 139}, {840, 118}, {577, 469}}, 1859, "ABBABA"},
		{"pair", [][2]int{{5, 1}, {1, 5}}, 2, "BA"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := greedy.TwoCity(tt.costs, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.assign, string(got.Assignment))
		})
	}
}

func TestTwoCityHistory(t *testing.T) {
	t.Parallel()

	rec := trace.NewRecorder()
	_, err := greedy.TwoCity([][2]int{{10, 20}, {30, 200}, {400, 50}, {30, 20}}, rec)
	require.NoError(t, err)

	h := rec.History()
	assert.Equal(t, 6, h.Len())
	first, _ := h.At(0)
	assign, _ := first.Step().Field("assignment")
	assert.Equal(t, "....", assign)
	assert.Equal(t, 0, first.Step().Size)

	last, _ := h.Last()
	total, _ := last.Step().Field("total")
	assert.Equal(t, "110", total)
	assert.Equal(t, 4, last.Step().Size)
}

func TestTwoCityErrors(t *testing.T) {
	t.Parallel()

	_, err := greedy.TwoCity(nil, nil)
	require.ErrorIs(t, err, greedy.ErrNoPeople)
	_, err = greedy.TwoCity([][2]int{{1, 2}, {3, 4}, {5, 6}}, nil)
	require.ErrorIs(t, err, greedy.ErrOddPeople)
}
