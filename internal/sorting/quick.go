package sorting

import "github.com/san-kum/algoscope/internal/trace"

// QuickSortCode is the pseudo-code that quick sort frames point into.
var QuickSortCode = []string{
	"quickSort(lo, hi):",
	"    if lo >= hi: return",
	"    pivot = a[hi]; i = lo",
	"    for j in lo..hi-1:",
	"        if a[j] < pivot: swap a[i], a[j]; i++",
	"    swap a[i], a[hi]",
	"    quickSort(lo, i-1); quickSort(i+1, hi)",
}

// QuickSort returns a sorted copy of a using Lomuto partitioning.
func QuickSort(a []int, rec *trace.Recorder) ([]int, error) {
	if len(a) == 0 {
		return nil, ErrEmptyArray
	}
	st := &arrayState{Array: append([]int(nil), a...), Pivot: -1, Hi: len(a) - 1}
	rec.Recordf(1, st, "sort %d elements", len(a))

	quickSort(st, 0, len(a)-1, rec)

	st.Pivot = -1
	rec.Recordf(7, st.mark(0, len(a)-1), "array sorted")
	return st.Array, nil
}

func quickSort(st *arrayState, lo, hi int, rec *trace.Recorder) {
	if lo >= hi {
		return
	}
	a := st.Array
	pivot := a[hi]
	st.Pivot = hi
	rec.Recordf(3, st.mark(lo, hi, hi), "pivot a[%d] = %d", hi, pivot)

	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			rec.Recordf(5, st.mark(lo, hi, i, j), "%d < %d, swap into position %d", a[i], pivot, i)
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	rec.Recordf(6, st.mark(lo, hi, i), "place pivot %d at %d", pivot, i)

	quickSort(st, lo, i-1, rec)
	quickSort(st, i+1, hi, rec)
}
