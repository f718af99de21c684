package sorting

import "github.com/san-kum/algoscope/internal/trace"

// MergeSortCode is the pseudo-code that merge sort frames point into.
var MergeSortCode = []string{
	"mergeSort(lo, hi):",
	"    if lo >= hi: return",
	"    mid = (lo + hi) / 2",
	"    mergeSort(lo, mid); mergeSort(mid+1, hi)",
	"    i = lo, j = mid+1",
	"    while i <= mid and j <= hi:",
	"        take smaller of a[i], a[j]",
	"    copy remaining elements",
	"    write merged run back to a[lo..hi]",
}

// MergeSort returns a sorted copy of a using top-down merge sort.
// The input slice is not modified.
func MergeSort(a []int, rec *trace.Recorder) ([]int, error) {
	if len(a) == 0 {
		return nil, ErrEmptyArray
	}
	st := &arrayState{Array: append([]int(nil), a...), Pivot: -1, Hi: len(a) - 1}
	rec.Recordf(1, st, "sort %d elements", len(a))

	buf := make([]int, len(a))
	mergeSort(st, buf, 0, len(a)-1, rec)

	rec.Recordf(9, st.mark(0, len(a)-1), "array sorted")
	return st.Array, nil
}

func mergeSort(st *arrayState, buf []int, lo, hi int, rec *trace.Recorder) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	rec.Recordf(3, st.mark(lo, hi, mid), "split [%d..%d] at %d", lo, hi, mid)

	mergeSort(st, buf, lo, mid, rec)
	mergeSort(st, buf, mid+1, hi, rec)

	a := st.Array
	i, j, k := lo, mid+1, lo
	for i <= mid && j <= hi {
		if a[i] <= a[j] {
			rec.Recordf(7, st.mark(lo, hi, i, j), "%d <= %d, take left", a[i], a[j])
			buf[k] = a[i]
			i++
		} else {
			rec.Recordf(7, st.mark(lo, hi, i, j), "%d > %d, take right", a[i], a[j])
			buf[k] = a[j]
			j++
		}
		k++
	}
	for ; i <= mid; i, k = i+1, k+1 {
		buf[k] = a[i]
	}
	for ; j <= hi; j, k = j+1, k+1 {
		buf[k] = a[j]
	}
	copy(a[lo:hi+1], buf[lo:hi+1])
	rec.Recordf(9, st.mark(lo, hi), "merged [%d..%d]", lo, hi)
}
