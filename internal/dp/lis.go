package dp

import "github.com/san-kum/algoscope/internal/trace"

// LISCode is the pseudo-code for LIS.
var LISCode = []string{
	"len[i] = 1, prev[i] = -1 for all i",
	"for i in 1..n-1:",
	"    for j in 0..i-1:",
	"        if a[j] < a[i] and len[j] + 1 > len[i]:",
	"            len[i] = len[j] + 1, prev[i] = j",
	"end = argmax(len)",
	"follow prev from end to rebuild the sequence",
}

// Subsequence is the result of LIS.
type Subsequence struct {
	Length  int
	Values  []int
	Indices []int
}

// LIS finds a longest strictly increasing subsequence. Among equal lengths
// the one ending earliest wins.
func LIS(nums []int, rec *trace.Recorder) (Subsequence, error) {
	n := len(nums)
	if n == 0 {
		return Subsequence{}, ErrEmptyArray
	}

	length := make([]int, n)
	prev := make([]int, n)
	for i := range length {
		length[i], prev[i] = 1, -1
	}
	st := &tableState{Input: nums, Table: length, Cell: -1, Source: -1}
	rec.Recordf(1, st, "every element alone is a subsequence of length 1")

	for i := 1; i < n; i++ {
		rec.Recordf(2, st.at(i, -1), "best subsequence ending at a[%d] = %d", i, nums[i])
		for j := 0; j < i; j++ {
			if nums[j] < nums[i] && length[j]+1 > length[i] {
				length[i] = length[j] + 1
				prev[i] = j
				rec.Recordf(5, st.at(i, j), "extend from a[%d] = %d: len[%d] = %d", j, nums[j], i, length[i])
			} else {
				rec.Recordf(4, st.at(i, j), "a[%d] = %d does not extend", j, nums[j])
			}
		}
	}

	end := 0
	for i := 1; i < n; i++ {
		if length[i] > length[end] {
			end = i
		}
	}
	rec.Recordf(6, st.at(end, -1), "longest subsequence ends at %d with length %d", end, length[end])

	k := length[end]
	out := Subsequence{Length: k, Values: make([]int, k), Indices: make([]int, k)}
	for i := end; i >= 0; i = prev[i] {
		k--
		out.Indices[k] = i
		out.Values[k] = nums[i]
	}
	rec.Recordf(7, st.set("sequence", joinInts(out.Values)).set("indices", joinInts(out.Indices)),
		"rebuilt sequence %s", joinInts(out.Values))
	return out, nil
}

