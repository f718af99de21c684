package arrays

import (
	"fmt"

	"github.com/san-kum/algoscope/internal/trace"
)

// LongestOnesCode is the pseudo-code for LongestOnes.
var LongestOnesCode = []string{
	"left = 0, zeros = 0, best = 0",
	"for right in 0..n-1:",
	"    if a[right] == 0: zeros++",
	"    while zeros > k:",
	"        if a[left] == 0: zeros--",
	"        left++",
	"    best = max(best, right - left + 1)",
	"return best",
}

// LongestOnes returns the length of the longest run of ones obtainable by
// flipping at most k zeros.
func LongestOnes(nums []int, k int, rec *trace.Recorder) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyArray
	}
	if k < 0 {
		return 0, fmt.Errorf("%w: k = %d", ErrNegative, k)
	}
	for _, v := range nums {
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("%w: got %d", ErrNotBinary, v)
		}
	}

	st := newScan(nums).at("left", 0).at("right", -1).set("zeros", 0).set("best", 0).set("k", k)
	rec.Recordf(1, st, "window is empty, up to %d flips allowed", k)

	left, zeros, best := 0, 0, 0
	for right, v := range nums {
		st.at("right", right)
		st.Window = right - left + 1
		if v == 0 {
			zeros++
			rec.Recordf(3, st.set("zeros", zeros), "a[%d] is 0, zeros in window = %d", right, zeros)
		} else {
			rec.Recordf(2, st, "extend window to include a[%d]", right)
		}
		for zeros > k {
			if nums[left] == 0 {
				zeros--
			}
			left++
			st.Window = right - left + 1
			rec.Recordf(6, st.at("left", left).set("zeros", zeros), "too many zeros, shrink: left = %d", left)
		}
		if w := right - left + 1; w > best {
			best = w
			rec.Recordf(7, st.set("best", best), "new best window [%d..%d] of length %d", left, right, best)
		}
	}

	rec.Recordf(8, st, "longest window = %d", best)
	return best, nil
}
