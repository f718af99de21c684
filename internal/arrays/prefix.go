package arrays

import (
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/algoscope/internal/trace"
)

// SubarraySumCode is the pseudo-code for SubarraySum.
var SubarraySumCode = []string{
	"seen = {0: 1}, sum = 0, count = 0",
	"for x in a:",
	"    sum += x",
	"    count += seen[sum - k]",
	"    seen[sum]++",
	"return count",
}

// SubarraySum counts the contiguous subarrays whose elements sum to k.
func SubarraySum(nums []int, k int, rec *trace.Recorder) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyArray
	}

	seen := map[int]int{0: 1}
	sum, count := 0, 0
	st := newScan(nums).at("i", -1).set("sum", 0).set("count", 0).setString("seen", formatCounts(seen))
	rec.Recordf(1, st, "empty prefix has sum 0")

	for i, x := range nums {
		sum += x
		st.Window = i + 1
		rec.Recordf(3, st.at("i", i).set("sum", sum), "prefix sum through a[%d] = %d", i, sum)
		if c := seen[sum-k]; c > 0 {
			count += c
			rec.Recordf(4, st.set("count", count),
				"%d earlier prefixes equal %d, count = %d", c, sum-k, count)
		} else {
			rec.Recordf(4, st, "no earlier prefix equals %d", sum-k)
		}
		seen[sum]++
		rec.Recordf(5, st.setString("seen", formatCounts(seen)), "seen[%d] = %d", sum, seen[sum])
	}

	rec.Recordf(6, st, "%d subarrays sum to %d", count, k)
	return count, nil
}

func formatCounts(m map[int]int) string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%d", k, m[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
