package arrays

import (
	"github.com/san-kum/algoscope/internal/trace"
)

// SubarrayRangesCode is the pseudo-code for SubarrayRanges. Both passes run
// the same loop; the max pass adds and the min pass subtracts.
var SubarrayRangesCode = []string{
	"total = 0",
	"for pass in (max, min):",
	"    for i in 0..n (i = n flushes the stack):",
	"        while stack and a[top] is dominated by a[i]:",
	"            mid = pop(); left = top or -1",
	"            total ±= a[mid] * (mid - left) * (i - mid)",
	"        push i",
	"return total",
}

// SubarrayRanges returns the sum of max - min over every subarray, counting
// how many subarrays each element is the maximum and minimum of.
func SubarrayRanges(nums []int, rec *trace.Recorder) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyArray
	}

	st := newScan(nums).setString("pass", "max").set("total", 0)
	st.Stack = []int{}
	rec.Recordf(1, st, "total = 0")

	total := contributions(nums, st, rec, "max", 1, 0)
	total = contributions(nums, st, rec, "min", -1, total)

	st.Stack = []int{}
	st.Window = 0
	rec.Recordf(8, st.set("total", total), "sum of ranges = %d", total)
	return total, nil
}

// contributions runs one monotonic stack pass. For sign 1 an index is
// popped when a[top] <= a[i]; for sign -1 when a[top] >= a[i].
func contributions(a []int, st *scanState, rec *trace.Recorder, pass string, sign, total int) int {
	n := len(a)
	stack := make([]int, 0, n)
	st.setString("pass", pass)
	rec.Recordf(2, st, "%s pass", pass)

	dominated := func(top, i int) bool {
		if i == n {
			return true
		}
		if sign > 0 {
			return a[top] <= a[i]
		}
		return a[top] >= a[i]
	}

	for i := 0; i <= n; i++ {
		st.at("i", i)
		for len(stack) > 0 && dominated(stack[len(stack)-1], i) {
			mid := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			left := -1
			if len(stack) > 0 {
				left = stack[len(stack)-1]
			}
			c := a[mid] * (mid - left) * (i - mid)
			total += sign * c
			st.Stack = stack
			st.Window = len(stack)
			rec.Recordf(6, st.set("total", total),
				"a[%d] = %d is the %s of %d subarrays, contributes %d",
				mid, a[mid], pass, (mid-left)*(i-mid), sign*c)
		}
		if i < n {
			stack = append(stack, i)
			st.Stack = stack
			st.Window = len(stack)
			rec.Recordf(7, st, "push %d", i)
		}
	}
	return total
}
