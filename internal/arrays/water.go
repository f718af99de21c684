package arrays

import (
	"github.com/san-kum/algoscope/internal/trace"
)

// MaxAreaCode is the pseudo-code for MaxArea.
var MaxAreaCode = []string{
	"left = 0, right = n-1, best = 0",
	"while left < right:",
	"    area = min(h[left], h[right]) * (right - left)",
	"    best = max(best, area)",
	"    if h[left] < h[right]: left++",
	"    else: right--",
	"return best",
}

// MaxArea returns the most water a container formed by two lines can hold.
func MaxArea(heights []int, rec *trace.Recorder) (int, error) {
	if len(heights) == 0 {
		return 0, ErrEmptyArray
	}
	if err := checkNonNegative(heights); err != nil {
		return 0, err
	}

	left, right, best := 0, len(heights)-1, 0
	st := newScan(heights).at("left", left).at("right", right).set("area", 0).set("best", 0)
	st.Window = right - left + 1
	rec.Recordf(1, st, "pointers at both ends")

	for left < right {
		area := min(heights[left], heights[right]) * (right - left)
		rec.Recordf(3, st.set("area", area), "min(%d, %d) * %d = %d",
			heights[left], heights[right], right-left, area)
		if area > best {
			best = area
			rec.Recordf(4, st.set("best", best), "new best area %d", best)
		}
		if heights[left] < heights[right] {
			left++
			st.Window = right - left + 1
			rec.Recordf(5, st.at("left", left), "left side is shorter, move left to %d", left)
		} else {
			right--
			st.Window = right - left + 1
			rec.Recordf(6, st.at("right", right), "right side is not taller, move right to %d", right)
		}
	}

	rec.Recordf(7, st, "max area = %d", best)
	return best, nil
}

// TrapCode is the pseudo-code for Trap.
var TrapCode = []string{
	"left = 0, right = n-1, leftMax = rightMax = 0, water = 0",
	"while left < right:",
	"    if h[left] < h[right]:",
	"        leftMax = max(leftMax, h[left]); water += leftMax - h[left]",
	"        left++",
	"    else:",
	"        rightMax = max(rightMax, h[right]); water += rightMax - h[right]",
	"        right--",
	"return water",
}

// Trap returns the units of rain water trapped between bars.
func Trap(heights []int, rec *trace.Recorder) (int, error) {
	if len(heights) == 0 {
		return 0, ErrEmptyArray
	}
	if err := checkNonNegative(heights); err != nil {
		return 0, err
	}

	left, right := 0, len(heights)-1
	leftMax, rightMax, water := 0, 0, 0
	st := newScan(heights).at("left", left).at("right", right).
		set("left max", 0).set("right max", 0).set("water", 0)
	st.Window = right - left + 1
	rec.Recordf(1, st, "pointers at both ends, no water yet")

	for left < right {
		if heights[left] < heights[right] {
			leftMax = max(leftMax, heights[left])
			gain := leftMax - heights[left]
			water += gain
			rec.Recordf(4, st.set("left max", leftMax).set("water", water),
				"bar %d holds %d (left max %d)", left, gain, leftMax)
			left++
			st.Window = right - left + 1
			rec.Recordf(5, st.at("left", left), "move left to %d", left)
		} else {
			rightMax = max(rightMax, heights[right])
			gain := rightMax - heights[right]
			water += gain
			rec.Recordf(7, st.set("right max", rightMax).set("water", water),
				"bar %d holds %d (right max %d)", right, gain, rightMax)
			right--
			st.Window = right - left + 1
			rec.Recordf(8, st.at("right", right), "move right to %d", right)
		}
	}

	rec.Recordf(9, st, "trapped water = %d", water)
	return water, nil
}
