// Package metrics holds trace.Metric implementations that summarize a
// recorded history.
package metrics

import "github.com/san-kum/algoscope/internal/trace"

type FrameCount struct {
	n int
}

func NewFrameCount() *FrameCount { return &FrameCount{} }

func (c *FrameCount) Name() string          { return "frames" }
func (c *FrameCount) Observe(_ trace.Frame) { c.n++ }
func (c *FrameCount) Value() float64        { return float64(c.n) }
func (c *FrameCount) Reset()                { c.n = 0 }

// LineCoverage is the fraction of pseudo-code lines that at least one frame
// points at. Frames with line 0 or past the listing are ignored.
type LineCoverage struct {
	lines int
	seen  map[int]struct{}
}

func NewLineCoverage(lines int) *LineCoverage {
	return &LineCoverage{lines: lines, seen: make(map[int]struct{})}
}

func (c *LineCoverage) Name() string { return "line_coverage" }

func (c *LineCoverage) Observe(f trace.Frame) {
	if f.Line >= 1 && f.Line <= c.lines {
		c.seen[f.Line] = struct{}{}
	}
}

func (c *LineCoverage) Value() float64 {
	if c.lines == 0 {
		return 0
	}
	return float64(len(c.seen)) / float64(c.lines)
}

func (c *LineCoverage) Reset() { clear(c.seen) }

// Default returns the metrics every run reports, for an algorithm whose
// pseudo-code has codeLines lines.
func Default(codeLines int) []trace.Metric {
	return []trace.Metric{
		NewFrameCount(),
		NewPeakSize(),
		NewMeanSize(),
		NewLineCoverage(codeLines),
	}
}
