package metrics

import "github.com/san-kum/algoscope/internal/trace"

func size(f trace.Frame) (int, bool) {
	sz, ok := f.State.(trace.Sizer)
	if !ok {
		return 0, false
	}
	return sz.Size(), true
}

// PeakSize is the largest size the working structure reached.
type PeakSize struct {
	peak int
}

func NewPeakSize() *PeakSize { return &PeakSize{} }

func (p *PeakSize) Name() string { return "peak_size" }

func (p *PeakSize) Observe(f trace.Frame) {
	if n, ok := size(f); ok && n > p.peak {
		p.peak = n
	}
}

func (p *PeakSize) Value() float64 { return float64(p.peak) }

func (p *PeakSize) Reset() { p.peak = 0 }

// MeanSize averages the working structure size over frames that report one.
type MeanSize struct {
	total   int
	samples int
}

func NewMeanSize() *MeanSize { return &MeanSize{} }

func (m *MeanSize) Name() string { return "mean_size" }

func (m *MeanSize) Observe(f trace.Frame) {
	if n, ok := size(f); ok {
		m.total += n
		m.samples++
	}
}

func (m *MeanSize) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanSize) Reset() {
	m.total = 0
	m.samples = 0
}
