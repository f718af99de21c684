package viz

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoscope/internal/trace"
)

// Sparkline plots values with asciigraph. It returns "" for fewer than two
// values since a single point has no shape.
func Sparkline(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// SizeSeries extracts the working structure size of every step.
func SizeSeries(steps []trace.Step) []float64 { return sizes(steps) }

// LineSeries extracts the pseudo-code line of every step.
func LineSeries(steps []trace.Step) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = float64(s.Line)
	}
	return out
}

// WriteChart renders an HTML line chart of structure size and active
// pseudo-code line over the steps of a run.
func WriteChart(w io.Writer, title, subtitle string, steps []trace.Step) error {
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = strconv.Itoa(s.Index)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "100%", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
	)
	line.SetXAxis(labels)

	for _, s := range []struct {
		name   string
		values []float64
		color  string
	}{
		{"size", SizeSeries(steps), "#00cc88"},
		{"line", LineSeries(steps), "#cc00cc"},
	} {
		data := make([]opts.LineData, len(s.values))
		for i, v := range s.values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data,
			charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
		)
	}

	return line.Render(w)
}
