package viz

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/san-kum/algoscope/internal/trace"
)

// Printer writes steps as colored text. It satisfies trace.Observer so a
// runner can stream frames through it.
type Printer struct {
	w    io.Writer
	code []string

	index *color.Color
	line  *color.Color
	expl  *color.Color
	label *color.Color
}

func NewPrinter(w io.Writer, code []string) *Printer {
	return &Printer{
		w:     w,
		code:  code,
		index: color.New(color.FgHiBlack),
		line:  color.New(color.FgMagenta, color.Bold),
		expl:  color.New(color.FgCyan),
		label: color.New(color.FgYellow),
	}
}

func (p *Printer) OnFrame(f trace.Frame) { p.Step(f.Step()) }

func (p *Printer) Step(s trace.Step) {
	p.index.Fprintf(p.w, "[%4d] ", s.Index)
	if s.Line > 0 && s.Line <= len(p.code) {
		p.line.Fprintf(p.w, "%2d: %s", s.Line, p.code[s.Line-1])
	} else {
		p.line.Fprintf(p.w, "%2d", s.Line)
	}
	fmt.Fprintln(p.w)
	p.expl.Fprintf(p.w, "       %s\n", s.Explanation)
	for _, f := range s.Fields {
		p.label.Fprintf(p.w, "       %-12s ", f.Name)
		fmt.Fprintln(p.w, f.Value)
	}
}

func (p *Printer) Steps(steps []trace.Step) {
	for _, s := range steps {
		p.Step(s)
	}
}
