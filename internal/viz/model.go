package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoscope/internal/player"
	"github.com/san-kum/algoscope/internal/trace"
)

const (
	defaultWidth  = 100
	sparkWidth    = 40
	sparkHeight   = 4
	progressWidth = 30
)

type TickMsg time.Time

// ReloadFunc reruns the algorithm and returns a fresh history.
type ReloadFunc func() ([]trace.Step, error)

// Model is the interactive player. It renders the pseudo-code with the
// current line highlighted, the state fields of the current step and its
// explanation.
type Model struct {
	title    string
	code     []string
	player   *player.Player
	reload   ReloadFunc
	sizes    []float64
	width    int
	showHelp bool
	err      error
}

func NewModel(title string, code []string, p *player.Player) Model {
	return Model{
		title:  title,
		code:   code,
		player: p,
		sizes:  sizes(p.Steps()),
		width:  defaultWidth,
	}
}

// WithReload enables the R key.
func (m Model) WithReload(fn ReloadFunc) Model {
	m.reload = fn
	return m
}

func (m Model) Player() *player.Player { return m.player }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.player.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and timer beats.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.player.Toggle()
		case "right", "l":
			m.player.Pause()
			m.player.Next()
		case "left", "h":
			m.player.Pause()
			m.player.Prev()
		case "g", "home":
			m.player.First()
		case "G", "end":
			m.player.Last()
		case "+", "=":
			m.player.Faster()
		case "-", "_":
			m.player.Slower()
		case "L":
			m.player.SetLoop(!m.player.Loop())
		case "r":
			m.player.Reset()
		case "R":
			m.rerun()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		m.player.Tick()
		return m, m.tick()
	}
	return m, nil
}

// rerun replaces the history wholesale with a fresh run.
func (m *Model) rerun() {
	if m.reload == nil {
		return
	}
	steps, err := m.reload()
	if err != nil {
		m.err = err
		return
	}
	p, err := player.New(steps, player.WithInterval(m.player.Interval()), player.WithLoop(m.player.Loop()))
	if err != nil {
		m.err = err
		return
	}
	m.player, m.sizes, m.err = p, sizes(steps), nil
}

// View renders the TUI interface.
func (m Model) View() string {
	step := m.player.Current()
	cursor, total := m.player.Cursor(), m.player.Len()

	status := statusPaused.Render("PAUSED")
	if m.player.Playing() {
		status = statusPlaying.Render("PLAYING")
	}
	if m.player.Loop() {
		status += subtleStyle.Render(" (loop)")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(strings.ToUpper(m.title)) + "  " + status + "\n")
	progress := 1.0
	if total > 1 {
		progress = float64(cursor) / float64(total-1)
	}
	s.WriteString(fmt.Sprintf("%s step %d/%d  %s\n\n",
		ProgressBar(progress, progressWidth), cursor+1, total, subtleStyle.Render(m.player.Interval().String())))

	codeView := panelStyle.Render(RenderCode(m.code, step.Line))
	stateView := panelStyle.Render(RenderFields(step.Fields))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, codeView, " ", stateView) + "\n\n")
	s.WriteString(explStyle.Render(step.Explanation) + "\n")

	if values := Sparkline(step.Series, sparkWidth, sparkHeight, "values"); values != "" {
		s.WriteString("\n" + values + "\n")
	}
	if spark := Sparkline(m.sizes[:cursor+1], sparkWidth, sparkHeight, "size"); spark != "" {
		s.WriteString("\n" + spark + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render("rerun failed: "+m.err.Error()) + "\n")
	}

	s.WriteString("\n" + Separator(min(m.width, 60)) + "\n")
	s.WriteString(keyHint.Render("SP:Play/Pause ←→:Step g/G:First/Last +/-:Speed r:Rewind R:Rerun ?:Help Q:Quit"))

	if m.showHelp {
		return helpOverlay + "\n\n" + s.String()
	}
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  Right/L  - Next step                ║
║  Left/H   - Previous step            ║
║  g / G    - First / last step        ║
║  + / -    - Faster / slower          ║
║  Shift+L  - Toggle looping           ║
║  r        - Rewind and pause         ║
║  R        - Rerun the algorithm      ║
║  ?        - Toggle this help         ║
║  q        - Quit                     ║
╚══════════════════════════════════════╝`

// RenderCode lists the pseudo-code with 1-based line numbers, highlighting
// line active. Line 0 highlights nothing.
func RenderCode(code []string, active int) string {
	width := 0
	for _, l := range code {
		width = max(width, len(l))
	}
	lines := make([]string, len(code))
	for i, l := range code {
		text := fmt.Sprintf("%2d  %-*s", i+1, width, l)
		if i+1 == active {
			lines[i] = activeLineStyle.Render("▶ " + text)
		} else {
			lines[i] = codeStyle.Render("  " + text)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderFields lays out state fields as label/value rows.
func RenderFields(fields []trace.Field) string {
	if len(fields) == 0 {
		return subtleStyle.Render("(no state)")
	}
	rows := make([]string, len(fields))
	for i, f := range fields {
		rows[i] = labelStyle.Render(f.Name) + valueStyle.Render(f.Value)
	}
	return strings.Join(rows, "\n")
}

func sizes(steps []trace.Step) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = float64(s.Size)
	}
	return out
}
