package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Item struct {
	Name     string
	Category string
	Summary  string
}

// Picker is a menu of algorithms. After the program exits, Selected reports
// the choice, if any.
type Picker struct {
	items    []Item
	cursor   int
	chosen   bool
	canceled bool
}

func NewPicker(items []Item) Picker {
	return Picker{items: items}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		p.canceled = true
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "enter", " ":
		if len(p.items) > 0 {
			p.chosen = true
			return p, tea.Quit
		}
	}
	return p, nil
}

// Selected returns the chosen algorithm name.
func (p Picker) Selected() (string, bool) {
	if !p.chosen || p.canceled {
		return "", false
	}
	return p.items[p.cursor].Name, true
}

func (p Picker) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + titleStyle.Render("a l g o s c o p e") + "\n")
	b.WriteString(subtleStyle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")

	category := ""
	for i, it := range p.items {
		if it.Category != category {
			category = it.Category
			b.WriteString("\n    " + labelStyle.Render(category) + "\n")
		}
		name := fmt.Sprintf("%-18s", it.Name)
		if i == p.cursor {
			b.WriteString("      " + titleStyle.Render("▸ ") + valueStyle.Render(name) + codeStyle.Render(it.Summary) + "\n")
		} else {
			b.WriteString("        " + codeStyle.Render(name) + subtleStyle.Render(it.Summary) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(keyHint.Render("      ↑↓ select   enter play   q quit") + "\n")

	return b.String()
}
