package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// HelpModel shows context-sensitive key reference in a scrollable viewport.
type HelpModel struct {
	returnTo sessionState
	view     viewport.Model
	width    int
	height   int
}

func NewHelpModel(returnTo sessionState) *HelpModel {
	return &HelpModel{returnTo: returnTo, view: viewport.New(72, 20)}
}

func (m *HelpModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.view.Width = min(w-4, 76)
	m.view.Height = h - 5
	if m.view.Height < 4 {
		m.view.Height = 4
	}
	m.view.SetContent(m.content())
}

func (m *HelpModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			returnTo := m.returnTo
			return func() tea.Msg { return closeHelpMsg(returnTo) }
		}
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return cmd
}

func (m *HelpModel) View() string {
	title := titleStyle.Render("help")
	footer := dimStyle.Render("↑/↓ scroll • esc close")
	return "\n " + title + "\n\n" + m.view.View() + "\n\n " + footer
}

func (m *HelpModel) content() string {
	var b strings.Builder

	section := func(name string, keys [][2]string) {
		b.WriteString(titleStyle.Render(name))
		b.WriteString("\n")
		for _, k := range keys {
			b.WriteString("  ")
			b.WriteString(statusStyle.Render(padKey(k[0])))
			b.WriteString(k[1])
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch m.returnTo {
	case editorView:
		section("selection", [][2]string{
			{"tab / shift+tab", "cycle zone selection"},
		})
		section("editing", [][2]string{
			{"arrows", "move zone (snaps to grid and neighbor edges)"},
			{"shift+arrows", "resize zone"},
			{"a", "add zone"},
			{"d", "delete zone"},
			{"D", "delete zone, neighbors fill the gap"},
			{"y", "duplicate zone"},
			{"s / S", "split zone vertically / horizontally"},
			{"f", "expand zone into surrounding empty space"},
			{"r", "rename zone"},
			{"#", "change zone number"},
		})
		section("clipboard", [][2]string{
			{"c", "copy selected zones"},
			{"x", "cut selected zones"},
			{"v", "paste zones with offset"},
		})
		section("ordering", [][2]string{
			{"[ / ]", "send backward / bring forward"},
			{"{ / }", "send to back / bring to front"},
		})
		section("session", [][2]string{
			{"u", "undo"},
			{"ctrl+r", "redo"},
			{"ctrl+s", "save layout"},
			{"esc", "back to layout list"},
		})
	default:
		section("layouts", [][2]string{
			{"↑/↓", "move cursor"},
			{"enter", "open layout in editor"},
			{"n", "create new layout"},
			{"d", "delete layout"},
			{"q", "quit"},
		})
	}

	text := b.String()
	if m.view.Width > 0 {
		text = wordwrap.String(text, m.view.Width)
	}
	return text
}

func padKey(k string) string {
	const width = 18
	if len(k) >= width {
		return k + " "
	}
	return k + strings.Repeat(" ", width-len(k))
}
