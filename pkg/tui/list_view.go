package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zoner/zoner-cli/pkg/files"
	"github.com/zoner/zoner-cli/pkg/models"
)

// LayoutListModel is the layout browser: pick a layout to edit, create a new
// one or delete one.
type LayoutListModel struct {
	store   *files.Store
	layouts []*models.Layout
	cursor  int
	err     error

	naming    bool
	nameInput textinput.Model

	width  int
	height int
}

// NewLayoutListModel creates the browser over a layout store.
func NewLayoutListModel(store *files.Store) *LayoutListModel {
	input := textinput.New()
	input.Placeholder = "layout name"
	input.CharLimit = 100

	m := &LayoutListModel{store: store, nameInput: input}
	m.reload()
	return m
}

func (m *LayoutListModel) Init() tea.Cmd {
	return nil
}

func (m *LayoutListModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *LayoutListModel) setError(err error) {
	m.err = err
}

func (m *LayoutListModel) reload() {
	layouts, err := m.store.ListLayouts()
	if err != nil {
		m.err = err
		return
	}
	m.layouts = layouts
	if m.cursor >= len(layouts) {
		m.cursor = len(layouts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *LayoutListModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.naming {
		switch keyMsg.Type {
		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			m.naming = false
			if name == "" {
				return nil
			}
			return func() tea.Msg { return openLayoutMsg{newName: name} }
		case tea.KeyEsc:
			m.naming = false
			return nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	}

	m.err = nil
	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.layouts)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.layouts) > 0 {
			id := m.layouts[m.cursor].ID
			return func() tea.Msg { return openLayoutMsg{layoutID: id} }
		}
	case "n":
		m.naming = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return textinput.Blink
	case "d":
		if len(m.layouts) > 0 {
			if err := m.store.DeleteLayout(m.layouts[m.cursor].ID); err != nil {
				m.err = err
			} else {
				m.reload()
			}
		}
	case "?":
		return func() tea.Msg { return openHelpMsg(layoutListView) }
	}
	return nil
}

func (m *LayoutListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("zoner — layouts"))
	b.WriteString("\n\n")

	if len(m.layouts) == 0 {
		b.WriteString(dimStyle.Render("  no layouts yet — press n to create one"))
		b.WriteString("\n")
	}
	for i, l := range m.layouts {
		line := fmt.Sprintf("%s  (%d zones)", l.Name, len(l.Zones))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	// Preview of the highlighted layout.
	if len(m.layouts) > 0 && m.width > 40 && m.height > 14 {
		preview := RenderPreview(m.layouts[m.cursor].Zones, nil, min(m.width-6, 60), min(m.height-10, 18))
		b.WriteString("\n")
		b.WriteString(previewStyle.Render(preview))
		b.WriteString("\n")
	}

	if m.naming {
		b.WriteString("\nname: " + m.nameInput.View() + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter edit • n new • d delete • ? help • q quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
