package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zoner/zoner-cli/pkg/editor"
	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
)

type editorMode int

const (
	modeNormal editorMode = iota
	modeRename
	modeRenumber
)

// EditorModel is the zone editing screen over one controller session.
type EditorModel struct {
	controller *editor.Controller
	mode       editorMode
	input      textinput.Model
	status     string
	err        error

	confirmClose bool

	width  int
	height int
}

// NewEditorModel wraps an editing session.
func NewEditorModel(ctrl *editor.Controller) *EditorModel {
	input := textinput.New()
	input.CharLimit = 100
	m := &EditorModel{controller: ctrl, input: input}
	if zs := ctrl.Zones(); len(zs) > 0 {
		ctrl.SetSelection([]string{zs[0].ID})
	}
	return m
}

func (m *EditorModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// nudge is the move/resize step for keyboard editing, aligned with the grid
// snap interval so nudged zones land on grid lines.
func (m *EditorModel) nudge() float64 {
	s := m.controller.Settings()
	if s.Snapping.GridIntervalX > 0 {
		return s.Snapping.GridIntervalX
	}
	return 0.05
}

func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.mode != modeNormal {
		return m.updateInput(keyMsg, msg)
	}

	m.status = ""
	m.err = nil

	switch keyMsg.String() {
	case "esc":
		if m.controller.IsDirty() && !m.confirmClose {
			m.confirmClose = true
			m.status = "unsaved changes — esc again to discard"
			return nil
		}
		return func() tea.Msg { return closeEditorMsg{} }
	case "tab":
		m.cycleSelection(1)
	case "shift+tab":
		m.cycleSelection(-1)
	case "up", "down", "left", "right":
		m.moveSelected(keyMsg.String())
	case "shift+up", "shift+down", "shift+left", "shift+right":
		m.resizeSelected(strings.TrimPrefix(keyMsg.String(), "shift+"))
	case "a":
		id, err := m.controller.AddZone(models.Rect{X: 0.35, Y: 0.35, Width: 0.3, Height: 0.3})
		if m.fail(err) {
			return nil
		}
		m.controller.SetSelection([]string{id})
		m.status = "zone added"
	case "d":
		m.deleteSelected(false)
	case "D":
		m.deleteSelected(true)
	case "y":
		if id := m.controller.PrimarySelection(); id != "" {
			newID, err := m.controller.DuplicateZone(id)
			if !m.fail(err) {
				m.controller.SetSelection([]string{newID})
				m.status = "zone duplicated"
			}
		}
	case "s":
		m.splitSelected(false)
	case "S":
		m.splitSelected(true)
	case "f":
		if id := m.controller.PrimarySelection(); id != "" {
			m.fail(m.controller.ExpandZone(id, nil))
		}
	case "c":
		if !m.fail(m.controller.CopySelection()) {
			m.status = "copied"
		}
	case "x":
		if !m.fail(m.controller.CutSelection()) {
			m.status = "cut"
		}
	case "v":
		if !m.fail(m.controller.Paste(true)) {
			m.status = "pasted"
		}
	case "u":
		m.controller.Undo()
		m.status = undoStatus("undo", m.controller.RedoLabel())
	case "ctrl+r":
		m.status = undoStatus("redo", m.controller.RedoLabel())
		m.controller.Redo()
	case "[":
		if id := m.controller.PrimarySelection(); id != "" {
			m.fail(m.controller.SendBackward(id))
		}
	case "]":
		if id := m.controller.PrimarySelection(); id != "" {
			m.fail(m.controller.BringForward(id))
		}
	case "{":
		if id := m.controller.PrimarySelection(); id != "" {
			m.fail(m.controller.SendToBack(id))
		}
	case "}":
		if id := m.controller.PrimarySelection(); id != "" {
			m.fail(m.controller.BringToFront(id))
		}
	case "r":
		if id := m.controller.PrimarySelection(); id != "" {
			zone, _ := m.controller.Store().Zone(id)
			m.mode = modeRename
			m.input.SetValue(zone.Name)
			m.input.Placeholder = "zone name"
			m.input.Focus()
			return textinput.Blink
		}
	case "#":
		if id := m.controller.PrimarySelection(); id != "" {
			zone, _ := m.controller.Store().Zone(id)
			m.mode = modeRenumber
			m.input.SetValue(strconv.Itoa(zone.Number))
			m.input.Placeholder = "zone number (1-99)"
			m.input.Focus()
			return textinput.Blink
		}
	case "ctrl+s":
		if m.fail(m.controller.SaveLayout()) {
			return nil
		}
		m.status = "saved"
	case "?":
		return func() tea.Msg { return openHelpMsg(editorView) }
	}

	if keyMsg.String() != "esc" {
		m.confirmClose = false
	}
	return nil
}

func (m *EditorModel) updateInput(keyMsg tea.KeyMsg, msg tea.Msg) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		id := m.controller.PrimarySelection()
		switch m.mode {
		case modeRename:
			m.fail(m.controller.RenameZone(id, value))
		case modeRenumber:
			n, err := strconv.Atoi(value)
			if err != nil {
				m.err = fmt.Errorf("not a number: %s", value)
			} else {
				m.fail(m.controller.RenumberZone(id, n))
			}
		}
		m.mode = modeNormal
		return nil
	case tea.KeyEsc:
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// fail records an error for the status line; returns true when err != nil.
func (m *EditorModel) fail(err error) bool {
	if err != nil {
		m.err = err
		return true
	}
	return false
}

func (m *EditorModel) cycleSelection(dir int) {
	zs := m.controller.Zones()
	if len(zs) == 0 {
		return
	}
	current := -1
	if id := m.controller.PrimarySelection(); id != "" {
		current = m.controller.Store().IndexOf(id)
	}
	next := (current + dir + len(zs)) % len(zs)
	m.controller.SetSelection([]string{zs[next].ID})
}

func (m *EditorModel) moveSelected(dir string) {
	id := m.controller.PrimarySelection()
	if id == "" {
		return
	}
	zone, ok := m.controller.Store().Zone(id)
	if !ok {
		return
	}
	g := zone.Geometry
	step := m.nudge()
	switch dir {
	case "up":
		g.Y -= step
	case "down":
		g.Y += step
	case "left":
		g.X -= step
	case "right":
		g.X += step
	}
	m.fail(m.controller.UpdateZoneGeometry(id, g, geometry.AllEdges()))
}

func (m *EditorModel) resizeSelected(dir string) {
	id := m.controller.PrimarySelection()
	if id == "" {
		return
	}
	zone, ok := m.controller.Store().Zone(id)
	if !ok {
		return
	}
	g := zone.Geometry
	step := m.nudge()
	edges := geometry.Edges{}
	switch dir {
	case "up":
		g.Height -= step
		edges.Bottom = true
	case "down":
		g.Height += step
		edges.Bottom = true
	case "left":
		g.Width -= step
		edges.Right = true
	case "right":
		g.Width += step
		edges.Right = true
	}
	m.fail(m.controller.UpdateZoneGeometry(id, g, edges))
}

func (m *EditorModel) deleteSelected(autoFill bool) {
	id := m.controller.PrimarySelection()
	if id == "" {
		return
	}
	if !m.fail(m.controller.DeleteZone(id, autoFill)) {
		m.status = "zone deleted"
	}
}

func (m *EditorModel) splitSelected(horizontal bool) {
	id := m.controller.PrimarySelection()
	if id == "" {
		return
	}
	newID, err := m.controller.SplitZone(id, horizontal)
	if !m.fail(err) {
		m.controller.SetSelection([]string{newID})
		m.status = "zone split"
	}
}

func undoStatus(verb, label string) string {
	if label == "" {
		return verb
	}
	return verb + ": " + label
}

func (m *EditorModel) View() string {
	layout := m.controller.Layout()
	name := layout.Name
	if name == "" {
		name = "(unnamed)"
	}

	title := titleStyle.Render("zoner — " + name)
	if m.controller.IsDirty() {
		title += dirtyStyle.Render(" *")
	}

	selected := make(map[string]bool)
	for _, id := range m.controller.Selection() {
		selected[id] = true
	}
	pw := min(m.width-6, 80)
	ph := min(m.height-8, 24)
	if pw < 20 {
		pw = 20
	}
	if ph < 8 {
		ph = 8
	}
	preview := previewStyle.Render(RenderPreview(m.controller.Zones(), selected, pw, ph))

	var footer string
	switch {
	case m.mode == modeRename:
		footer = "rename: " + m.input.View()
	case m.mode == modeRenumber:
		footer = "number: " + m.input.View()
	case m.err != nil:
		footer = errorStyle.Render(m.err.Error())
	case m.status != "":
		footer = statusStyle.Render(m.status)
	default:
		footer = dimStyle.Render("tab select • arrows move • shift+arrows resize • a add • d/D delete • s/S split • u undo • ctrl+s save • ? help")
	}

	info := m.selectionInfo()

	return lipgloss.NewStyle().Padding(1, 2).Render(
		title + "\n\n" + preview + "\n" + info + "\n" + footer,
	)
}

func (m *EditorModel) selectionInfo() string {
	id := m.controller.PrimarySelection()
	if id == "" {
		return dimStyle.Render("no zone selected")
	}
	zone, ok := m.controller.Store().Zone(id)
	if !ok {
		return ""
	}
	g := zone.Geometry
	label := fmt.Sprintf("zone %d", zone.Number)
	if zone.Name != "" {
		label += " " + zone.Name
	}
	return dimStyle.Render(fmt.Sprintf("%s — x %.2f y %.2f w %.2f h %.2f", label, g.X, g.Y, g.Width, g.Height))
}
