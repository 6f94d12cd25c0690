// Package tui is the interactive editing surface: a layout browser and a
// zone editor rendered as a character canvas. It is a thin shim over the
// editor controller; every mutation goes through controller methods so the
// TUI gets validation, snapping and undo for free.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zoner/zoner-cli/pkg/editor"
	"github.com/zoner/zoner-cli/pkg/files"
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/shaders"
)

type sessionState int

const (
	layoutListView sessionState = iota
	editorView
	helpView
)

// App is the root bubbletea model.
type App struct {
	state    sessionState
	settings *models.Settings
	store    *files.Store
	shaders  *shaders.Catalog

	list   *LayoutListModel
	editor *EditorModel
	help   *HelpModel

	width  int
	height int
}

// NewApp creates the TUI over a layout store and settings.
func NewApp(store *files.Store, settings *models.Settings) *App {
	catalog := shaders.NewBuiltinCatalog()
	return &App{
		state:    layoutListView,
		settings: settings,
		store:    store,
		shaders:  catalog,
		list:     NewLayoutListModel(store),
	}
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}
		if a.help != nil {
			a.help.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case openLayoutMsg:
		ctrl := editor.NewController(a.settings, a.store, a.shaders, editor.SystemClipboard{})
		if msg.layoutID != "" {
			if err := ctrl.LoadLayout(msg.layoutID); err != nil {
				a.list.setError(err)
				return a, nil
			}
		} else {
			ctrl.NewLayoutSession(msg.newName)
		}
		a.editor = NewEditorModel(ctrl)
		a.editor.SetSize(a.width, a.height)
		a.state = editorView
		return a, nil

	case closeEditorMsg:
		if a.editor != nil {
			a.editor.controller.Close()
			a.editor = nil
		}
		a.state = layoutListView
		a.list.reload()
		return a, nil

	case openHelpMsg:
		a.help = NewHelpModel(sessionState(msg))
		a.help.SetSize(a.width, a.height)
		a.state = helpView
		return a, nil

	case closeHelpMsg:
		if a.editor != nil && sessionState(msg) == editorView {
			a.state = editorView
		} else {
			a.state = layoutListView
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case layoutListView:
		cmd = a.list.Update(msg)
	case editorView:
		cmd = a.editor.Update(msg)
	case helpView:
		cmd = a.help.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	switch a.state {
	case editorView:
		return a.editor.View()
	case helpView:
		return a.help.View()
	default:
		return a.list.View()
	}
}

// Messages between sub-models.

type openLayoutMsg struct {
	layoutID string
	newName  string
}

type closeEditorMsg struct{}

type openHelpMsg sessionState

type closeHelpMsg sessionState
