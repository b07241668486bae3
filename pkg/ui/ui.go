// Package ui is the demo binding for the scaling engine: a bubbletea program
// that treats the terminal cell grid as the viewport. It pushes every resize
// into the engine and renders the resulting tier, scale factors, and token
// table. The engine never calls back into this package; all interaction is
// push-update, pull-render.
package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/viewscale/viewscale/pkg/engine"
	"github.com/viewscale/viewscale/pkg/scale"
)

// ConfigReloadedMsg swaps the active scaling config and token table, sent by
// the config file watcher.
type ConfigReloadedMsg struct {
	Tokens []scale.Token
	Config scale.Config
}

// NewProgram returns a new Tea program running the inspector.
func NewProgram(e *engine.Engine, tokens []scale.Token) *tea.Program {
	slog.Debug("starting viewscale inspector")

	return tea.NewProgram(NewModel(e, tokens), tea.WithAltScreen())
}

// Model is the inspector's bubbletea model.
type Model struct {
	engine *engine.Engine
	tokens []scale.Token
	width  int
	height int
}

// NewModel creates an inspector [Model] backed by the given engine.
func NewModel(e *engine.Engine, tokens []scale.Token) Model {
	return Model{
		engine: e,
		tokens: tokens,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.UpdateViewport(float64(msg.Width), float64(msg.Height))

	case ConfigReloadedMsg:
		m.engine.Configure(msg.Config)
		m.tokens = msg.Tokens

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}
