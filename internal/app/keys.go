// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/app/handler"
	"github.com/llehouerou/waveradio/internal/keymap"
)

// handleKeyMsg routes a key to the active popup, then to the main screen.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	r := handler.Chain(m.Keys.Resolve(msg),
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleStationKeys,
		m.handleVisualizationKeys,
	)
	return m, r.Cmd
}

// handleGlobalKeys handles quit and help.
func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp())
	}
	return handler.NotHandled
}

// quit saves state and stops the stream before leaving.
func (m *Model) quit() tea.Cmd {
	m.SavePlayerState()
	m.StopPlayback()
	return tea.Quit
}
