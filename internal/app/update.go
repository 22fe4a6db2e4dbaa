// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/app/popupctl"
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/confirm"
	"github.com/llehouerou/waveradio/internal/ui/helpbindings"
	"github.com/llehouerou/waveradio/internal/ui/stationform"
	"github.com/llehouerou/waveradio/internal/ui/vismenu"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		m.Playback.Shared().Tick()
		return m, TickCmd(m.fps)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case RemoteMsg:
		return m.handleRemote(msg)

	case PlaybackMessage:
		return m.handleServiceMsg(msg)
	}

	// Cursor blinks and other component messages go to the active popup.
	return m, m.Popups.Forward(msg)
}

// handleAction dispatches popup results.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug().Stringer("action", msg).Msg("popup result")
	switch a := msg.Action.(type) {
	case stationform.Result:
		return m.handleStationForm(a)
	case confirm.Result:
		return m.handleConfirm(a)
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
	case vismenu.Selected, vismenu.Close:
		return m.handleVisMenu(a)
	}
	return m, nil
}
