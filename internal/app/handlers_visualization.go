// internal/app/handlers_visualization.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/app/handler"
	"github.com/llehouerou/waveradio/internal/app/popupctl"
	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/ui/vismenu"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

// handleVisualizationKeys opens the menu or cycles the visualization.
func (m *Model) handleVisualizationKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling visualization actions
	case keymap.ActionVisMenu:
		return handler.Handled(m.Popups.ShowVisMenu(m.Engine.Kind()))
	case keymap.ActionVisNext:
		m.setVisualization(m.Engine.Kind().Next())
		return handler.HandledNoCmd
	case keymap.ActionVisPrev:
		m.setVisualization(m.Engine.Kind().Prev())
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) setVisualization(k visualization.Kind) {
	if k == m.Engine.Kind() {
		return
	}
	m.Engine.SetKind(k)
	m.SavePlayerState()
}

// handleVisMenu applies or dismisses the menu choice.
func (m Model) handleVisMenu(a any) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.VisMenu)
	if sel, ok := a.(vismenu.Selected); ok {
		m.setVisualization(sel.Kind)
	}
	return m, nil
}
