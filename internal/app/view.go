// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/ui/headerbar"
	"github.com/llehouerou/waveradio/internal/ui/streaminfo"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	l := computeLayout(m.Width, m.Height)

	header := headerbar.Render(m.headerStatus(), m.Width)

	snap := m.Playback.Shared().Snapshot()
	m.Engine.Render(m.Canvas, &snap)
	vis := styles.Panel(m.Engine.Kind().String(), m.Canvas.String(), l.rightW, l.visH, false)

	info := streaminfo.Render(streaminfo.Info{
		Stream:   m.Playback.StreamInfo(),
		OnAir:    m.onAirSince,
		Now:      m.now(),
		Selected: m.selectedStation(),
	}, l.rightW, l.infoH)

	right := lipgloss.JoinVertical(lipgloss.Left, vis, info)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), right)
	footer := m.Help.ShortHelpView(keymap.ShortHelp())

	view := header + "\n" + body + "\n" + footer
	return m.Popups.RenderOverlay(view)
}

func (m Model) headerStatus() headerbar.Status {
	return headerbar.Status{
		State:         m.Playback.State(),
		Station:       m.Playback.Station(),
		Volume:        m.Playback.Volume(),
		Muted:         m.Playback.Muted(),
		Simulated:     m.Playback.Simulated(),
		Visualization: m.Engine.Kind().String(),
	}
}
