// internal/app/layout.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/headerbar"
	"github.com/llehouerou/waveradio/internal/ui/layout"
)

// footerHeight is the one-line key help under the panels.
const footerHeight = 1

// panelLayout holds the panel sizes for a terminal size.
type panelLayout struct {
	listW, rightW int
	bodyH         int
	visH, infoH   int
}

func computeLayout(width, height int) panelLayout {
	bodyH := layout.ContentHeight(height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: footerHeight,
	})
	return panelLayout{
		listW:  layout.StationListWidth(width),
		rightW: layout.RightColumnWidth(width),
		bodyH:  bodyH,
		visH:   layout.VisualizationHeight(bodyH),
		infoH:  layout.StreamInfoHeight(bodyH),
	}
}

// handleWindowSize resizes every component.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width, m.Height = msg.Width, msg.Height
	l := computeLayout(msg.Width, msg.Height)

	m.List.SetSize(l.listW, l.bodyH)
	m.Canvas.Resize(max(l.rightW-ui.BorderWidth, 0), max(l.visH-ui.BorderHeight, 0))
	m.Popups.SetSize(msg.Width, msg.Height)
	m.Help.Width = msg.Width
	return m, nil
}
