// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/waveradio/internal/ui"

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int
}

// ContentHeight calculates the available height for the panels: the
// terminal height minus header and footer, never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// StationListWidth returns the width of the station list column.
func StationListWidth(windowWidth int) int {
	return max(windowWidth, 0) * ui.StationListPct / 100
}

// RightColumnWidth returns the width left for the visualization and
// stream info panels.
func RightColumnWidth(windowWidth int) int {
	return max(windowWidth, 0) - StationListWidth(windowWidth)
}

// StreamInfoHeight returns the height of the stream info panel. It keeps
// ui.MinStreamInfoHeight rows while the content allows it.
func StreamInfoHeight(contentHeight int) int {
	h := contentHeight - contentHeight*ui.VisualizationPct/100
	h = max(h, ui.MinStreamInfoHeight)
	return min(h, max(contentHeight, 0))
}

// VisualizationHeight returns the rows above the stream info panel.
func VisualizationHeight(contentHeight int) int {
	return max(contentHeight, 0) - StreamInfoHeight(contentHeight)
}
