// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// StationListPct is the share of the width given to the station list.
	StationListPct = 35

	// VisualizationPct is the share of the right column given to the
	// visualization; stream info takes the rest.
	VisualizationPct = 70

	// MinStreamInfoHeight keeps room for the four stream info lines.
	MinStreamInfoHeight = 6
)
