package vismenu

import (
	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

// Source tags the action messages of this package.
const Source = "vismenu"

// Selected is emitted when a visualization is picked.
type Selected struct {
	Kind visualization.Kind
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "vismenu.selected" }

// Close is emitted when the menu is dismissed without a choice.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "vismenu.close" }

var (
	_ action.Action = Selected{}
	_ action.Action = Close{}
)
