package stationform

import (
	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/action"
)

// Source tags the action messages of this package.
const Source = "stationform"

// Result is emitted when the form is submitted or canceled.
type Result struct {
	Station  stations.Station // ID is set when editing
	Editing  bool
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "stationform.result" }

var _ action.Action = Result{}
