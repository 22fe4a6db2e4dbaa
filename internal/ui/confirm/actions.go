package confirm

import (
	"github.com/llehouerou/waveradio/internal/ui/action"
)

// Source tags the action messages of this package.
const Source = "confirm"

// Result contains the confirmation dialog result.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

var _ action.Action = Result{}
