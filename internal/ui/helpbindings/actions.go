package helpbindings

import (
	"github.com/llehouerou/waveradio/internal/ui/action"
)

// Source tags the action messages of this package.
const Source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

var _ action.Action = Close{}
