package playback

// State is where the controller is in the play/stop cycle.
type State int

const (
	StateStopped State = iota
	StatePlaying
	// StateTuning is a station switch in progress: the previous decoder may
	// still be audible under the tuning sound.
	StateTuning
)

var stateNames = [...]string{
	StateStopped: "Stopped",
	StatePlaying: "Playing",
	StateTuning:  "Tuning",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a station is audible or about to be.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StateTuning
}
