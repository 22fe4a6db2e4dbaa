package playback

import (
	"errors"
	"fmt"
)

// ErrNotPlaying is returned by controls that need a running station.
var ErrNotPlaying = errors.New("no station is playing")

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("playback closed")

// ErrStopped is returned by Start when Stop or a newer Start overtook the
// launch. The launched decoder has already been killed.
var ErrStopped = errors.New("playback stopped while starting")

// SpawnError reports a decoder that could not be started.
type SpawnError struct {
	Station string
	URL     string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start %q: %v", e.Station, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
