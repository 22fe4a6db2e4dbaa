// Package playback runs radio stations through an external decoder and
// switches between them with a short crossfade under a tuning sound.
package playback

import "github.com/llehouerou/waveradio/internal/visualizer"

// Service defines the playback contract used by the UI and D-Bus adapters.
type Service interface {
	// Playback control
	Start(station, url string) error
	Stop()
	ToggleMute() error
	VolumeUp() error
	VolumeDown() error
	SetVolume(v int)

	// State queries
	State() State
	Station() string
	URL() string
	Playing() bool
	Muted() bool
	Crossfading() bool
	Simulated() bool
	Volume() int
	StreamInfo() *visualizer.StreamInfo
	Shared() *visualizer.Shared

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
