// Package app contains the root bubbletea model of the radio player.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/playback"
)

// PlaybackMessage is implemented by messages coming from the playback service.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// TickMsg drives the animation at the configured frame rate.
type TickMsg time.Time

// StartResultMsg reports the outcome of a Start issued in the background.
type StartResultMsg struct {
	StationID int64
	Station   string
	Err       error
}

func (StartResultMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the playback state changes.
type ServiceStateChangedMsg struct {
	Previous, Current playback.State
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceStationChangedMsg is sent when a station starts or stops.
type ServiceStationChangedMsg playback.StationChange

func (ServiceStationChangedMsg) playbackMessage() {}

// ServiceSongChangedMsg is sent when the stream announces a new title.
type ServiceSongChangedMsg playback.SongChange

func (ServiceSongChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when the playback service reports an error.
type ServiceErrorMsg struct {
	Operation string
	Station   string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service is closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// RemoteCommand is a control request from outside the terminal (MPRIS).
type RemoteCommand int

const (
	RemotePlay RemoteCommand = iota
	RemoteStop
	RemoteNext
	RemotePrevious
	RemoteQuit
)

// RemoteMsg carries a RemoteCommand into the update loop.
type RemoteMsg struct {
	Command RemoteCommand
}
