// internal/app/handlers_playback.go
package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/app/handler"
	"github.com/llehouerou/waveradio/internal/errmsg"
	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/playback"
)

// handlePlaybackKeys handles play, stop, mute and volume.
func (m *Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlay:
		return handler.Handled(m.PlaySelected())
	case keymap.ActionStop:
		m.StopPlayback()
		return handler.HandledNoCmd
	case keymap.ActionToggleMute:
		m.report(errmsg.OpMuteToggle, m.Playback.ToggleMute())
		m.SavePlayerState()
		return handler.HandledNoCmd
	case keymap.ActionVolumeUp:
		m.report(errmsg.OpVolumeChange, m.Playback.VolumeUp())
		m.SavePlayerState()
		return handler.HandledNoCmd
	case keymap.ActionVolumeDown:
		m.report(errmsg.OpVolumeChange, m.Playback.VolumeDown())
		m.SavePlayerState()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// PlaySelected starts the station under the cursor.
func (m *Model) PlaySelected() tea.Cmd {
	st, ok := m.List.Selected()
	if !ok {
		return nil
	}
	m.SavePlayerState()
	return StartCmd(m.Playback, st)
}

// StopPlayback stops the current station, if any.
func (m *Model) StopPlayback() {
	m.Playback.Stop()
	m.setOnAir(0)
}

func (m *Model) setOnAir(id int64) {
	switch {
	case id == 0:
		m.onAirSince = time.Time{}
	case id != m.onAirID:
		m.onAirSince = m.now()
	}
	m.onAirID = id
	m.List.SetOnAir(id)
}

// report shows err unless it only says nothing is playing: mute and volume
// keys are harmless while stopped.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil || errors.Is(err, playback.ErrNotPlaying) {
		return
	}
	m.log.Error().Err(err).Str("op", string(op)).Msg("playback control failed")
	m.Popups.ShowError(errmsg.Format(op, err))
}

// handleStartResult records the playing station or shows why it failed.
func (m Model) handleStartResult(msg StartResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		m.setOnAir(msg.StationID)
		return m, nil
	}
	if errors.Is(msg.Err, playback.ErrClosed) || errors.Is(msg.Err, playback.ErrStopped) {
		return m, nil
	}
	// Spawn failures also arrive as ServiceErrorMsg; show them once, here.
	m.Popups.ShowError(errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Station, msg.Err))
	if !m.Playback.State().IsActive() {
		m.setOnAir(0)
	}
	return m, nil
}

// handleServiceMsg reacts to playback events and keeps listening.
func (m Model) handleServiceMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StartResultMsg:
		return m.handleStartResult(msg)

	case ServiceStateChangedMsg:
		if !msg.Current.IsActive() {
			m.setOnAir(0)
		}

	case ServiceStationChangedMsg:
		m.log.Debug().Str("from", msg.Previous).Str("to", msg.Current).Msg("station changed")

	case ServiceSongChangedMsg:
		m.log.Info().Str("station", msg.Station).Str("song", msg.Current).Msg("now playing")

	case ServiceErrorMsg:
		// "start" errors are reported through StartResultMsg.
		if msg.Operation != "start" && msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("station", msg.Station).Msg("playback error")
			m.Popups.ShowError(errmsg.FormatWith(errmsg.OpPlaybackStream, msg.Station, msg.Err))
		}

	case ServiceClosedMsg:
		return m, nil
	}
	return m, m.WatchServiceEvents()
}
