// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/playback"
	"github.com/llehouerou/waveradio/internal/stations"
)

// TickCmd returns a command that sends TickMsg after one frame.
func TickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(fps, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StartCmd starts st off the update loop; spawning the decoder can block.
func StartCmd(svc playback.Service, st stations.Station) tea.Cmd {
	return func() tea.Msg {
		err := svc.Start(st.Name, st.URL)
		return StartResultMsg{StationID: st.ID, Station: st.Name, Err: err}
	}
}

// WatchServiceEvents returns a command that waits for playback service events.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.playbackSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.StationChanged:
			return ServiceStationChangedMsg(e)
		case e := <-sub.SongChanged:
			return ServiceSongChangedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Station: e.Station, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
