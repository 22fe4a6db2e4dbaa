// internal/app/handlers_stations.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/app/handler"
	"github.com/llehouerou/waveradio/internal/app/popupctl"
	"github.com/llehouerou/waveradio/internal/errmsg"
	"github.com/llehouerou/waveradio/internal/keymap"
	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/confirm"
	"github.com/llehouerou/waveradio/internal/ui/stationform"
)

// deleteRequest is the confirm popup context for a station deletion.
type deleteRequest struct {
	ID   int64
	Name string
}

// handleStationKeys handles list navigation and catalog edits.
func (m *Model) handleStationKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling station actions
	case keymap.ActionMoveUp:
		m.List.Move(-1)
	case keymap.ActionMoveDown:
		m.List.Move(1)
	case keymap.ActionJumpStart:
		m.List.JumpStart()
	case keymap.ActionJumpEnd:
		m.List.JumpEnd()
	case keymap.ActionAddStation:
		return handler.Handled(m.Popups.ShowAddStation())
	case keymap.ActionEditStation:
		if st, ok := m.List.Selected(); ok {
			return handler.Handled(m.Popups.ShowEditStation(st))
		}
	case keymap.ActionDeleteStation:
		if st, ok := m.List.Selected(); ok {
			return handler.Handled(m.Popups.ShowConfirm(
				"Delete station",
				"Delete \""+st.Name+"\"?",
				deleteRequest{ID: st.ID, Name: st.Name},
			))
		}
	case keymap.ActionToggleFavorite:
		m.toggleFavorite()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) toggleFavorite() {
	st, ok := m.List.Selected()
	if !ok {
		return
	}
	if _, err := m.Stations.ToggleFavorite(st.ID); err != nil {
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpFavoriteToggle, st.Name, err))
		return
	}
	m.reloadStations()
}

// reloadStations refreshes the list from the store, keeping the cursor.
func (m *Model) reloadStations() {
	list, err := m.Stations.List()
	if err != nil {
		m.Popups.ShowError(errmsg.Format(errmsg.OpStationLoad, err))
		return
	}
	m.List.SetStations(list)
}

// handleStationForm saves the submitted station.
func (m Model) handleStationForm(res stationform.Result) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.StationForm)
	if res.Canceled {
		return m, nil
	}

	var id int64
	if res.Editing {
		if err := m.Stations.Update(res.Station); err != nil {
			m.Popups.ShowError(errmsg.FormatWith(errmsg.OpStationUpdate, res.Station.Name, err))
			return m, nil
		}
		id = res.Station.ID
	} else {
		added, err := m.Stations.Add(res.Station)
		if err != nil {
			m.Popups.ShowError(errmsg.FormatWith(errmsg.OpStationAdd, res.Station.Name, err))
			return m, nil
		}
		id = added.ID
	}

	m.reloadStations()
	m.List.SelectByID(id)
	m.SavePlayerState()
	return m, nil
}

// handleConfirm deletes the station once the user agreed.
func (m Model) handleConfirm(res confirm.Result) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.Confirm)
	req, ok := res.Context.(deleteRequest)
	if !res.Confirmed || !ok {
		return m, nil
	}

	if req.ID == m.onAirID {
		m.StopPlayback()
	}
	if err := m.Stations.Delete(req.ID); err != nil {
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpStationDelete, req.Name, err))
		return m, nil
	}
	m.reloadStations()
	m.SavePlayerState()
	return m, nil
}

// selectedStation returns a copy of the station under the cursor, or nil.
func (m *Model) selectedStation() *stations.Station {
	st, ok := m.List.Selected()
	if !ok {
		return nil
	}
	return &st
}
