// internal/app/persistence.go
package app

import "github.com/llehouerou/waveradio/internal/state"

// SavePlayerState persists volume, mute, selected station and visualization.
// The state manager debounces the write.
func (m *Model) SavePlayerState() {
	ps := state.PlayerState{
		Volume:        m.Playback.Volume(),
		Muted:         m.Playback.Muted(),
		Visualization: m.Engine.Kind().Key(),
	}
	if st, ok := m.List.Selected(); ok {
		id := st.ID
		ps.LastStationID = &id
	}
	m.StateMgr.SavePlayer(ps)
}
