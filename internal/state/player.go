// internal/state/player.go
package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/waveradio/internal/db"
)

// DefaultVolume is the volume of a fresh install.
const DefaultVolume = 50

// PlayerState is what survives a restart.
type PlayerState struct {
	Volume        int
	Muted         bool
	LastStationID *int64
	Visualization string
}

// DefaultPlayer returns the state used before anything was saved.
func DefaultPlayer() PlayerState {
	return PlayerState{Volume: DefaultVolume}
}

func getPlayer(conn *sql.DB) (*PlayerState, error) {
	var (
		p       PlayerState
		station sql.NullInt64
		vis     sql.NullString
	)
	err := conn.QueryRow(`
		SELECT volume, muted, last_station_id, visualization
		FROM player_state
		WHERE id = 1
	`).Scan(&p.Volume, &p.Muted, &station, &vis)
	if errors.Is(err, sql.ErrNoRows) {
		d := DefaultPlayer()
		return &d, nil
	}
	if err != nil {
		return nil, err
	}

	p.Volume = clampVolume(p.Volume)
	p.LastStationID = db.NullInt64ToPtr(station)
	p.Visualization = db.NullStringValue(vis)
	return &p, nil
}

func savePlayer(conn *sql.DB, p PlayerState) error {
	_, err := conn.Exec(`
		INSERT INTO player_state (id, volume, muted, last_station_id, visualization)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			last_station_id = excluded.last_station_id,
			visualization = excluded.visualization
	`, clampVolume(p.Volume), p.Muted, db.PtrToNullInt64(p.LastStationID), db.StringToNull(p.Visualization))
	return err
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}
