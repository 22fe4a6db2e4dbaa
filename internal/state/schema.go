package state

import (
	"database/sql"
	"fmt"

	"github.com/llehouerou/waveradio/internal/db"
)

// migrations run in order; entry i brings the schema to version i+1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS player_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		volume INTEGER NOT NULL DEFAULT 50,
		muted INTEGER NOT NULL DEFAULT 0,
		last_station_id INTEGER
	)`,
	`ALTER TABLE player_state ADD COLUMN visualization TEXT`,
}

func schemaVersion(conn *sql.DB) (int, error) {
	var v sql.NullInt64
	err := conn.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&v)
	return int(v.Int64), err
}

func initSchema(conn *sql.DB) error {
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return err
	}
	current, err := schemaVersion(conn)
	if err != nil {
		return err
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		err := db.WithTx(conn, func(tx *sql.Tx) error {
			if _, err := tx.Exec(migrations[i]); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate to v%d: %w", version, err)
		}
	}
	return nil
}
