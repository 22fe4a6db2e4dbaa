// Package stations is the SQLite-backed radio station catalog.
package stations

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/llehouerou/waveradio/internal/db"
)

var (
	// ErrNotFound is returned when no station has the requested id.
	ErrNotFound = errors.New("station not found")
	// ErrInvalid is returned when a station fails validation.
	ErrInvalid = errors.New("invalid station")
)

// Station is one entry of the catalog.
type Station struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	URL         string `db:"url"`
	Description string `db:"description"`
	Favorite    bool   `db:"favorite"`
}

const schema = `
	CREATE TABLE IF NOT EXISTS stations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		url TEXT NOT NULL,
		favorite INTEGER NOT NULL DEFAULT 0,
		description TEXT
	)
`

var defaults = []Station{
	{
		Name:        "Groove Salad (SomaFM)",
		URL:         "http://ice1.somafm.com/groovesalad-128-mp3",
		Description: "Chilled electronic and downtempo beats",
	},
	{
		Name:        "Secret Agent (SomaFM)",
		URL:         "http://ice4.somafm.com/secretagent-128-mp3",
		Description: "The soundtrack for your stylish, mysterious, dangerous life",
	},
	{
		Name:        "BBC Radio 1",
		URL:         "http://icecast.omroep.nl/radio1-bb-mp3",
		Description: "BBC's flagship radio station for new music and entertainment",
	},
	{
		Name:        "FluxFM Chillhop",
		URL:         "https://streams.fluxfm.de/Chillhop/mp3-320/streams.fluxfm.de/",
		Description: "High-quality Chillhop stream from FluxFM - relaxed beats at 320kbps",
	},
}

// Defaults returns the stations seeded into an empty catalog.
func Defaults() []Station {
	out := make([]Station, len(defaults))
	copy(out, defaults)
	return out
}

// The sqlite driver name is not in sqlx's placeholder table.
func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

const selectStations = `
	SELECT id, name, url, favorite, COALESCE(description, '') AS description
	FROM stations
`

// Store manages stations in the database.
type Store struct {
	db *sqlx.DB
}

// New creates the stations table if needed and seeds it when empty.
func New(conn *sql.DB) (*Store, error) {
	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("create stations table: %w", err)
	}

	s := &Store{db: sqlx.NewDb(conn, "sqlite")}
	err := db.WithTx(conn, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM stations`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, st := range defaults {
			if _, err := tx.Exec(insertStation, st.Name, st.URL, false, st.Description); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed stations: %w", err)
	}
	return s, nil
}

const insertStation = `INSERT INTO stations (name, url, favorite, description) VALUES (?, ?, ?, NULLIF(?, ''))`

// List returns all stations in insertion order.
func (s *Store) List() ([]Station, error) {
	var out []Station
	if err := s.db.Select(&out, selectStations+` ORDER BY id`); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the station with the given id.
func (s *Store) Get(id int64) (Station, error) {
	var st Station
	err := s.db.Get(&st, selectStations+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Station{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return st, err
}

// Add inserts a new station and returns it with its id set.
func (s *Store) Add(st Station) (Station, error) {
	st = normalize(st)
	if err := Validate(st); err != nil {
		return Station{}, err
	}

	res, err := s.db.NamedExec(`
		INSERT INTO stations (name, url, favorite, description)
		VALUES (:name, :url, :favorite, NULLIF(:description, ''))
	`, st)
	if err != nil {
		return Station{}, err
	}
	st.ID, err = res.LastInsertId()
	if err != nil {
		return Station{}, err
	}
	return st, nil
}

// Update overwrites name, url and description of an existing station.
// The favorite flag is left alone; use SetFavorite for that.
func (s *Store) Update(st Station) error {
	st = normalize(st)
	if err := Validate(st); err != nil {
		return err
	}

	res, err := s.db.NamedExec(
		`UPDATE stations SET name = :name, url = :url, description = NULLIF(:description, '') WHERE id = :id`,
		st,
	)
	if err != nil {
		return err
	}
	return expectRow(res, st.ID)
}

// Delete removes a station.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM stations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectRow(res, id)
}

// SetFavorite marks or unmarks a station as favorite.
func (s *Store) SetFavorite(id int64, favorite bool) error {
	res, err := s.db.Exec(`UPDATE stations SET favorite = ? WHERE id = ?`, favorite, id)
	if err != nil {
		return err
	}
	return expectRow(res, id)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Store) ToggleFavorite(id int64) (bool, error) {
	var fav bool
	err := db.WithTx(s.db.DB, func(tx *sql.Tx) error {
		if err := tx.QueryRow(`SELECT favorite FROM stations WHERE id = ?`, id).Scan(&fav); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %d", ErrNotFound, id)
			}
			return err
		}
		fav = !fav
		_, err := tx.Exec(`UPDATE stations SET favorite = ? WHERE id = ?`, fav, id)
		return err
	})
	return fav, err
}

// Validate checks that a station has a name and an absolute stream URL.
func Validate(st Station) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	u, err := url.Parse(strings.TrimSpace(st.URL))
	if err != nil {
		return fmt.Errorf("%w: url: %w", ErrInvalid, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", ErrInvalid)
	}
	return nil
}

func normalize(st Station) Station {
	st.Name = strings.TrimSpace(st.Name)
	st.URL = strings.TrimSpace(st.URL)
	st.Description = strings.TrimSpace(st.Description)
	return st
}

func expectRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}
