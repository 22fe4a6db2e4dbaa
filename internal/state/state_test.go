package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/waveradio/internal/db"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return conn
}

func TestGetPlayer_Empty(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	p, err := getPlayer(conn)
	if err != nil {
		t.Fatalf("getPlayer failed: %v", err)
	}
	if p.Volume != DefaultVolume || p.Muted || p.LastStationID != nil || p.Visualization != "" {
		t.Errorf("expected defaults on empty db, got %+v", p)
	}
}

func TestSaveAndGetPlayer(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	station := int64(3)
	want := PlayerState{Volume: 75, Muted: true, LastStationID: &station, Visualization: "bars"}
	if err := savePlayer(conn, want); err != nil {
		t.Fatalf("savePlayer failed: %v", err)
	}

	got, err := getPlayer(conn)
	if err != nil {
		t.Fatalf("getPlayer failed: %v", err)
	}
	if got.Volume != 75 || !got.Muted || got.Visualization != "bars" {
		t.Errorf("got %+v", got)
	}
	if got.LastStationID == nil || *got.LastStationID != 3 {
		t.Errorf("LastStationID = %v, want 3", got.LastStationID)
	}
}

func TestSavePlayer_Update(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	station := int64(1)
	if err := savePlayer(conn, PlayerState{Volume: 20, LastStationID: &station}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := savePlayer(conn, PlayerState{Volume: 30}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, _ := getPlayer(conn)
	if got.Volume != 30 {
		t.Errorf("Volume = %d, want 30", got.Volume)
	}
	if got.LastStationID != nil {
		t.Errorf("LastStationID = %v, want nil", *got.LastStationID)
	}

	var rows int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM player_state`).Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
}

func TestSavePlayer_ClampsVolume(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	_ = savePlayer(conn, PlayerState{Volume: 180})
	got, _ := getPlayer(conn)
	if got.Volume != 100 {
		t.Errorf("Volume = %d, want 100", got.Volume)
	}

	_, _ = conn.Exec(`UPDATE player_state SET volume = -20 WHERE id = 1`)
	got, _ = getPlayer(conn)
	if got.Volume != 0 {
		t.Errorf("Volume = %d, want 0", got.Volume)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	if err := initSchema(conn); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
}

func TestManager_PendingSaveVisibleAndFlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for v := 55; v <= 70; v += 5 {
		m.SavePlayer(PlayerState{Volume: v, Visualization: "waveforms"})
	}

	got, err := m.GetPlayer()
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Volume != 70 {
		t.Errorf("pending Volume = %d, want 70", got.Volume)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, err = m.GetPlayer()
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got.Volume != 70 || got.Visualization != "waveforms" {
		t.Errorf("after reopen got %+v", got)
	}
}

func TestManager_DB(t *testing.T) {
	m, err := Open(db.Memory)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	if m.DB() == nil {
		t.Error("DB() returned nil")
	}
}

func TestResolvePath_Override(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := ResolvePath("/tmp/custom/radio.db")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if got != "/tmp/custom/radio.db" {
		t.Errorf("got %q", got)
	}
}

func TestResolvePath_ExpandsHome(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/radio/stations.db")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if want := filepath.Join(home, "radio", "stations.db"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePath_LocalFileWins(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(legacyDBFile, nil, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ResolvePath("/elsewhere.db")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if got != legacyDBFile {
		t.Errorf("got %q, want %q", got, legacyDBFile)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()

	p, _ := m.GetPlayer()
	if p.Volume != DefaultVolume {
		t.Errorf("default Volume = %d", p.Volume)
	}

	m.SavePlayer(PlayerState{Volume: 10})
	p, _ = m.GetPlayer()
	if p.Volume != 10 || m.Saves() != 1 {
		t.Errorf("Volume = %d, saves = %d", p.Volume, m.Saves())
	}

	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed = false after Close")
	}
}

func TestInitSchema_RecordsVersion(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	v, err := schemaVersion(conn)
	if err != nil {
		t.Fatalf("schemaVersion failed: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("version = %d, want %d", v, len(migrations))
	}
}

func TestInitSchema_UpgradesOldDatabase(t *testing.T) {
	conn, err := db.Open(db.Memory)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer conn.Close()

	// a database written before the visualization column existed
	if _, err := conn.Exec(`CREATE TABLE schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(migrations[0]); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO schema_version VALUES (1); INSERT INTO player_state (id, volume) VALUES (1, 35)`); err != nil {
		t.Fatal(err)
	}

	if err := initSchema(conn); err != nil {
		t.Fatalf("initSchema failed: %v", err)
	}
	p, err := getPlayer(conn)
	if err != nil {
		t.Fatalf("getPlayer failed: %v", err)
	}
	if p.Volume != 35 || p.Visualization != "" {
		t.Errorf("got %+v", p)
	}
}
