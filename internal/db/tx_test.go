package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(Memory)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE stations (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	return conn
}

func countStations(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM stations`).Scan(&n))
	return n
}

func TestWithTx_Commits(t *testing.T) {
	conn := memoryDB(t)

	err := WithTx(conn, func(tx *sql.Tx) error {
		for _, name := range []string{"Groove Salad", "Secret Agent"} {
			if _, err := tx.Exec(`INSERT INTO stations (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countStations(t, conn))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	conn := memoryDB(t)
	boom := errors.New("boom")

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO stations (name) VALUES ('Groove Salad')`); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, countStations(t, conn), "insert should be rolled back")
}

func TestWithTx_ConstraintFailureKeepsEarlierCommits(t *testing.T) {
	conn := memoryDB(t)
	require.NoError(t, WithTx(conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO stations (name) VALUES ('Groove Salad')`)
		return err
	}))

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO stations (name) VALUES ('Secret Agent')`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO stations (name) VALUES ('Groove Salad')`)
		return err
	})

	require.Error(t, err)
	assert.Equal(t, 1, countStations(t, conn))
}

func TestNullInt64Conversions(t *testing.T) {
	assert.Nil(t, NullInt64ToPtr(sql.NullInt64{}))
	assert.False(t, PtrToNullInt64(nil).Valid)

	id := int64(0)
	n := PtrToNullInt64(&id)
	require.True(t, n.Valid, "zero is a valid id")
	got := NullInt64ToPtr(n)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), *got)

	id = 7
	assert.Equal(t, int64(0), *got, "result must not alias the input")
}

func TestNullStringConversions(t *testing.T) {
	assert.False(t, StringToNull("").Valid)
	assert.Equal(t, "chill", NullStringValue(StringToNull("chill")))
	assert.Empty(t, NullStringValue(sql.NullString{}))
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "waveradio.db")

	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Ping())
	var fk int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
