package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "garden.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var produce, zones int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM produce_locations").Scan(&produce))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM climate_zones").Scan(&zones))
	assert.Equal(t, 6, produce)
	assert.Equal(t, 6, zones)

	applied, err := NewMigrationManager(db, Migrations).GetAppliedMigrations()
	require.NoError(t, err)
	assert.True(t, applied[1])
	assert.True(t, applied[2])
	assert.True(t, applied[3])
	assert.True(t, applied[4])

	var prices int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM market_prices").Scan(&prices))
	assert.Equal(t, 5*90, prices)

	// re-running is a no-op
	require.NoError(t, NewMigrationManager(db, Migrations).RunMigrations())
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM produce_locations").Scan(&produce))
	assert.Equal(t, 6, produce)
}

func TestLoadMigrationsSkipsInvalidNames(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql": {Data: []byte("SELECT 1;")},
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"readme.md": {Data: []byte("x")},
		"nover.sql": {Data: []byte("SELECT 1;")},
	}
	migrations, err := NewMigrationManager(nil, fsys).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_a", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
}

func TestTransactionRollsBack(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO climate_zones (lat, lng, weight) VALUES (1, 1, 1)"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM climate_zones").Scan(&n))
	assert.Equal(t, 6, n)
}
