package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetRoot(t.TempDir())

	db, err := cfg.OpenDB()
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	_, err = os.Stat(filepath.Join(cfg.DBDir(), DBName+".db"))
	require.NoError(t, err)

	db, err = cfg.OpenDB()
	require.NoError(t, err)
	defer db.Close()
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestOpenDBUnknownBackend(t *testing.T) {
	cfg := TestConfig()
	cfg.DBBackend = "nosuchdb"

	_, err := cfg.OpenDB()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchdb")
}
