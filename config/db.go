package config

import (
	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"
)

// DBName is the name of the relayer database inside DBDir.
const DBName = "relayer"

// OpenDB opens the relayer database with the configured backend. The caller
// closes it.
func (cfg BaseConfig) OpenDB() (dbm.DB, error) {
	db, err := dbm.NewDB(DBName, dbm.BackendType(cfg.DBBackend), cfg.DBDir())
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database in %s", cfg.DBBackend, cfg.DBDir())
	}
	return db, nil
}
