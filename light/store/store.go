package store

import (
	"errors"

	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store persists the relayer's trust state and a journal of relay attempts,
// so a stopped relayer resumes from the last confirmed submission.
type Store interface {
	// SaveTrustState replaces the stored trust state.
	SaveTrustState(rec *lightproto.TrustStateRecord) error

	// TrustState returns the stored trust state.
	//
	// If nothing was saved yet, ErrNotFound is returned.
	TrustState() (*lightproto.TrustStateRecord, error)

	// SaveRelayRecord journals the outcome of the relay of rec.Height.
	// A later record for the same height replaces the earlier one.
	//
	// height must be > 0.
	SaveRelayRecord(rec *lightproto.RelayRecord) error

	// RelayRecord returns the record journaled for height.
	//
	// If there is none, ErrNotFound is returned.
	RelayRecord(height int64) (*lightproto.RelayRecord, error)

	// LastRelayedHeight returns the newest journaled height.
	//
	// If the journal is empty, -1 and nil error are returned.
	LastRelayedHeight() (int64, error)

	// RelayRecords returns up to limit records, newest first.
	RelayRecords(limit int) ([]*lightproto.RelayRecord, error)

	// Prune removes the oldest records so that at most size remain.
	Prune(size uint64) error

	// Size returns the number of journaled records.
	Size() uint64
}
