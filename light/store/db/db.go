package db

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gogo/protobuf/proto"
	"github.com/google/orderedcode"
	dbm "github.com/tendermint/tm-db"

	"github.com/tendermint/light-relayer/light/store"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

const (
	prefixTrustState  = int64(11)
	prefixRelayRecord = int64(12)
	prefixSize        = int64(13)
)

type dbs struct {
	db dbm.DB

	mtx  sync.RWMutex
	size uint64
}

var _ store.Store = (*dbs)(nil)

// New returns a Store that wraps any DB.
//
// Records are kept under orderedcode keys, so iteration follows height.
func New(db dbm.DB) store.Store {
	size := uint64(0)
	bz, err := db.Get(sizeKey())
	if err == nil && len(bz) > 0 {
		size = unmarshalSize(bz)
	}

	return &dbs{db: db, size: size}
}

// SaveTrustState persists rec.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) SaveTrustState(rec *lightproto.TrustStateRecord) error {
	if rec == nil {
		return fmt.Errorf("nil trust state")
	}
	bz, err := proto.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling trust state: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.db.SetSync(trustStateKey(), bz)
}

// TrustState loads the trust state.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) TrustState() (*lightproto.TrustStateRecord, error) {
	s.mtx.RLock()
	bz, err := s.db.Get(trustStateKey())
	s.mtx.RUnlock()
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, store.ErrNotFound
	}

	rec := new(lightproto.TrustStateRecord)
	if err := proto.Unmarshal(bz, rec); err != nil {
		return nil, fmt.Errorf("unmarshaling trust state: %w", err)
	}
	return rec, nil
}

// SaveRelayRecord persists rec and bumps the size when the height is new.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) SaveRelayRecord(rec *lightproto.RelayRecord) error {
	if rec == nil || rec.Height <= 0 {
		return fmt.Errorf("relay record height must be positive")
	}
	bz, err := proto.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling relay record: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	key := relayRecordKey(rec.Height)
	exists, err := s.db.Has(key)
	if err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()
	if err = b.Set(key, bz); err != nil {
		return err
	}
	if !exists {
		if err = b.Set(sizeKey(), marshalSize(s.size+1)); err != nil {
			return err
		}
	}
	if err = b.WriteSync(); err != nil {
		return err
	}
	if !exists {
		s.size++
	}

	return nil
}

// RelayRecord loads the record of height.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) RelayRecord(height int64) (*lightproto.RelayRecord, error) {
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %d", height)
	}

	s.mtx.RLock()
	bz, err := s.db.Get(relayRecordKey(height))
	s.mtx.RUnlock()
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, store.ErrNotFound
	}

	rec := new(lightproto.RelayRecord)
	if err := proto.Unmarshal(bz, rec); err != nil {
		return nil, fmt.Errorf("unmarshaling relay record: %w", err)
	}
	return rec, nil
}

// LastRelayedHeight returns the newest journaled height or -1.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) LastRelayedHeight() (int64, error) {
	recs, err := s.RelayRecords(1)
	if err != nil {
		return -1, err
	}
	if len(recs) == 0 {
		return -1, nil
	}
	return recs[0].Height, nil
}

// RelayRecords iterates the journal from the newest height backwards.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) RelayRecords(limit int) ([]*lightproto.RelayRecord, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	itr, err := s.db.ReverseIterator(
		relayRecordKey(1),
		append(relayRecordKey(1<<63-1), byte(0x00)),
	)
	if err != nil {
		return nil, err
	}
	defer itr.Close()

	var recs []*lightproto.RelayRecord
	for ; itr.Valid() && len(recs) < limit; itr.Next() {
		if _, err := parseRelayRecordKey(itr.Key()); err != nil {
			return nil, err
		}
		rec := new(lightproto.RelayRecord)
		if err := proto.Unmarshal(itr.Value(), rec); err != nil {
			return nil, fmt.Errorf("unmarshaling relay record: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, itr.Error()
}

// Prune drops the oldest records until size remain.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) Prune(size uint64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.size <= size {
		return nil
	}
	numToPrune := s.size - size

	itr, err := s.db.Iterator(
		relayRecordKey(1),
		append(relayRecordKey(1<<63-1), byte(0x00)),
	)
	if err != nil {
		return err
	}
	defer itr.Close()

	b := s.db.NewBatch()
	defer b.Close()

	pruned := uint64(0)
	for itr.Valid() && numToPrune > 0 {
		if err = b.Delete(itr.Key()); err != nil {
			return err
		}
		itr.Next()
		numToPrune--
		pruned++
	}
	if err = itr.Error(); err != nil {
		return err
	}

	if err = b.Set(sizeKey(), marshalSize(s.size-pruned)); err != nil {
		return err
	}
	if err = b.WriteSync(); err != nil {
		return err
	}
	s.size -= pruned

	return nil
}

// Size returns the number of journaled records.
//
// Safe for concurrent use by multiple goroutines.
func (s *dbs) Size() uint64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.size
}

func trustStateKey() []byte {
	key, err := orderedcode.Append(nil, prefixTrustState)
	if err != nil {
		panic(err)
	}
	return key
}

func relayRecordKey(height int64) []byte {
	key, err := orderedcode.Append(nil, prefixRelayRecord, height)
	if err != nil {
		panic(err)
	}
	return key
}

func parseRelayRecordKey(key []byte) (height int64, err error) {
	var prefix int64
	remaining, err := orderedcode.Parse(string(key), &prefix, &height)
	if err != nil {
		return -1, err
	}
	if len(remaining) != 0 {
		return -1, fmt.Errorf("expected complete key but got remainder: %s", remaining)
	}
	if prefix != prefixRelayRecord {
		return -1, fmt.Errorf("incorrect prefix. Expected %v, got %v", prefixRelayRecord, prefix)
	}
	return height, nil
}

func sizeKey() []byte {
	key, err := orderedcode.Append(nil, prefixSize)
	if err != nil {
		panic(err)
	}
	return key
}

func marshalSize(size uint64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, size)
	return bs
}

func unmarshalSize(bz []byte) uint64 {
	if len(bz) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(bz)
}
