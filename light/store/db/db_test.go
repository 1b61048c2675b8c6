package db

import (
	"math"
	"sync"
	"testing"

	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/tendermint/light-relayer/light/store"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

func record(height int64) *lightproto.RelayRecord {
	return &lightproto.RelayRecord{
		Height:   height,
		Action:   "update",
		ClientId: "07-tendermint-0",
		TxHash:   []byte{byte(height)},
		Outcome:  "success",
		RunId:    "run",
		Time:     &gogotypes.Timestamp{Seconds: height},
	}
}

func TestTrustState(t *testing.T) {
	dbStore := New(dbm.NewMemDB())

	_, err := dbStore.TrustState()
	require.ErrorIs(t, err, store.ErrNotFound)

	rec := &lightproto.TrustStateRecord{
		Phase:         2,
		ClientId:      "07-tendermint-3",
		TrustedHeight: 101,
		TrustedValidators: &lightproto.ValidatorSet{
			Validators: []*lightproto.Validator{
				{Address: []byte{1}, PubKey: []byte{2}, VotingPower: 10},
			},
			TotalVotingPower: 10,
		},
		UpdatedAt: &gogotypes.Timestamp{Seconds: 1, Nanos: 2},
	}
	require.NoError(t, dbStore.SaveTrustState(rec))

	got, err := dbStore.TrustState()
	require.NoError(t, err)
	assert.True(t, proto.Equal(rec, got), "trust state mismatch: %v != %v", rec, got)

	rec.TrustedHeight = 102
	require.NoError(t, dbStore.SaveTrustState(rec))
	got, err = dbStore.TrustState()
	require.NoError(t, err)
	assert.EqualValues(t, 102, got.TrustedHeight)
}

func TestLastRelayedHeight(t *testing.T) {
	dbStore := New(dbm.NewMemDB())

	height, err := dbStore.LastRelayedHeight()
	require.NoError(t, err)
	assert.EqualValues(t, -1, height)

	for _, h := range []int64{100, 300, 256, 101} {
		require.NoError(t, dbStore.SaveRelayRecord(record(h)))
	}
	height, err = dbStore.LastRelayedHeight()
	require.NoError(t, err)
	assert.EqualValues(t, 300, height)
}

func TestSaveRelayRecord(t *testing.T) {
	dbStore := New(dbm.NewMemDB())

	_, err := dbStore.RelayRecord(1)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Error(t, dbStore.SaveRelayRecord(record(0)))

	require.NoError(t, dbStore.SaveRelayRecord(record(1)))
	got, err := dbStore.RelayRecord(1)
	require.NoError(t, err)
	assert.Equal(t, "success", got.Outcome)
	assert.EqualValues(t, 1, dbStore.Size())

	rejected := record(1)
	rejected.Outcome = "rejected"
	require.NoError(t, dbStore.SaveRelayRecord(rejected))
	got, err = dbStore.RelayRecord(1)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Outcome)
	assert.EqualValues(t, 1, dbStore.Size())
}

func TestRelayRecords(t *testing.T) {
	dbStore := New(dbm.NewMemDB())
	for h := int64(1); h <= 5; h++ {
		require.NoError(t, dbStore.SaveRelayRecord(record(h)))
	}

	recs, err := dbStore.RelayRecords(3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.EqualValues(t, 5, recs[0].Height)
	assert.EqualValues(t, 3, recs[2].Height)

	recs, err = dbStore.RelayRecords(10)
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}

func TestPrune(t *testing.T) {
	db := dbm.NewMemDB()
	dbStore := New(db)

	// Empty store
	assert.EqualValues(t, 0, dbStore.Size())
	require.NoError(t, dbStore.Prune(0))

	for h := int64(1); h <= 10; h++ {
		require.NoError(t, dbStore.SaveRelayRecord(record(h)))
	}
	require.NoError(t, dbStore.SaveTrustState(&lightproto.TrustStateRecord{TrustedHeight: 10}))

	require.NoError(t, dbStore.Prune(4))
	assert.EqualValues(t, 4, dbStore.Size())

	_, err := dbStore.RelayRecord(6)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = dbStore.RelayRecord(7)
	require.NoError(t, err)

	// the trust state is not a journal entry
	_, err = dbStore.TrustState()
	require.NoError(t, err)

	// size survives a reopen
	assert.EqualValues(t, 4, New(db).Size())
}

func TestPruneBeyondUint16Records(t *testing.T) {
	if testing.Short() {
		t.Skip("saves more than 65535 records")
	}

	db := dbm.NewMemDB()
	dbStore := New(db)

	const total = math.MaxUint16 + 2
	for h := int64(1); h <= total; h++ {
		require.NoError(t, dbStore.SaveRelayRecord(record(h)))
	}
	require.EqualValues(t, total, dbStore.Size())
	require.EqualValues(t, total, New(db).Size())

	require.NoError(t, dbStore.Prune(10))
	assert.EqualValues(t, 10, dbStore.Size())

	recs, err := dbStore.RelayRecords(total)
	require.NoError(t, err)
	require.Len(t, recs, 10)
	assert.EqualValues(t, total, recs[0].Height)
	assert.EqualValues(t, total-9, recs[9].Height)
}

func TestConcurrency(t *testing.T) {
	dbStore := New(dbm.NewMemDB())

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(i int64) {
			defer wg.Done()

			err := dbStore.SaveRelayRecord(record(i))
			require.NoError(t, err)

			_, err = dbStore.RelayRecord(i)
			require.NoError(t, err)

			_, err = dbStore.LastRelayedHeight()
			require.NoError(t, err)

			dbStore.Size()
		}(int64(i))
	}
	wg.Wait()

	assert.EqualValues(t, 100, dbStore.Size())
}
