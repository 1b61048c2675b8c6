package commands

import (
	"testing"
	"time"

	gogotypes "github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/internal/relayer"
	"github.com/tendermint/light-relayer/libs/log"
	dbs "github.com/tendermint/light-relayer/light/store/db"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

func TestLoadStatusEmpty(t *testing.T) {
	info, err := loadStatus(dbs.New(dbm.NewMemDB()), 10)
	require.NoError(t, err)

	assert.Equal(t, "create_pending", info.Phase)
	assert.EqualValues(t, -1, info.LastRelayedHeight)
	assert.Empty(t, info.Records)
	assert.True(t, info.UpdatedAt.IsZero())
}

func TestLoadStatus(t *testing.T) {
	st := dbs.New(dbm.NewMemDB())
	now := time.Date(2022, 10, 1, 12, 0, 0, 0, time.UTC)

	vals := &lightproto.ValidatorSet{
		Validators:       []*lightproto.Validator{{Address: []byte{1}, PubKey: []byte{2}, VotingPower: 10}},
		TotalVotingPower: 10,
	}
	state := relayer.NewTrustState().WithClientID("07-tendermint-0").Created(5, false).Updated(7, vals)
	rec, err := state.ToProto(now)
	require.NoError(t, err)
	require.NoError(t, st.SaveTrustState(rec))

	ts, err := gogotypes.TimestampProto(now)
	require.NoError(t, err)
	for h := int64(5); h <= 7; h++ {
		action := "update"
		if h == 5 {
			action = "create"
		}
		require.NoError(t, st.SaveRelayRecord(&lightproto.RelayRecord{
			Height:   h,
			Action:   action,
			ClientId: "07-tendermint-0",
			TxHash:   []byte{0xab, byte(h)},
			Outcome:  "success",
			RunId:    "run",
			Time:     ts,
		}))
	}

	info, err := loadStatus(st, 2)
	require.NoError(t, err)

	assert.Equal(t, "updating", info.Phase)
	assert.Equal(t, "07-tendermint-0", info.ClientID)
	assert.EqualValues(t, 7, info.TrustedHeight)
	assert.Equal(t, 1, info.TrustedValidators)
	assert.Equal(t, now, info.UpdatedAt)
	assert.EqualValues(t, 7, info.LastRelayedHeight)
	require.Len(t, info.Records, 2)
	assert.EqualValues(t, 7, info.Records[0].Height)
	assert.Equal(t, "0xab07", info.Records[0].TxHash)
	assert.EqualValues(t, 6, info.Records[1].Height)
}

func TestNewSourceReplay(t *testing.T) {
	dir := t.TempDir()
	source, err := newSource(config.TestConfig(), log.NewNopLogger(), dir)
	require.NoError(t, err)
	assert.Contains(t, source.String(), dir)
}
