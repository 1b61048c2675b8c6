package envelope_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-relayer/internal/envelope"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

func TestEncodeByteExact(t *testing.T) {
	bz, err := envelope.Encode(&lightproto.Fraction{Numerator: 1, Denominator: 3}, "/t.F")
	require.NoError(t, err)

	expected := []byte{
		0x0a, 0x04, '/', 't', '.', 'F', // type_url
		0x12, 0x04, 0x08, 0x01, 0x10, 0x03, // value
	}
	assert.Equal(t, expected, bz)
}

func TestEncodeDeterministic(t *testing.T) {
	msg := &lightproto.ConsensusState{
		Timestamp:          &gogotypes.Timestamp{Seconds: 1600000000, Nanos: 123456789},
		Root:               &lightproto.MerkleRoot{Hash: []byte("app_hash")},
		NextValidatorsHash: []byte("next_vals"),
	}

	first, err := envelope.Encode(msg, envelope.TypeURLConsensusState)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := envelope.Encode(proto.Clone(msg), envelope.TypeURLConsensusState)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	ts, err := gogotypes.TimestampProto(time.Date(2021, 5, 4, 3, 2, 1, 987654321, time.UTC))
	require.NoError(t, err)

	in := &lightproto.ClientState{
		ChainId:                      "test-chain",
		TrustLevel:                   &lightproto.Fraction{Numerator: 1, Denominator: 3},
		TrustingPeriod:               gogotypes.DurationProto(100 * time.Hour),
		UnbondingPeriod:              gogotypes.DurationProto(200 * time.Hour),
		MaxClockDrift:                gogotypes.DurationProto(10 * time.Second),
		LatestHeight:                 100,
		AllowUpdateAfterExpiry:       true,
		AllowUpdateAfterMisbehaviour: true,
	}
	bz, err := envelope.Encode(in, envelope.TypeURLClientState)
	require.NoError(t, err)

	out := new(lightproto.ClientState)
	require.NoError(t, envelope.Decode(bz, envelope.TypeURLClientState, out))
	assert.True(t, proto.Equal(in, out), "expected %v, got %v", in, out)

	cs := &lightproto.ConsensusState{Timestamp: ts}
	bz, err = envelope.Encode(cs, envelope.TypeURLConsensusState)
	require.NoError(t, err)
	decoded := new(lightproto.ConsensusState)
	require.NoError(t, envelope.Decode(bz, envelope.TypeURLConsensusState, decoded))
	assert.EqualValues(t, 987654321, decoded.Timestamp.Nanos)
}

func TestDecodeTypeURLMismatch(t *testing.T) {
	bz, err := envelope.Encode(&lightproto.Fraction{Numerator: 1, Denominator: 3}, envelope.TypeURLClientState)
	require.NoError(t, err)

	err = envelope.Decode(bz, envelope.TypeURLHeader, new(lightproto.TmHeader))
	var mismatch envelope.ErrTypeURLMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, envelope.TypeURLHeader, mismatch.Expected)
	assert.Equal(t, envelope.TypeURLClientState, mismatch.Got)
}

func TestEncodeInvalidInput(t *testing.T) {
	_, err := envelope.Encode(nil, envelope.TypeURLHeader)
	require.Error(t, err)

	_, err = envelope.Encode(&lightproto.Fraction{}, "")
	require.Error(t, err)

	err = envelope.Decode([]byte{0xff, 0xff, 0xff}, envelope.TypeURLHeader, new(lightproto.TmHeader))
	require.Error(t, err)
}
