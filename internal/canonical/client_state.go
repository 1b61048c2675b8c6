package canonical

import (
	"time"

	gogotypes "github.com/gogo/protobuf/types"
	tmmath "github.com/tendermint/tendermint/libs/math"

	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

// DefaultTrustLevel is the fraction of the trusted validator set that must
// sign a non-adjacent header.
var DefaultTrustLevel = tmmath.Fraction{Numerator: 1, Denominator: 3}

// ClientParams are the policy fields of a new destination client.
type ClientParams struct {
	TrustLevel                   tmmath.Fraction
	TrustingPeriod               time.Duration
	UnbondingPeriod              time.Duration
	MaxClockDrift                time.Duration
	AllowUpdateAfterExpiry       bool
	AllowUpdateAfterMisbehaviour bool
}

// DefaultClientParams returns the parameters used when none are configured.
func DefaultClientParams() ClientParams {
	return ClientParams{
		TrustLevel:                   DefaultTrustLevel,
		TrustingPeriod:               14 * 24 * time.Hour,
		UnbondingPeriod:              21 * 24 * time.Hour,
		MaxClockDrift:                10 * time.Second,
		AllowUpdateAfterExpiry:       true,
		AllowUpdateAfterMisbehaviour: true,
	}
}

// ClientState builds the client state registered at header's height. The
// client is not frozen.
func ClientState(header *lightproto.LightHeader, p ClientParams) *lightproto.ClientState {
	return &lightproto.ClientState{
		ChainId: header.GetChainId(),
		TrustLevel: &lightproto.Fraction{
			Numerator:   p.TrustLevel.Numerator,
			Denominator: p.TrustLevel.Denominator,
		},
		TrustingPeriod:               gogotypes.DurationProto(p.TrustingPeriod),
		UnbondingPeriod:              gogotypes.DurationProto(p.UnbondingPeriod),
		MaxClockDrift:                gogotypes.DurationProto(p.MaxClockDrift),
		FrozenHeight:                 0,
		LatestHeight:                 header.GetHeight(),
		AllowUpdateAfterExpiry:       p.AllowUpdateAfterExpiry,
		AllowUpdateAfterMisbehaviour: p.AllowUpdateAfterMisbehaviour,
	}
}

// ConsensusState snapshots the state root, time and next validators hash of
// header.
func ConsensusState(header *lightproto.LightHeader) *lightproto.ConsensusState {
	return &lightproto.ConsensusState{
		Timestamp:          header.GetTime(),
		Root:               &lightproto.MerkleRoot{Hash: header.GetAppHash()},
		NextValidatorsHash: header.GetNextValidatorsHash(),
	}
}
