// Package canonical maps Tendermint blocks, commits and validator sets into
// the chain-agnostic messages of proto/tendermint/light. No tendermint type
// crosses this boundary.
package canonical

import (
	"errors"
	"fmt"
	"time"

	gogotypes "github.com/gogo/protobuf/types"
	tmtypes "github.com/tendermint/tendermint/types"

	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

// Timestamp converts t keeping nanosecond precision.
func Timestamp(t time.Time) (*gogotypes.Timestamp, error) {
	return gogotypes.TimestampProto(t)
}

// BlockID converts a block id. A zero id maps to an empty message.
func BlockID(id tmtypes.BlockID) *lightproto.CanonicalBlockID {
	return &lightproto.CanonicalBlockID{
		Hash: id.Hash,
		PartSetHeader: &lightproto.CanonicalPartSetHeader{
			Total: id.PartSetHeader.Total,
			Hash:  id.PartSetHeader.Hash,
		},
	}
}

// Header converts a block header. Fields that every non-genesis header must
// carry are rejected when absent.
func Header(h *tmtypes.Header) (*lightproto.LightHeader, error) {
	if h == nil {
		return nil, errMissing("header", 0)
	}
	height := h.Height
	if height <= 0 {
		return nil, ErrConversion{Field: "height", Height: height, Reason: errors.New("must be positive")}
	}

	type field struct {
		name  string
		value []byte
	}
	required := []field{
		{"validators_hash", h.ValidatorsHash},
		{"next_validators_hash", h.NextValidatorsHash},
		{"consensus_hash", h.ConsensusHash},
		{"proposer_address", h.ProposerAddress},
	}
	if height > 1 {
		required = append(required,
			field{"last_commit_hash", h.LastCommitHash},
			field{"data_hash", h.DataHash},
			field{"evidence_hash", h.EvidenceHash},
			field{"last_results_hash", h.LastResultsHash},
		)
	}
	if h.ChainID == "" {
		return nil, errMissing("chain_id", height)
	}
	for _, f := range required {
		if len(f.value) == 0 {
			return nil, errMissing(f.name, height)
		}
	}
	if height > 1 && h.LastBlockID.IsZero() {
		return nil, errMissing("last_block_id", height)
	}
	if h.Time.IsZero() {
		return nil, errMissing("time", height)
	}

	ts, err := Timestamp(h.Time)
	if err != nil {
		return nil, ErrConversion{Field: "time", Height: height, Reason: err}
	}

	return &lightproto.LightHeader{
		Version:            &lightproto.Consensus{Block: h.Version.Block, App: h.Version.App},
		ChainId:            h.ChainID,
		Height:             height,
		Time:               ts,
		LastBlockId:        BlockID(h.LastBlockID),
		LastCommitHash:     h.LastCommitHash,
		DataHash:           h.DataHash,
		ValidatorsHash:     h.ValidatorsHash,
		NextValidatorsHash: h.NextValidatorsHash,
		ConsensusHash:      h.ConsensusHash,
		AppHash:            h.AppHash,
		LastResultsHash:    h.LastResultsHash,
		EvidenceHash:       h.EvidenceHash,
		ProposerAddress:    h.ProposerAddress,
	}, nil
}

// CommitSig converts the idx-th signature of a commit at height.
func CommitSig(cs tmtypes.CommitSig, height int64, idx int) (*lightproto.CommitSig, error) {
	field := func(name string) string {
		return fmt.Sprintf("signatures[%d].%s", idx, name)
	}

	var flag lightproto.BlockIDFlag
	switch cs.BlockIDFlag {
	case tmtypes.BlockIDFlagAbsent:
		return &lightproto.CommitSig{BlockIdFlag: lightproto.BLOCK_ID_FLAG_ABSENT}, nil
	case tmtypes.BlockIDFlagCommit:
		flag = lightproto.BLOCK_ID_FLAG_COMMIT
	case tmtypes.BlockIDFlagNil:
		flag = lightproto.BLOCK_ID_FLAG_NIL
	default:
		return nil, ErrConversion{
			Field:  field("block_id_flag"),
			Height: height,
			Reason: fmt.Errorf("unknown flag %d", cs.BlockIDFlag),
		}
	}

	if len(cs.ValidatorAddress) == 0 {
		return nil, errMissing(field("validator_address"), height)
	}
	if len(cs.Signature) == 0 {
		return nil, errMissing(field("signature"), height)
	}
	ts, err := Timestamp(cs.Timestamp)
	if err != nil {
		return nil, ErrConversion{Field: field("timestamp"), Height: height, Reason: err}
	}

	return &lightproto.CommitSig{
		BlockIdFlag:      flag,
		ValidatorAddress: cs.ValidatorAddress,
		Timestamp:        ts,
		Signature:        cs.Signature,
	}, nil
}

// Commit converts a commit, keeping the signatures in their original order.
func Commit(c *tmtypes.Commit) (*lightproto.Commit, error) {
	if c == nil {
		return nil, errMissing("commit", 0)
	}
	if c.BlockID.IsZero() {
		return nil, errMissing("commit.block_id", c.Height)
	}

	sigs := make([]*lightproto.CommitSig, len(c.Signatures))
	for i, cs := range c.Signatures {
		sig, err := CommitSig(cs, c.Height, i)
		if err != nil {
			return nil, err
		}
		sigs[i] = sig
	}

	return &lightproto.Commit{
		Height:     c.Height,
		Round:      c.Round,
		BlockId:    BlockID(c.BlockID),
		Signatures: sigs,
	}, nil
}

// SignedHeader converts a header together with its commit.
func SignedHeader(sh *tmtypes.SignedHeader) (*lightproto.SignedHeader, error) {
	if sh == nil {
		return nil, errMissing("signed_header", 0)
	}
	header, err := Header(sh.Header)
	if err != nil {
		return nil, err
	}
	if sh.Commit == nil {
		return nil, errMissing("commit", header.Height)
	}
	if sh.Commit.Height != header.Height {
		return nil, ErrConversion{
			Field:  "commit.height",
			Height: header.Height,
			Reason: fmt.Errorf("commit is for height %d", sh.Commit.Height),
		}
	}
	commit, err := Commit(sh.Commit)
	if err != nil {
		return nil, err
	}

	return &lightproto.SignedHeader{Header: header, Commit: commit}, nil
}

// Validator converts a single validator.
func Validator(v *tmtypes.Validator, height int64) (*lightproto.Validator, error) {
	if v == nil {
		return nil, errMissing("validator", height)
	}
	if len(v.Address) == 0 {
		return nil, errMissing("validator.address", height)
	}
	if v.PubKey == nil {
		return nil, errMissing(fmt.Sprintf("validator[%X].pub_key", v.Address), height)
	}
	if v.VotingPower < 0 {
		return nil, ErrConversion{
			Field:  fmt.Sprintf("validator[%X].voting_power", v.Address),
			Height: height,
			Reason: fmt.Errorf("negative voting power %d", v.VotingPower),
		}
	}

	return &lightproto.Validator{
		Address:          v.Address,
		PubKey:           v.PubKey.Bytes(),
		VotingPower:      v.VotingPower,
		ProposerPriority: v.ProposerPriority,
	}, nil
}

// ValidatorSet converts a validator set at height. Member order is kept and
// the total voting power is recomputed from the members.
func ValidatorSet(vs *tmtypes.ValidatorSet, height int64) (*lightproto.ValidatorSet, error) {
	if vs == nil || len(vs.Validators) == 0 {
		return nil, errMissing("validator_set", height)
	}

	var (
		vals  = make([]*lightproto.Validator, len(vs.Validators))
		total int64
	)
	for i, v := range vs.Validators {
		val, err := Validator(v, height)
		if err != nil {
			return nil, err
		}
		total += val.VotingPower
		if total > tmtypes.MaxTotalVotingPower {
			return nil, ErrConversion{
				Field:  "validator_set.total_voting_power",
				Height: height,
				Reason: fmt.Errorf("exceeds maximum %d", tmtypes.MaxTotalVotingPower),
			}
		}
		vals[i] = val
	}

	set := &lightproto.ValidatorSet{
		Validators:       vals,
		TotalVotingPower: total,
	}
	if vs.Proposer != nil {
		proposer, err := Validator(vs.Proposer, height)
		if err != nil {
			return nil, err
		}
		set.Proposer = proposer
	}

	return set, nil
}

// LightBlock converts a signed header and the validator set that signed it
// into an update message with empty trusted fields.
func LightBlock(lb *tmtypes.LightBlock) (*lightproto.TmHeader, error) {
	if lb == nil {
		return nil, errMissing("light_block", 0)
	}
	sh, err := SignedHeader(lb.SignedHeader)
	if err != nil {
		return nil, err
	}
	height := sh.Header.Height

	vals, err := ValidatorSet(lb.ValidatorSet, height)
	if err != nil {
		return nil, err
	}
	if n, m := len(sh.Commit.Signatures), len(vals.Validators); n != m {
		return nil, ErrConversion{
			Field:  "commit.signatures",
			Height: height,
			Reason: fmt.Errorf("%d signatures for %d validators", n, m),
		}
	}

	return &lightproto.TmHeader{
		SignedHeader: sh,
		ValidatorSet: vals,
	}, nil
}
