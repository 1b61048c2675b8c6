package factory

import (
	"fmt"
	"time"

	"github.com/tendermint/tendermint/crypto/tmhash"
	tmversion "github.com/tendermint/tendermint/proto/tendermint/version"
	"github.com/tendermint/tendermint/types"
	"github.com/tendermint/tendermint/version"
)

const DefaultChainID = "test-chain"

// DefaultTestTime is the time of the header at height 0. It has a sub-second
// component so precision loss shows up in tests.
var DefaultTestTime = time.Date(2021, 1, 1, 0, 0, 0, 123456789, time.UTC)

func hash(label string, height int64) []byte {
	return tmhash.Sum([]byte(fmt.Sprintf("%s-%d", label, height)))
}

// MakeHeader returns a header at height with every hash populated.
func MakeHeader(chainID string, height int64, vals *types.ValidatorSet) *types.Header {
	header := &types.Header{
		Version:            tmversion.Consensus{Block: version.BlockProtocol, App: 1},
		ChainID:            chainID,
		Height:             height,
		Time:               DefaultTestTime.Add(time.Duration(height) * time.Second),
		ValidatorsHash:     vals.Hash(),
		NextValidatorsHash: vals.Hash(),
		ConsensusHash:      hash("consensus", height),
		AppHash:            hash("app", height),
		DataHash:           hash("data", height),
		EvidenceHash:       hash("evidence", height),
		LastCommitHash:     hash("last_commit", height),
		LastResultsHash:    hash("last_results", height),
		ProposerAddress:    vals.Validators[0].Address,
	}
	if height > 1 {
		header.LastBlockID = BlockID(height - 1)
	}

	return header
}

// BlockID returns a deterministic block id for height.
func BlockID(height int64) types.BlockID {
	return types.BlockID{
		Hash:          hash("block", height),
		PartSetHeader: types.PartSetHeader{Total: 1, Hash: hash("parts", height)},
	}
}

// MakeCommit returns a commit for header in which every validator of vals
// signed. Signatures are not valid, only well-formed.
func MakeCommit(header *types.Header, vals *types.ValidatorSet) *types.Commit {
	sigs := make([]types.CommitSig, len(vals.Validators))
	for i, val := range vals.Validators {
		sigs[i] = types.CommitSig{
			BlockIDFlag:      types.BlockIDFlagCommit,
			ValidatorAddress: val.Address,
			Timestamp:        header.Time.Add(time.Duration(i) * time.Millisecond),
			Signature:        append(hash("sig", header.Height), byte(i)),
		}
	}

	blockID := BlockID(header.Height)
	blockID.Hash = header.Hash()

	return &types.Commit{
		Height:     header.Height,
		Round:      0,
		BlockID:    blockID,
		Signatures: sigs,
	}
}

// MakeLightBlock returns a light block at height signed by vals.
func MakeLightBlock(chainID string, height int64, vals *types.ValidatorSet) *types.LightBlock {
	header := MakeHeader(chainID, height, vals)
	return &types.LightBlock{
		SignedHeader: &types.SignedHeader{
			Header: header,
			Commit: MakeCommit(header, vals),
		},
		ValidatorSet: vals,
	}
}

// MakeBlock returns a block wrapping the header of lb.
func MakeBlock(lb *types.LightBlock) *types.Block {
	return &types.Block{
		Header:     *lb.Header,
		LastCommit: &types.Commit{Height: lb.Height - 1},
	}
}
