package canonical_test

import (
	"fmt"
	"testing"

	"github.com/gogo/protobuf/proto"
	tmtypes "github.com/tendermint/tendermint/types"
	"pgregory.net/rapid"

	"github.com/tendermint/light-relayer/internal/canonical"
	"github.com/tendermint/light-relayer/internal/envelope"
	"github.com/tendermint/light-relayer/internal/test/factory"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

func drawValidators(t *rapid.T) []*tmtypes.Validator {
	powers := rapid.SliceOfN(rapid.Int64Range(0, 1_000_000), 1, 32).Draw(t, "powers").([]int64)
	vals := make([]*tmtypes.Validator, len(powers))
	for i, p := range powers {
		vals[i] = factory.Validator(fmt.Sprintf("v%d", i), p)
	}
	return vals
}

func TestTotalVotingPowerIsSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vals := drawValidators(t)

		set, err := canonical.ValidatorSet(&tmtypes.ValidatorSet{Validators: vals}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var sum int64
		for i, v := range set.Validators {
			sum += v.VotingPower
			if string(v.Address) != string(vals[i].Address) {
				t.Fatalf("validator %d reordered", i)
			}
		}
		if sum != set.TotalVotingPower {
			t.Fatalf("total %d != sum %d", set.TotalVotingPower, sum)
		}
	})
}

func TestCommitSignatureOrderPreserved(t *testing.T) {
	flags := []tmtypes.BlockIDFlag{
		tmtypes.BlockIDFlagAbsent,
		tmtypes.BlockIDFlagCommit,
		tmtypes.BlockIDFlagNil,
	}
	expected := map[tmtypes.BlockIDFlag]lightproto.BlockIDFlag{
		tmtypes.BlockIDFlagAbsent: lightproto.BLOCK_ID_FLAG_ABSENT,
		tmtypes.BlockIDFlagCommit: lightproto.BLOCK_ID_FLAG_COMMIT,
		tmtypes.BlockIDFlagNil:    lightproto.BLOCK_ID_FLAG_NIL,
	}

	rapid.Check(t, func(t *rapid.T) {
		drawn := rapid.SliceOfN(rapid.SampledFrom(flags), 1, 64).Draw(t, "flags").([]tmtypes.BlockIDFlag)

		commit := &tmtypes.Commit{Height: 7, BlockID: factory.BlockID(7)}
		for i, f := range drawn {
			sig := tmtypes.NewCommitSigAbsent()
			if f != tmtypes.BlockIDFlagAbsent {
				sig = tmtypes.CommitSig{
					BlockIDFlag:      f,
					ValidatorAddress: factory.Validator(fmt.Sprintf("v%d", i), 1).Address,
					Timestamp:        factory.DefaultTestTime,
					Signature:        []byte{byte(i), byte(i >> 8)},
				}
			}
			commit.Signatures = append(commit.Signatures, sig)
		}

		c, err := canonical.Commit(commit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Signatures) != len(drawn) {
			t.Fatalf("expected %d signatures, got %d", len(drawn), len(c.Signatures))
		}
		for i, sig := range c.Signatures {
			if sig.BlockIdFlag != expected[drawn[i]] {
				t.Fatalf("signature %d: expected %v, got %v", i, expected[drawn[i]], sig.BlockIdFlag)
			}
			if string(sig.ValidatorAddress) != string(commit.Signatures[i].ValidatorAddress) {
				t.Fatalf("signature %d reordered", i)
			}
		}
	})
}

func TestEnvelopeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "validators").(int)
		height := rapid.Int64Range(2, 1<<30).Draw(t, "height").(int64)
		trusted := rapid.Int64Range(1, height-1).Draw(t, "trusted").(int64)

		lb := factory.MakeLightBlock(factory.DefaultChainID, height, factory.ValidatorSet(n, 10))
		tm, err := canonical.LightBlock(lb)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tm.TrustedHeight = trusted

		bz, err := envelope.Encode(tm, envelope.TypeURLHeader)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		decoded := new(lightproto.TmHeader)
		if err := envelope.Decode(bz, envelope.TypeURLHeader, decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !proto.Equal(tm, decoded) {
			t.Fatalf("round trip mismatch:\n%v\n%v", tm, decoded)
		}
	})
}
