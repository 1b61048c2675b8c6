package light_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

func testValidatorSet(powers ...int64) *lightproto.ValidatorSet {
	vs := &lightproto.ValidatorSet{}
	for i, p := range powers {
		vs.Validators = append(vs.Validators, &lightproto.Validator{
			Address:     []byte{byte(i + 1)},
			PubKey:      []byte{0xAA, byte(i)},
			VotingPower: p,
		})
		vs.TotalVotingPower += p
	}
	return vs
}

func testTmHeader(height, trusted int64, sigs int) *lightproto.TmHeader {
	commit := &lightproto.Commit{Height: height}
	for i := 0; i < sigs; i++ {
		commit.Signatures = append(commit.Signatures, &lightproto.CommitSig{
			BlockIdFlag: lightproto.BLOCK_ID_FLAG_COMMIT,
		})
	}
	return &lightproto.TmHeader{
		SignedHeader: &lightproto.SignedHeader{
			Header: &lightproto.LightHeader{ChainId: "test", Height: height},
			Commit: commit,
		},
		ValidatorSet:  testValidatorSet(10, 20),
		TrustedHeight: trusted,
	}
}

func TestValidatorSet_ValidateBasic(t *testing.T) {
	testCases := []struct {
		testName  string
		malleate  func(*lightproto.ValidatorSet)
		expectErr bool
	}{
		{"valid", func(*lightproto.ValidatorSet) {}, false},
		{"wrong total", func(vs *lightproto.ValidatorSet) { vs.TotalVotingPower++ }, true},
		{"negative power", func(vs *lightproto.ValidatorSet) {
			vs.Validators[0].VotingPower = -10
			vs.TotalVotingPower = 10
		}, true},
		{"missing pubkey", func(vs *lightproto.ValidatorSet) { vs.Validators[1].PubKey = nil }, true},
		{"empty", func(vs *lightproto.ValidatorSet) {
			vs.Validators = nil
			vs.TotalVotingPower = 0
		}, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.testName, func(t *testing.T) {
			vs := testValidatorSet(10, 20)
			tc.malleate(vs)
			require.Equal(t, tc.expectErr, vs.ValidateBasic() != nil)
		})
	}
}

func TestTmHeader_ValidateBasic(t *testing.T) {
	testCases := []struct {
		testName  string
		msg       *lightproto.TmHeader
		expectErr bool
	}{
		{"adjacent", testTmHeader(101, 100, 2), false},
		{"non-adjacent with trusted validators", func() *lightproto.TmHeader {
			h := testTmHeader(102, 100, 2)
			h.TrustedValidators = testValidatorSet(5)
			return h
		}(), false},
		{"signature count mismatch", testTmHeader(101, 100, 3), true},
		{"trusted height not below height", testTmHeader(101, 101, 2), true},
		{"commit height mismatch", func() *lightproto.TmHeader {
			h := testTmHeader(101, 100, 2)
			h.SignedHeader.Commit.Height = 100
			return h
		}(), true},
		{"invalid trusted validators", func() *lightproto.TmHeader {
			h := testTmHeader(102, 100, 2)
			h.TrustedValidators = &lightproto.ValidatorSet{}
			return h
		}(), true},
		{"nil", nil, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.testName, func(t *testing.T) {
			require.Equal(t, tc.expectErr, tc.msg.ValidateBasic() != nil)
		})
	}
}

func TestTmHeader_Height(t *testing.T) {
	require.EqualValues(t, 101, testTmHeader(101, 100, 1).Height())
	require.EqualValues(t, 0, (*lightproto.TmHeader)(nil).Height())
}
