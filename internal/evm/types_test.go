package evm

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name    string
		receipt *Receipt
		outcome Outcome
		err     bool
	}{
		{"success", &Receipt{Status: 1}, OutcomeSuccess, false},
		{"already exists", &Receipt{Status: 0, RevertReason: "execution reverted: clientImpl already exists"}, OutcomeAlreadyExists, false},
		{"rejected", &Receipt{Status: 0, RevertReason: "execution reverted: bad header"}, OutcomeRejected, false},
		{"rejected without reason", &Receipt{Status: 0}, OutcomeRejected, false},
		{"unknown status", &Receipt{Status: 7}, "", true},
		{"nil receipt", nil, "", true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := tc.receipt.Classify()
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, outcome)
		})
	}

	_, err := (&Receipt{Status: 2}).Classify()
	var unknown ErrUnknownReceiptStatus
	require.True(t, errors.As(err, &unknown))
	assert.EqualValues(t, 2, unknown.Status)
}

func TestFee(t *testing.T) {
	r := &Receipt{GasUsed: 21_000, GasPrice: big.NewInt(2_000_000_000)}
	assert.Equal(t, big.NewInt(42_000_000_000_000), r.Fee())

	assert.Zero(t, (&Receipt{GasUsed: 5}).Fee().Sign())
}
