package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeLightBlock(t *testing.T) {
	vals := ValidatorSet(4, 10)
	lb := MakeLightBlock(DefaultChainID, 5, vals)

	require.NoError(t, lb.ValidateBasic(DefaultChainID))
	assert.EqualValues(t, 5, lb.Commit.Height)
	assert.Len(t, lb.Commit.Signatures, 4)
	assert.False(t, lb.Header.LastBlockID.IsZero())
}

func TestValidatorSetDeterministic(t *testing.T) {
	assert.Equal(t, ValidatorSet(3, 5).Hash(), ValidatorSet(3, 5).Hash())
}
