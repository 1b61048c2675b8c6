package factory

import (
	"fmt"

	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/types"
)

// Validator returns a validator whose key is derived from seed.
func Validator(seed string, votingPower int64) *types.Validator {
	privKey := ed25519.GenPrivKeyFromSecret([]byte(seed))
	return types.NewValidator(privKey.PubKey(), votingPower)
}

// ValidatorSet returns a set of numValidators validators with equal power.
// The same arguments always produce the same set.
func ValidatorSet(numValidators int, votingPower int64) *types.ValidatorSet {
	valz := make([]*types.Validator, numValidators)
	for i := 0; i < numValidators; i++ {
		valz[i] = Validator(fmt.Sprintf("validator-%d", i), votingPower)
	}

	return types.NewValidatorSet(valz)
}
