package provider

import (
	"context"

	"github.com/tendermint/tendermint/types"
)

//go:generate ../../scripts/mockery_generate.sh Provider

// Provider supplies the relayer with blocks of the source chain. It performs
// no verification; the destination light client does that.
type Provider interface {
	// LatestHeight returns the height of the newest block the source has.
	LatestHeight(ctx context.Context) (int64, error)

	// LightBlock returns the signed header and the validator set for exactly
	// height. A block that is not produced yet is waited for, within the
	// provider's retry bound.
	//
	// height must be > 0.
	LightBlock(ctx context.Context, height int64) (*types.LightBlock, error)

	// ValidatorSet returns the validator set that signs the block at height.
	//
	// height must be > 0.
	ValidatorSet(ctx context.Context, height int64) (*types.ValidatorSet, error)

	// String identifies the provider in logs.
	String() string
}
