// Package snapshot implements a provider that replays header snapshots
// written by a previous run, so a relay can be reproduced without access to
// the source chain.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/tendermint/tendermint/types"

	"github.com/tendermint/light-relayer/internal/snapshot"
	"github.com/tendermint/light-relayer/light/provider"
)

type replay struct {
	dir string
}

var _ provider.Provider = (*replay)(nil)

// New returns a provider serving the snapshots stored in dir.
func New(dir string) provider.Provider {
	return &replay{dir: dir}
}

func (p *replay) String() string {
	return fmt.Sprintf("snapshot{%s}", p.dir)
}

// LatestHeight returns the lowest snapshotted height, so a relay without a
// start height replays every snapshot in order.
func (p *replay) LatestHeight(ctx context.Context) (int64, error) {
	heights, err := snapshot.Heights(p.dir)
	if err != nil {
		return 0, err
	}
	if len(heights) == 0 {
		return 0, provider.ErrLightBlockNotFound
	}
	return heights[0], nil
}

func (p *replay) LightBlock(ctx context.Context, height int64) (*types.LightBlock, error) {
	if height <= 0 {
		return nil, provider.ErrInvalidHeight
	}
	lb, err := snapshot.Load(p.dir, height)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil, provider.ErrLightBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	if lb.Height != height {
		return nil, provider.ErrBadLightBlock{
			Reason: fmt.Errorf("snapshot of height %d holds header %d", height, lb.Height),
		}
	}
	return lb, nil
}

func (p *replay) ValidatorSet(ctx context.Context, height int64) (*types.ValidatorSet, error) {
	if height <= 0 {
		return nil, provider.ErrInvalidHeight
	}
	vals, err := snapshot.LoadValidatorSet(p.dir, height)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil, provider.ErrLightBlockNotFound
	}
	return vals, err
}
