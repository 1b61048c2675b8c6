package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	rpchttp "github.com/tendermint/tendermint/rpc/client/http"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	"github.com/tendermint/tendermint/types"
	"golang.org/x/sync/errgroup"

	"github.com/tendermint/light-relayer/libs/log"
	"github.com/tendermint/light-relayer/light/provider"
)

var (
	defaultMaxRetryAttempts = 10
	defaultRetryInterval    = 2 * time.Second
	maxPerPage              = 100
)

//go:generate ../../../scripts/mockery_generate.sh RPCClient

// RPCClient is the subset of the tendermint RPC client the provider uses.
// rpchttp.HTTP satisfies it.
type RPCClient interface {
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
	Block(ctx context.Context, height *int64) (*ctypes.ResultBlock, error)
	Commit(ctx context.Context, height *int64) (*ctypes.ResultCommit, error)
	Validators(ctx context.Context, height *int64, page, perPage *int) (*ctypes.ResultValidators, error)
	Remote() string
}

// Option sets a parameter for the provider.
type Option func(*http)

// MaxRetryAttempts bounds the number of fetch attempts for one height.
func MaxRetryAttempts(n int) Option {
	return func(p *http) {
		if n > 0 {
			p.maxRetryAttempts = n
		}
	}
}

// RetryInterval is the pause between two attempts.
func RetryInterval(d time.Duration) Option {
	return func(p *http) {
		p.retryInterval = d
	}
}

// Logger sets the logger of the provider.
func Logger(l log.Logger) Option {
	return func(p *http) {
		p.logger = l
	}
}

// http provider uses an RPC client to obtain the necessary information.
type http struct {
	chainID string
	client  RPCClient
	logger  log.Logger

	maxRetryAttempts int
	retryInterval    time.Duration
}

var _ provider.Provider = (*http)(nil)

// New creates a HTTP provider, which is using the rpchttp.HTTP client under
// the hood. If no scheme is provided in the remote URL, http will be used by
// default. An empty chainID disables the chain id check.
func New(chainID, remote string, opts ...Option) (provider.Provider, error) {
	// Ensure URL scheme is set (default HTTP) when not provided.
	if !strings.Contains(remote, "://") {
		remote = "http://" + remote
	}

	httpClient, err := rpchttp.New(remote, "/websocket")
	if err != nil {
		return nil, err
	}

	return NewWithClient(chainID, httpClient, opts...), nil
}

// NewWithClient allows you to provide a custom client.
func NewWithClient(chainID string, client RPCClient, opts ...Option) provider.Provider {
	p := &http{
		chainID:          chainID,
		client:           client,
		logger:           log.NewNopLogger(),
		maxRetryAttempts: defaultMaxRetryAttempts,
		retryInterval:    defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *http) String() string {
	return fmt.Sprintf("http{%s}", p.client.Remote())
}

// LatestHeight returns the newest height reported by /status.
func (p *http) LatestHeight(ctx context.Context) (int64, error) {
	var status *ctypes.ResultStatus
	err := p.retry(ctx, 0, func() (err error) {
		status, err = p.client.Status(ctx)
		if err == nil && status == nil {
			err = errors.New("empty status")
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// LightBlock waits for the block at height, then fetches its commit and
// validator set concurrently.
func (p *http) LightBlock(ctx context.Context, height int64) (*types.LightBlock, error) {
	if height <= 0 {
		return nil, provider.ErrInvalidHeight
	}

	err := p.retry(ctx, height, func() error {
		res, err := p.client.Block(ctx, &height)
		if err != nil {
			return err
		}
		if res == nil || res.Block == nil {
			return provider.ErrLightBlockNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var (
		sh   *types.SignedHeader
		vals *types.ValidatorSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sh, err = p.signedHeader(gctx, height)
		return err
	})
	g.Go(func() (err error) {
		vals, err = p.ValidatorSet(gctx, height)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.LightBlock{
		SignedHeader: sh,
		ValidatorSet: vals,
	}, nil
}

// ValidatorSet collects every page of /validators at height. The order of
// the RPC response is kept.
func (p *http) ValidatorSet(ctx context.Context, height int64) (*types.ValidatorSet, error) {
	if height <= 0 {
		return nil, provider.ErrInvalidHeight
	}

	var (
		vals    []*types.Validator
		perPage = maxPerPage
	)
	for page := 1; ; page++ {
		var res *ctypes.ResultValidators
		err := p.retry(ctx, height, func() (err error) {
			res, err = p.client.Validators(ctx, &height, &page, &perPage)
			if err == nil && res == nil {
				err = errors.New("empty validators response")
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		if res.BlockHeight != 0 && res.BlockHeight != height {
			return nil, provider.ErrBadLightBlock{
				Reason: fmt.Errorf("validators for height %d, expected %d", res.BlockHeight, height),
			}
		}
		vals = append(vals, res.Validators...)
		if len(res.Validators) == 0 || len(vals) >= res.Total {
			break
		}
	}

	if len(vals) == 0 {
		return nil, provider.ErrBadLightBlock{Reason: fmt.Errorf("empty validator set at height %d", height)}
	}

	return &types.ValidatorSet{Validators: vals}, nil
}

func (p *http) signedHeader(ctx context.Context, height int64) (*types.SignedHeader, error) {
	var commit *ctypes.ResultCommit
	err := p.retry(ctx, height, func() (err error) {
		commit, err = p.client.Commit(ctx, &height)
		if err == nil && commit == nil {
			err = errors.New("empty commit response")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	sh := &commit.SignedHeader
	switch {
	case sh.Header == nil:
		return nil, provider.ErrBadLightBlock{Reason: errors.New("header is nil")}
	case sh.Commit == nil:
		return nil, provider.ErrBadLightBlock{Reason: errors.New("commit is nil")}
	case sh.Height != height:
		return nil, provider.ErrBadLightBlock{
			Reason: fmt.Errorf("height %d requested, got header for %d", height, sh.Height),
		}
	case sh.Commit.Height != height:
		return nil, provider.ErrBadLightBlock{
			Reason: fmt.Errorf("height %d requested, got commit for %d", height, sh.Commit.Height),
		}
	case p.chainID != "" && sh.ChainID != p.chainID:
		return nil, provider.ErrBadLightBlock{
			Reason: fmt.Errorf("header belongs to another chain %q, not %q", sh.ChainID, p.chainID),
		}
	}

	return sh, nil
}

// retry calls fetch until it succeeds, at most maxRetryAttempts times,
// pausing retryInterval after each failure. A bad light block is not
// retried.
func (p *http) retry(ctx context.Context, height int64, fetch func() error) error {
	var err error
	for attempt := 1; attempt <= p.maxRetryAttempts; attempt++ {
		if err = fetch(); err == nil {
			return nil
		}

		var bad provider.ErrBadLightBlock
		if errors.As(err, &bad) {
			return err
		}
		if attempt == p.maxRetryAttempts {
			break
		}

		p.logger.Debug("fetch failed, retrying",
			"height", height, "attempt", attempt, "err", err)

		timer := time.NewTimer(p.retryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return provider.ErrRetriesExhausted{Height: height, Attempts: p.maxRetryAttempts, Reason: err}
}
