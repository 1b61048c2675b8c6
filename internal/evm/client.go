package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tendermint/light-relayer/libs/log"
)

// Backend is the part of an Ethereum JSON-RPC client the destination needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config addresses the destination contracts and sets transaction
// parameters.
type Config struct {
	ChainID *big.Int
	Handler common.Address
	Host    common.Address

	GasLimit uint64
	// GasPrice in wei. Nil or zero lets the node suggest one.
	GasPrice *big.Int
	// Confirmations is the number of blocks, including the one holding the
	// transaction, to wait for before a receipt is returned.
	Confirmations uint64
	PollInterval  time.Duration
}

// Client submits IBC client messages to the destination contracts.
type Client struct {
	cfg     Config
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address
	logger  log.Logger

	handler *bind.BoundContract
}

var _ Destination = (*Client)(nil)

// ClientOption sets an optional parameter of the Client.
type ClientOption func(*Client)

// WithLogger sets the logger.
func WithLogger(l log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// Dial connects to the JSON-RPC endpoint at rawurl.
func Dial(ctx context.Context, rawurl string, key *ecdsa.PrivateKey, cfg Config, opts ...ClientOption) (*Client, error) {
	backend, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawurl, err)
	}
	if cfg.ChainID == nil || cfg.ChainID.Sign() == 0 {
		if cfg.ChainID, err = backend.ChainID(ctx); err != nil {
			return nil, fmt.Errorf("query chain id: %w", err)
		}
	}
	return NewClient(backend, key, cfg, opts...)
}

// NewClient returns a Client signing with key.
func NewClient(backend Backend, key *ecdsa.PrivateKey, cfg Config, opts ...ClientOption) (*Client, error) {
	if key == nil {
		return nil, errors.New("missing signing key")
	}
	if cfg.ChainID == nil {
		return nil, errors.New("missing chain id")
	}
	if cfg.Confirmations == 0 {
		cfg.Confirmations = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}

	c := &Client{
		cfg:     cfg,
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		logger:  log.NewNopLogger(),
		handler: bind.NewBoundContract(cfg.Handler, parsedHandlerABI, backend, backend, backend),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// From returns the address transactions are sent from.
func (c *Client) From() common.Address { return c.from }

// RegisterClientType calls IBCHandler.registerClient.
func (c *Client) RegisterClientType(ctx context.Context, clientType string, impl common.Address) (*Receipt, error) {
	return c.transact(ctx, methodRegisterClient, clientType, impl)
}

// CreateClient calls IBCHandler.createClient.
func (c *Client) CreateClient(ctx context.Context, msg MsgCreateClient) (*Receipt, error) {
	return c.transact(ctx, methodCreateClient, msg)
}

// UpdateClient calls IBCHandler.updateClient.
func (c *Client) UpdateClient(ctx context.Context, msg MsgUpdateClient) (*Receipt, error) {
	return c.transact(ctx, methodUpdateClient, msg)
}

// ClientIDs scans the GeneratedClientIdentifier logs of the host from
// genesis and returns the identifiers ordered by block and log index.
func (c *Client) ClientIDs(ctx context.Context) ([]string, error) {
	event := parsedHostABI.Events[eventGeneratedClientIdentifier]
	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.cfg.Host},
		Topics:    [][]common.Hash{{event.ID}},
		FromBlock: big.NewInt(0),
	}
	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("filter %s logs: %w", event.Name, err)
	}
	return parseClientIDs(event, logs)
}

func parseClientIDs(event abi.Event, logs []gethtypes.Log) ([]string, error) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	ids := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		values, err := event.Inputs.Unpack(l.Data)
		if err != nil {
			return nil, fmt.Errorf("unpack %s log in tx %s: %w", event.Name, l.TxHash.Hex(), err)
		}
		id, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected %s value %T", event.Name, values[0])
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// transact sends a call to the handler and waits for its confirmed receipt.
// An error means the transaction was not, or may not have been, mined.
func (c *Client) transact(ctx context.Context, method string, args ...interface{}) (*Receipt, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.cfg.ChainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.GasLimit = c.cfg.GasLimit
	if c.cfg.GasPrice != nil && c.cfg.GasPrice.Sign() > 0 {
		opts.GasPrice = c.cfg.GasPrice
	}

	tx, err := c.handler.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}
	c.logger.Debug("sent transaction", "method", method, "tx", tx.Hash().Hex(), "nonce", tx.Nonce())

	mined, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s tx %s: %w", method, tx.Hash().Hex(), err)
	}
	if err := c.waitConfirmations(ctx, mined.BlockNumber.Uint64()); err != nil {
		return nil, fmt.Errorf("confirm %s tx %s: %w", method, tx.Hash().Hex(), err)
	}

	receipt := &Receipt{
		TxHash:      tx.Hash(),
		Status:      mined.Status,
		BlockNumber: mined.BlockNumber.Uint64(),
		GasUsed:     mined.GasUsed,
		GasLimit:    tx.Gas(),
		GasPrice:    c.effectiveGasPrice(ctx, tx, mined.BlockNumber),
	}
	if receipt.Status == gethtypes.ReceiptStatusFailed {
		receipt.RevertReason = c.revertReason(ctx, tx, mined.BlockNumber)
	}

	return receipt, nil
}

// effectiveGasPrice is the price per gas tx paid in block. Dynamic fee
// transactions pay the block's base fee plus their capped tip; when the
// header can't be read their fee cap is returned.
func (c *Client) effectiveGasPrice(ctx context.Context, tx *gethtypes.Transaction, block *big.Int) *big.Int {
	if tx.Type() == gethtypes.LegacyTxType {
		return tx.GasPrice()
	}
	header, err := c.backend.HeaderByNumber(ctx, block)
	if err != nil || header.BaseFee == nil {
		c.logger.Debug("no base fee for effective gas price", "block", block, "err", err)
		return tx.GasPrice()
	}
	return new(big.Int).Add(tx.EffectiveGasTipValue(header.BaseFee), header.BaseFee)
}

// waitConfirmations blocks until the chain head is Confirmations-1 blocks
// past minedAt.
func (c *Client) waitConfirmations(ctx context.Context, minedAt uint64) error {
	target := minedAt + c.cfg.Confirmations - 1
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		head, err := c.backend.BlockNumber(ctx)
		if err != nil {
			return err
		}
		if head >= target {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// revertReason replays tx as a call at the block it failed in. Nodes report
// the reason as the call error or as ABI-encoded return data.
func (c *Client) revertReason(ctx context.Context, tx *gethtypes.Transaction, block *big.Int) string {
	msg := ethereum.CallMsg{
		From:     c.from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}
	out, err := c.backend.CallContract(ctx, msg, block)
	if err != nil {
		return err.Error()
	}
	if reason, err := abi.UnpackRevert(out); err == nil {
		return reason
	}
	return ""
}
