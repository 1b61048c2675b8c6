package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

//go:generate ../../scripts/mockery_generate.sh Destination

// Destination is the IBC host deployed on the destination chain. Every call
// blocks until the transaction is mined and confirmed.
type Destination interface {
	// RegisterClientType binds a light client implementation to a client
	// type.
	RegisterClientType(ctx context.Context, clientType string, impl common.Address) (*Receipt, error)

	// CreateClient creates a new client instance.
	CreateClient(ctx context.Context, msg MsgCreateClient) (*Receipt, error)

	// UpdateClient submits a header to an existing client.
	UpdateClient(ctx context.Context, msg MsgUpdateClient) (*Receipt, error)

	// ClientIDs returns every client identifier the host generated, oldest
	// first.
	ClientIDs(ctx context.Context) ([]string, error)
}

// MsgCreateClient mirrors IBCMsgs.MsgCreateClient. Field names follow the
// ABI tuple components.
type MsgCreateClient struct {
	ClientType          string
	Height              uint64
	ClientStateBytes    []byte
	ConsensusStateBytes []byte
}

// MsgUpdateClient mirrors IBCMsgs.MsgUpdateClient.
type MsgUpdateClient struct {
	ClientId string //nolint:revive // must match the ABI component name
	Header   []byte
}

// Outcome classifies a mined transaction.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeAlreadyExists Outcome = "already_exists"
	OutcomeRejected      Outcome = "rejected"
)

// ErrUnknownReceiptStatus is returned when a receipt carries a status that is
// neither success nor failure.
type ErrUnknownReceiptStatus struct {
	TxHash common.Hash
	Status uint64
}

func (e ErrUnknownReceiptStatus) Error() string {
	return fmt.Sprintf("transaction %s has unknown receipt status %d", e.TxHash.Hex(), e.Status)
}

// ErrNoReceipt is returned by Classify for a nil receipt.
var ErrNoReceipt = errors.New("no receipt")

const alreadyExists = "already exists"

// Receipt is the outcome of a confirmed transaction.
type Receipt struct {
	TxHash      common.Hash
	Status      uint64
	BlockNumber uint64
	GasUsed     uint64
	// GasLimit and GasPrice are taken from the sent transaction.
	GasLimit uint64
	GasPrice *big.Int
	// RevertReason is set for failed transactions when the node reports one.
	RevertReason string
}

// Classify maps the receipt to an outcome. A failure whose revert reason
// says the entity already exists is idempotent.
func (r *Receipt) Classify() (Outcome, error) {
	if r == nil {
		return "", ErrNoReceipt
	}
	switch r.Status {
	case gethtypes.ReceiptStatusSuccessful:
		return OutcomeSuccess, nil
	case gethtypes.ReceiptStatusFailed:
		if strings.Contains(r.RevertReason, alreadyExists) {
			return OutcomeAlreadyExists, nil
		}
		return OutcomeRejected, nil
	default:
		return "", ErrUnknownReceiptStatus{TxHash: r.TxHash, Status: r.Status}
	}
}

// Fee returns GasUsed * GasPrice in wei. A missing gas price yields zero.
func (r *Receipt) Fee() *big.Int {
	if r == nil || r.GasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(r.GasPrice, new(big.Int).SetUint64(r.GasUsed))
}
