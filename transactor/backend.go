package transactor

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/forwardswap/transactor/blockchain/evm/client"
)

//go:generate moq -out ./mock/backend.go -pkg mock . Backend

// Backend is the node the transactor talks to.
// It's implemented by client.Client.
type Backend interface {
	// Ping is the liveness check of the node
	Ping(ctx context.Context) (string, error)
	// NonceAt returns the transaction count of the account at the latest block
	NonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *eth_types.Transaction) error
	// WaitReceipt blocks until the transaction is mined
	WaitReceipt(ctx context.Context, hash common.Hash) (*eth_types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
}

var _ Backend = (*client.Client)(nil)
