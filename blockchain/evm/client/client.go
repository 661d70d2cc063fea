// Package client is the transport to the EVM blockchain node.
//
// The client is connected to one node. It checks the liveness
// of the node, reads the account state, broadcasts the signed
// transactions and waits for their receipts.
package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	eth_common "github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/forwardswap/transactor/log"
)

const (
	// DEFAULT_RECEIPT_TIMEOUT is how long the client waits for the transaction inclusion
	DEFAULT_RECEIPT_TIMEOUT = 120 * time.Second
	// DEFAULT_RECEIPT_POLL_INTERVAL is the delay between the receipt requests
	DEFAULT_RECEIPT_POLL_INTERVAL = 100 * time.Millisecond
)

// ErrReceiptTimeout is returned when the transaction wasn't mined in the receipt timeout
var ErrReceiptTimeout = errors.New("transaction receipt timeout")

// Parameters of the receipt waiting.
type Parameters struct {
	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
}

// DefaultParameters returns the receipt waiting parameters
func DefaultParameters() Parameters {
	return Parameters{
		ReceiptTimeout:      DEFAULT_RECEIPT_TIMEOUT,
		ReceiptPollInterval: DEFAULT_RECEIPT_POLL_INTERVAL,
	}
}

// Validate that the receipt is polled in a positive interval until a positive timeout.
func (parameters Parameters) Validate() error {
	if parameters.ReceiptTimeout <= 0 {
		return fmt.Errorf("the receipt timeout should be positive")
	}
	if parameters.ReceiptPollInterval <= 0 {
		return fmt.Errorf("the receipt poll interval should be positive")
	}

	return nil
}

// Client of the blockchain node
type Client struct {
	endpoint   string
	rpc        *rpc.Client
	client     *ethclient.Client
	parameters Parameters
	logger     *log.Logger
}

// Dial the node. The connection is not verified,
// call Ping to check that the node is alive.
func Dial(ctx context.Context, endpoint string, parameters Parameters, logger *log.Logger) (*Client, error) {
	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("parameters.Validate: %w", err)
	}

	rpc_client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("rpc.DialContext: %w", err)
	}

	return &Client{
		endpoint:   endpoint,
		rpc:        rpc_client,
		client:     ethclient.NewClient(rpc_client),
		parameters: parameters,
		logger:     logger.Child("client"),
	}, nil
}

// Endpoint of the node
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Ping checks that the node replies.
// Returns the node's client version.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var version string
	if err := c.rpc.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", fmt.Errorf("web3_clientVersion: %w", err)
	}

	return version, nil
}

// NonceAt returns the transaction count of the account at the latest block
func (c *Client) NonceAt(ctx context.Context, account eth_common.Address) (uint64, error) {
	nonce, err := c.client.NonceAt(ctx, account, nil)
	if err != nil {
		return 0, fmt.Errorf("client.NonceAt: %w", err)
	}

	return nonce, nil
}

// ChainId returns the chain id of the node
func (c *Client) ChainId(ctx context.Context) (*big.Int, error) {
	chain_id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.ChainID: %w", err)
	}

	return chain_id, nil
}

// SendTransaction broadcasts the signed transaction
func (c *Client) SendTransaction(ctx context.Context, tx *eth_types.Transaction) error {
	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("client.SendTransaction: %w", err)
	}

	return nil
}

// WaitReceipt blocks until the transaction is mined.
//
// The missing receipt means the transaction is not mined yet, so the receipt
// is requested again after the poll interval. Any other error is returned.
// Returns ErrReceiptTimeout if the transaction wasn't mined in the receipt timeout.
func (c *Client) WaitReceipt(ctx context.Context, hash eth_common.Hash) (*eth_types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.parameters.ReceiptTimeout)
	defer cancel()

	ticker := time.NewTicker(c.parameters.ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%s after %s: %w", hash.Hex(), c.parameters.ReceiptTimeout, ErrReceiptTimeout)
			}
			return nil, fmt.Errorf("client.TransactionReceipt: %w", err)
		}
		c.logger.Debug("transaction is not mined yet", "transaction_hash", hash.Hex())

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%s after %s: %w", hash.Hex(), c.parameters.ReceiptTimeout, ErrReceiptTimeout)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// CallContract executes the read-only call at the latest block
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	data, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("client.CallContract: %w", err)
	}

	return data, nil
}

// Close the connection
func (c *Client) Close() {
	c.rpc.Close()
}
