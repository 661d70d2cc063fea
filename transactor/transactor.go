// Package transactor signs and submits the transactions to the smartcontract
// one at a time, and reads the smartcontract variables.
//
// The nonce is read from the node before every submission, it's not cached.
// The concurrent submissions from the same account may get the same nonce,
// then the node rejects all but one of them. The callers serialize the
// submissions.
package transactor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/forwardswap/transactor/account"
	"github.com/forwardswap/transactor/blockchain/evm/client"
	"github.com/forwardswap/transactor/blockchain/evm/unit"
	"github.com/forwardswap/transactor/log"
	"github.com/forwardswap/transactor/metrics"
	"github.com/forwardswap/transactor/smartcontract"
)

// Transactor of the single account to the single smartcontract
type Transactor struct {
	endpoint      string
	backend       Backend
	account       *account.Account
	smartcontract *smartcontract.Smartcontract
	policy        Policy
	metrics       *metrics.Metrics
	logger        *log.Logger
	close         func()
}

// New dials the node at the endpoint and creates the transactor.
//
// Returns ConnectionError if the node doesn't reply.
// The credential is the private key as raw bytes or hex text.
// Whether the smartcontract is deployed at the address is not checked.
func New(ctx context.Context, endpoint string, credential []byte, contract *smartcontract.Smartcontract, policy Policy, logger *log.Logger) (*Transactor, error) {
	signer, err := account.New(credential)
	if err != nil {
		return nil, fmt.Errorf("account.New: %w", err)
	}

	return Dial(ctx, endpoint, client.DefaultParameters(), signer, contract, policy, logger)
}

// Dial is the New with the receipt polling parameters and the account
// derived elsewhere. The transactor closes the connection on Close.
//
// The invalid parameters are returned as is, the ConnectionError is
// only for the endpoint that can't be dialed.
func Dial(ctx context.Context, endpoint string, parameters client.Parameters, signer *account.Account, contract *smartcontract.Smartcontract, policy Policy, logger *log.Logger) (*Transactor, error) {
	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("parameters.Validate: %w", err)
	}

	node, err := client.Dial(ctx, endpoint, parameters, logger)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	t, err := NewWithAccount(ctx, node, signer, contract, policy, logger)
	if err != nil {
		node.Close()
		var connection_err *ConnectionError
		if errors.As(err, &connection_err) {
			connection_err.Endpoint = endpoint
		}
		return nil, err
	}
	t.endpoint = endpoint
	t.close = node.Close

	chain_id, err := node.ChainId(ctx)
	if err != nil {
		t.logger.Warn("the chain id of the node is unknown", "error", err)
	} else if chain_id.Cmp(policy.ChainId) != 0 {
		t.logger.Warn("the node is on another chain, the transactions will be rejected",
			"node_chain_id", chain_id.String(),
			"chain_id", policy.ChainId.String(),
		)
	}

	return t, nil
}

// NewWithBackend creates the transactor over the opened backend.
// The backend is not closed by the transactor.
func NewWithBackend(ctx context.Context, backend Backend, credential []byte, contract *smartcontract.Smartcontract, policy Policy, logger *log.Logger) (*Transactor, error) {
	signer, err := account.New(credential)
	if err != nil {
		return nil, fmt.Errorf("account.New: %w", err)
	}

	return NewWithAccount(ctx, backend, signer, contract, policy, logger)
}

// NewWithAccount creates the transactor over the opened backend with the
// account derived elsewhere, for example from the mnemonic or the vault.
func NewWithAccount(ctx context.Context, backend Backend, signer *account.Account, contract *smartcontract.Smartcontract, policy Policy, logger *log.Logger) (*Transactor, error) {
	if signer == nil {
		return nil, fmt.Errorf("missing account")
	}
	if contract == nil {
		return nil, fmt.Errorf("missing smartcontract")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy.Validate: %w", err)
	}

	version, err := backend.Ping(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	t := &Transactor{
		backend:       backend,
		account:       signer,
		smartcontract: contract,
		policy:        policy,
		logger:        logger.Child("transactor", "address", signer.Address().Hex()),
	}
	gas_price, err := unit.FromWei(policy.GasPriceWei, DEFAULT_GAS_PRICE_UNIT)
	if err != nil {
		return nil, fmt.Errorf("unit.FromWei: %w", err)
	}
	t.logger.Info("connected",
		"node", version,
		"smartcontract", contract.Key(policy.ChainId.String()),
		"gas_limit", policy.GasLimit,
		"gas_price_gwei", gas_price,
	)

	return t, nil
}

// SetMetrics starts counting the submissions and the reads
func (t *Transactor) SetMetrics(m *metrics.Metrics) {
	t.metrics = m
}

// Endpoint of the node, empty if the transactor was created over the backend
func (t *Transactor) Endpoint() string {
	return t.endpoint
}

// Address of the account that signs the transactions
func (t *Transactor) Address() common.Address {
	return t.account.Address()
}

// Smartcontract returns the smartcontract handle
func (t *Transactor) Smartcontract() *smartcontract.Smartcontract {
	return t.smartcontract
}

// Policy returns the fee policy of the transactions
func (t *Transactor) Policy() Policy {
	return t.policy
}

// SubmitTransaction signs the call with the transactor's policy,
// broadcasts it and waits until it's mined.
//
// The reverted transaction is not an error: check the receipt status.
// Any failed stage returns SubmissionError.
func (t *Transactor) SubmitTransaction(ctx context.Context, call *smartcontract.Call) (*eth_types.Receipt, error) {
	return t.SubmitTransactionWithPolicy(ctx, call, t.policy)
}

// SubmitTransactionWithPolicy is the SubmitTransaction with the given policy
// instead of the transactor's one.
func (t *Transactor) SubmitTransactionWithPolicy(ctx context.Context, call *smartcontract.Call, policy Policy) (*eth_types.Receipt, error) {
	receipt, err := t.submit(ctx, call, policy)
	if err != nil {
		stage := ""
		var submission_err *SubmissionError
		if errors.As(err, &submission_err) {
			stage = string(submission_err.Stage)
		}
		t.metrics.ObserveSubmission(metrics.SUBMISSION_FAILED, stage)
		return nil, err
	}

	if receipt.Status == eth_types.ReceiptStatusFailed {
		t.logger.Warn("transaction reverted", "transaction_hash", receipt.TxHash.Hex(), "block_number", receipt.BlockNumber)
		t.metrics.ObserveSubmission(metrics.SUBMISSION_REVERTED, "")
	} else {
		t.metrics.ObserveSubmission(metrics.SUBMISSION_SUCCESS, "")
	}

	return receipt, nil
}

func (t *Transactor) submit(ctx context.Context, call *smartcontract.Call, policy Policy) (*eth_types.Receipt, error) {
	if call == nil {
		return nil, &SubmissionError{Stage: STAGE_ENVELOPE, Err: ErrEmptyCall}
	}
	if err := policy.Validate(); err != nil {
		return nil, &SubmissionError{Stage: STAGE_ENVELOPE, Err: err}
	}
	// the data should call a member of the smartcontract
	method, arguments, err := t.smartcontract.Abi.Decode(call.Data)
	if err != nil {
		return nil, &SubmissionError{Stage: STAGE_ENVELOPE, Err: err}
	}

	nonce, err := t.backend.NonceAt(ctx, t.account.Address())
	if err != nil {
		return nil, &SubmissionError{Stage: STAGE_NONCE, Err: err}
	}
	t.logger.Debug("nonce", "nonce", nonce, "method", method, "arguments", arguments)

	to := call.To
	tx := eth_types.NewTx(&eth_types.LegacyTx{
		Nonce:    nonce,
		GasPrice: new(big.Int).Set(policy.GasPriceWei),
		Gas:      policy.GasLimit,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     call.Data,
	})

	signed, err := t.account.Sign(tx, policy.ChainId)
	if err != nil {
		return nil, &SubmissionError{Stage: STAGE_SIGN, Nonce: nonce, Err: err}
	}

	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		return nil, &SubmissionError{Stage: STAGE_BROADCAST, Nonce: nonce, Hash: signed.Hash(), Err: err}
	}
	t.logger.Info("transaction broadcasted", "transaction_hash", signed.Hash().Hex(), "nonce", nonce, "method", method)

	started := time.Now()
	receipt, err := t.backend.WaitReceipt(ctx, signed.Hash())
	if err != nil {
		return nil, &SubmissionError{Stage: STAGE_RECEIPT, Nonce: nonce, Hash: signed.Hash(), Err: err}
	}
	t.metrics.ObserveReceiptWait(time.Since(started))
	t.logger.Info("transaction mined",
		"transaction_hash", receipt.TxHash.Hex(),
		"status", receipt.Status,
		"block_number", receipt.BlockNumber,
		"gas_used", receipt.GasUsed,
	)

	return receipt, nil
}

// ReadVariable calls the smartcontract member without arguments
// at the latest block and returns the decoded output.
//
// The member with one output returns the value, the member with
// multiple outputs returns []interface{}. Any failure is ReadError.
func (t *Transactor) ReadVariable(ctx context.Context, name string) (interface{}, error) {
	value, err := t.read(ctx, name)
	if err != nil {
		t.metrics.ObserveRead(metrics.READ_FAILED)
		return nil, &ReadError{Name: name, Err: err}
	}
	t.metrics.ObserveRead(metrics.READ_SUCCESS)

	return value, nil
}

func (t *Transactor) read(ctx context.Context, name string) (interface{}, error) {
	member, err := t.smartcontract.Abi.Member(name)
	if err != nil {
		return nil, err
	}
	if len(member.Inputs) > 0 {
		return nil, fmt.Errorf("%d inputs: %w", len(member.Inputs), ErrArgumentsRequired)
	}

	call, err := t.smartcontract.Call(name)
	if err != nil {
		return nil, err
	}
	data, err := t.backend.CallContract(ctx, call.Msg(t.account.Address()))
	if err != nil {
		return nil, err
	}
	values, err := t.smartcontract.Abi.Unpack(name, data)
	if err != nil {
		return nil, err
	}

	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	}
	return values, nil
}

// Close the connection to the node, if the transactor dialed it
func (t *Transactor) Close() {
	if t.close != nil {
		t.close()
	}
}
