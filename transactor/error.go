package transactor

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrArgumentsRequired is returned when the read member needs the arguments
	ErrArgumentsRequired = errors.New("the member requires arguments")
	// ErrEmptyCall is returned when the submitted call is nil
	ErrEmptyCall = errors.New("empty call")
)

// Stage of the transaction submission
type Stage string

const (
	STAGE_ENVELOPE  Stage = "envelope"
	STAGE_NONCE     Stage = "nonce"
	STAGE_SIGN      Stage = "sign"
	STAGE_BROADCAST Stage = "broadcast"
	STAGE_RECEIPT   Stage = "receipt"
)

// ConnectionError is returned when the node is not reachable
// at the moment of the transactor creation.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to '%s': %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SubmissionError is returned when any stage of the transaction submission failed.
// The Err is the error of the failed collaborator as is.
//
// Nonce is set from the nonce stage, Hash from the broadcast stage.
type SubmissionError struct {
	Stage Stage
	Nonce uint64
	Hash  common.Hash
	Err   error
}

func (e *SubmissionError) Error() string {
	switch e.Stage {
	case STAGE_ENVELOPE, STAGE_NONCE:
		return fmt.Sprintf("submission %s: %v", e.Stage, e.Err)
	case STAGE_SIGN:
		return fmt.Sprintf("submission %s (nonce %d): %v", e.Stage, e.Nonce, e.Err)
	}
	return fmt.Sprintf("submission %s (nonce %d, transaction %s): %v", e.Stage, e.Nonce, e.Hash.Hex(), e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ReadError is returned when the variable couldn't be read:
// the member doesn't exist, needs the arguments, the call reverted
// or the returned data couldn't be decoded.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read '%s': %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
