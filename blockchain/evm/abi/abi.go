// Package abi keeps the smartcontract interface.
// It's the wrapper over the go-ethereum abi that resolves
// the callable members of the smartcontract by their name.
package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SELECTOR_LENGTH is the length of the member selector at the start of the call data
const SELECTOR_LENGTH = 4

// ErrMemberNotFound is returned when the interface has no callable member with the name
var ErrMemberNotFound = errors.New("member not found in abi")

// Abi is the interface of the smartcontract.
// The callable members are indexed by their name.
// The overloaded functions are suffixed by go-ethereum, for example transfer0.
type Abi struct {
	Bytes    []byte `json:"bytes"`
	Id       string `json:"id"`
	geth_abi abi.ABI
}

// New interface from the JSON description of the smartcontract
func New(bytes []byte) (*Abi, error) {
	abi_obj := Abi{Bytes: bytes}

	if err := json.Unmarshal(bytes, &abi_obj.geth_abi); err != nil {
		return nil, fmt.Errorf("failed to decompose abi to geth abi: %w", err)
	}
	abi_obj.Id = crypto.Keccak256Hash(bytes).Hex()[:10]

	return &abi_obj, nil
}

// NewFromFile reads the JSON description from the file.
//
// The hardhat and truffle artifacts are supported as well,
// their "abi" field is used.
func NewFromFile(path string) (*Abi, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var artifact struct {
		Abi json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(bytes, &artifact); err == nil && len(artifact.Abi) > 0 {
		bytes = artifact.Abi
	}

	return New(bytes)
}

// Members returns the sorted names of the callable members
func (a *Abi) Members() []string {
	names := make([]string, 0, len(a.geth_abi.Methods))
	for name := range a.geth_abi.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Member returns the callable member by its exact name
func (a *Abi) Member(name string) (*abi.Method, error) {
	method, ok := a.geth_abi.Methods[name]
	if !ok {
		return nil, fmt.Errorf("'%s' is not one of %v: %w", name, a.Members(), ErrMemberNotFound)
	}

	return &method, nil
}

// Pack encodes the call of the member with the arguments.
// The arguments should be the go-ethereum types, use PackStrings
// to encode the arguments given as the strings.
func (a *Abi) Pack(name string, arguments ...interface{}) ([]byte, error) {
	if _, err := a.Member(name); err != nil {
		return nil, err
	}

	data, err := a.geth_abi.Pack(name, arguments...)
	if err != nil {
		return nil, fmt.Errorf("abi.Pack('%s'): %w", name, err)
	}

	return data, nil
}

// PackStrings converts the string arguments into the member's input types,
// then encodes the call.
func (a *Abi) PackStrings(name string, raw_arguments []string) ([]byte, error) {
	method, err := a.Member(name)
	if err != nil {
		return nil, err
	}

	arguments, err := ConvertArguments(method.Inputs, raw_arguments)
	if err != nil {
		return nil, fmt.Errorf("'%s' arguments: %w", name, err)
	}

	return a.Pack(name, arguments...)
}

// Unpack decodes the output of the member call
func (a *Abi) Unpack(name string, data []byte) ([]interface{}, error) {
	if _, err := a.Member(name); err != nil {
		return nil, err
	}

	values, err := a.geth_abi.Unpack(name, data)
	if err != nil {
		return nil, fmt.Errorf("abi.Unpack('%s'): %w", name, err)
	}

	return values, nil
}

// Decode returns the member name and the named arguments of the encoded call.
// The data that doesn't start with the selector of any member is ErrMemberNotFound.
func (a *Abi) Decode(data []byte) (string, map[string]interface{}, error) {
	if len(data) < SELECTOR_LENGTH {
		return "", nil, fmt.Errorf("%d bytes is shorter than the selector", len(data))
	}

	method, err := a.geth_abi.MethodById(data[:SELECTOR_LENGTH])
	if err != nil {
		return "", nil, fmt.Errorf("selector %s: %w", hexutil.Encode(data[:SELECTOR_LENGTH]), ErrMemberNotFound)
	}

	arguments := map[string]interface{}{}
	if err := method.Inputs.UnpackIntoMap(arguments, data[SELECTOR_LENGTH:]); err != nil {
		return method.Name, nil, fmt.Errorf("'%s' arguments: %w", method.Name, err)
	}

	return method.Name, arguments, nil
}
