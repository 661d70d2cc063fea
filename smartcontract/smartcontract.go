// Package smartcontract is the handle of the deployed smartcontract.
package smartcontract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/forwardswap/transactor/blockchain/evm/abi"
)

// Smartcontract is the address and the interface of the deployed smartcontract.
// Whether the code exists at the address is not checked.
type Smartcontract struct {
	Address common.Address
	Abi     *abi.Abi
}

// New smartcontract handle
func New(address string, contract_abi *abi.Abi) (*Smartcontract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("'%s' is not an address", address)
	}
	if contract_abi == nil {
		return nil, fmt.Errorf("missing abi")
	}

	return &Smartcontract{
		Address: common.HexToAddress(address),
		Abi:     contract_abi,
	}, nil
}

// NewFromFile creates the smartcontract handle with the abi stored in the file
func NewFromFile(address string, abi_path string) (*Smartcontract, error) {
	contract_abi, err := abi.NewFromFile(abi_path)
	if err != nil {
		return nil, fmt.Errorf("abi.NewFromFile: %w", err)
	}

	return New(address, contract_abi)
}

// Key is the unique identifier of the smartcontract on the chain:
// chain id + "." + address
func (s *Smartcontract) Key(chain_id string) string {
	return chain_id + "." + s.Address.Hex()
}
