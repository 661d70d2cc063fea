package transactor

import (
	"fmt"
	"math/big"

	"github.com/forwardswap/transactor/blockchain/evm/unit"
)

const (
	// DEFAULT_CHAIN_ID is the Base Sepolia testnet
	DEFAULT_CHAIN_ID       = 84532
	DEFAULT_GAS_LIMIT      = 500_000
	DEFAULT_GAS_PRICE      = "0.1"
	DEFAULT_GAS_PRICE_UNIT = "gwei"
)

// Policy of the transaction fee and the replay protection.
// Every transaction of the transactor is submitted with it.
type Policy struct {
	ChainId     *big.Int
	GasLimit    uint64
	GasPriceWei *big.Int
}

// DefaultPolicy returns the policy for the Base Sepolia testnet:
// gas limit 500000 and gas price 0.1 gwei.
func DefaultPolicy() Policy {
	policy, err := NewPolicy(DEFAULT_CHAIN_ID, DEFAULT_GAS_LIMIT, DEFAULT_GAS_PRICE, DEFAULT_GAS_PRICE_UNIT)
	if err != nil {
		panic(fmt.Sprintf("transactor.DefaultPolicy: %v", err))
	}

	return policy
}

// NewPolicy creates the policy with the gas price given in the denomination,
// for example "0.1" "gwei".
func NewPolicy(chain_id uint64, gas_limit uint64, gas_price string, denomination string) (Policy, error) {
	gas_price_wei, err := unit.ToWei(gas_price, denomination)
	if err != nil {
		return Policy{}, fmt.Errorf("unit.ToWei: %w", err)
	}

	policy := Policy{
		ChainId:     new(big.Int).SetUint64(chain_id),
		GasLimit:    gas_limit,
		GasPriceWei: gas_price_wei,
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}

	return policy, nil
}

// Validate the policy fields
func (p Policy) Validate() error {
	if p.ChainId == nil || p.ChainId.Sign() <= 0 {
		return fmt.Errorf("the chain id should be positive")
	}
	if p.GasLimit == 0 {
		return fmt.Errorf("the gas limit should be positive")
	}
	if p.GasPriceWei == nil || p.GasPriceWei.Sign() < 0 {
		return fmt.Errorf("the gas price should not be negative")
	}

	return nil
}
