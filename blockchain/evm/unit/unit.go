// Package unit converts the amounts between the denominations
// of the native currency of the EVM chains.
package unit

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// The exponents of the denominations relative to wei.
var denominations = map[string]int32{
	"wei":    0,
	"kwei":   3,
	"mwei":   6,
	"gwei":   9,
	"szabo":  12,
	"finney": 15,
	"ether":  18,
}

// ToWei converts the amount in the given denomination into wei.
// The amount is a decimal string, for example "0.1" gwei.
//
// Returns an error if the result has a fractional part of wei.
func ToWei(amount string, denomination string) (*big.Int, error) {
	exponent, ok := denominations[strings.ToLower(denomination)]
	if !ok {
		return nil, fmt.Errorf("unsupported '%s' denomination", denomination)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("decimal.NewFromString('%s'): %w", amount, err)
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("the '%s' amount is negative", amount)
	}

	wei := value.Shift(exponent)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("the '%s %s' has a fraction of wei", amount, denomination)
	}

	return wei.BigInt(), nil
}

// FromWei converts the wei into the given denomination as a decimal string.
func FromWei(wei *big.Int, denomination string) (string, error) {
	exponent, ok := denominations[strings.ToLower(denomination)]
	if !ok {
		return "", fmt.Errorf("unsupported '%s' denomination", denomination)
	}
	if wei == nil {
		return "", fmt.Errorf("nil wei")
	}

	return decimal.NewFromBigInt(wei, -exponent).String(), nil
}
