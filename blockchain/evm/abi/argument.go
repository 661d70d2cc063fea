package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var big_int_type = reflect.TypeOf(&big.Int{})

// ConvertArguments converts the strings into the go-ethereum types of the inputs.
//
// Supported types are address, bool, string, bytes, bytesN, intN and uintN.
// The numbers could be decimal or 0x prefixed hex.
func ConvertArguments(inputs abi.Arguments, raw_arguments []string) ([]interface{}, error) {
	if len(inputs) != len(raw_arguments) {
		return nil, fmt.Errorf("expected %d arguments, given %d", len(inputs), len(raw_arguments))
	}

	arguments := make([]interface{}, len(inputs))
	for i, input := range inputs {
		argument, err := ConvertArgument(input.Type, raw_arguments[i])
		if err != nil {
			return nil, fmt.Errorf("argument[%d] %s: %w", i, input.Name, err)
		}
		arguments[i] = argument
	}

	return arguments, nil
}

// ConvertArgument converts the string into the go-ethereum type of the abi type.
func ConvertArgument(t abi.Type, raw string) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("'%s' is not an address", raw)
		}
		return common.HexToAddress(raw), nil
	case abi.BoolTy:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("strconv.ParseBool: %w", err)
		}
		return value, nil
	case abi.StringTy:
		return raw, nil
	case abi.BytesTy:
		value, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("hexutil.Decode: %w", err)
		}
		return value, nil
	case abi.FixedBytesTy:
		value, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("hexutil.Decode: %w", err)
		}
		if len(value) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, given %d", t.Size, len(value))
		}
		array := reflect.New(t.GetType()).Elem()
		reflect.Copy(array, reflect.ValueOf(value))
		return array.Interface(), nil
	case abi.IntTy, abi.UintTy:
		return convert_number(t, raw)
	}

	return nil, fmt.Errorf("unsupported '%s' argument type", t.String())
}

func convert_number(t abi.Type, raw string) (interface{}, error) {
	number, ok := new(big.Int).SetString(raw, 0)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a number", raw)
	}

	var min, max *big.Int
	if t.T == abi.UintTy {
		min = big.NewInt(0)
		max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.Size)), big.NewInt(1))
	} else {
		max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1)), big.NewInt(1))
		min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1)))
	}
	if number.Cmp(min) < 0 || number.Cmp(max) > 0 {
		return nil, fmt.Errorf("'%s' overflows %s", raw, t.String())
	}

	go_type := t.GetType()
	if go_type == big_int_type {
		return number, nil
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(number.Uint64()).Convert(go_type).Interface(), nil
	}
	return reflect.ValueOf(number.Int64()).Convert(go_type).Interface(), nil
}
