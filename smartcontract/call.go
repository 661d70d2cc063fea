package smartcontract

import (
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Call of the smartcontract method with the arguments.
// The Data is the encoded call, ready to be put into the transaction.
type Call struct {
	To        common.Address
	Method    string
	Arguments []interface{}
	Data      []byte
}

// Call creates the call of the method.
// The arguments should be the go-ethereum types.
func (s *Smartcontract) Call(method string, arguments ...interface{}) (*Call, error) {
	data, err := s.Abi.Pack(method, arguments...)
	if err != nil {
		return nil, fmt.Errorf("abi.Pack: %w", err)
	}

	return &Call{
		To:        s.Address,
		Method:    method,
		Arguments: arguments,
		Data:      data,
	}, nil
}

// CallStrings creates the call of the method with the arguments
// converted from the strings.
func (s *Smartcontract) CallStrings(method string, raw_arguments []string) (*Call, error) {
	data, err := s.Abi.PackStrings(method, raw_arguments)
	if err != nil {
		return nil, fmt.Errorf("abi.PackStrings: %w", err)
	}

	arguments := make([]interface{}, len(raw_arguments))
	for i, raw := range raw_arguments {
		arguments[i] = raw
	}

	return &Call{
		To:        s.Address,
		Method:    method,
		Arguments: arguments,
		Data:      data,
	}, nil
}

// Msg is the read-only call message from the account
func (c *Call) Msg(from common.Address) ethereum.CallMsg {
	to := c.To
	return ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: c.Data,
	}
}

// String returns the method and the encoded data
func (c *Call) String() string {
	return c.Method + " " + hexutil.Encode(c.Data)
}
