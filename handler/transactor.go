package handler

import (
	"context"
	"fmt"

	"github.com/forwardswap/transactor/blockchain/evm/abi"
	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/forwardswap/transactor/communication/message"
	"github.com/forwardswap/transactor/log"
	"github.com/forwardswap/transactor/transactor"
)

func get_transactor(parameters []interface{}) (*transactor.Transactor, error) {
	if len(parameters) < 1 {
		return nil, fmt.Errorf("the transactor should be given, no parameters")
	}
	t, ok := parameters[0].(*transactor.Transactor)
	if !ok {
		return nil, fmt.Errorf("the parameter is %T, not a transactor", parameters[0])
	}

	return t, nil
}

// Address returns the account address of the transactor
//
//	returns {
//		"address": checksummed address
//	}
func Address(_ context.Context, _ message.Request, _ *log.Logger, parameters ...interface{}) message.Reply {
	t, err := get_transactor(parameters)
	if err != nil {
		return message.Fail(err.Error())
	}

	return message.Ok(key_value.Empty().Set("address", t.Address().Hex()))
}

// ReadVariable reads the smartcontract member without arguments.
//
//	requires {
//		"name": member name
//	}
//	returns {
//		"name": member name,
//		"value": formatted output (omitted if the member has no outputs)
//	}
func ReadVariable(ctx context.Context, request message.Request, _ *log.Logger, parameters ...interface{}) message.Reply {
	t, err := get_transactor(parameters)
	if err != nil {
		return message.Fail(err.Error())
	}

	name, err := request.Parameters.GetString("name")
	if err != nil {
		return message.Fail("request.Parameters.GetString(`name`): " + err.Error())
	}

	value, err := t.ReadVariable(ctx, name)
	if err != nil {
		return message.Fail(err.Error())
	}

	reply := key_value.Empty().Set("name", name)
	if value != nil {
		reply.Set("value", abi.Format(value))
	}

	return message.Ok(reply)
}

// SubmitTransaction calls the smartcontract method with the arguments
// given as the strings. The reply is sent once the transaction is mined.
//
//	requires {
//		"method": method name,
//		"arguments": list of arguments (optional)
//	}
//	returns {
//		"transaction_hash": hash,
//		"status": 1 if executed, 0 if reverted,
//		"block_number": the block where the transaction was mined,
//		"gas_used": gas spent by the transaction
//	}
func SubmitTransaction(ctx context.Context, request message.Request, logger *log.Logger, parameters ...interface{}) message.Reply {
	t, err := get_transactor(parameters)
	if err != nil {
		return message.Fail(err.Error())
	}

	method, err := request.Parameters.GetString("method")
	if err != nil {
		return message.Fail("request.Parameters.GetString(`method`): " + err.Error())
	}
	arguments := []string{}
	if _, ok := request.Parameters["arguments"]; ok {
		arguments, err = request.Parameters.GetStringList("arguments")
		if err != nil {
			return message.Fail("request.Parameters.GetStringList(`arguments`): " + err.Error())
		}
	}

	call, err := t.Smartcontract().CallStrings(method, arguments)
	if err != nil {
		return message.Fail(err.Error())
	}

	receipt, err := t.SubmitTransaction(ctx, call)
	if err != nil {
		return message.Fail(err.Error())
	}
	logger.Info("submitted", "method", method, "transaction_hash", receipt.TxHash.Hex(), "status", receipt.Status)

	block_number := "0"
	if receipt.BlockNumber != nil {
		block_number = receipt.BlockNumber.String()
	}

	return message.Ok(key_value.Empty().
		Set("transaction_hash", receipt.TxHash.Hex()).
		Set("status", receipt.Status).
		Set("block_number", block_number).
		Set("gas_used", receipt.GasUsed))
}
