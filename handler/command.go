// Package handler defines the commands of the transactor's controller
// and the functions that execute them.
package handler

import (
	"github.com/forwardswap/transactor/communication/command"
)

const (
	// Returns the address of the account that signs the transactions
	ADDRESS command.Name = "address"
	// Reads the smartcontract member without arguments
	READ_VARIABLE command.Name = "read-variable"
	// Signs, broadcasts and waits for the transaction
	SUBMIT_TRANSACTION command.Name = "submit-transaction"
)

// Handlers of the transactor commands.
// The controller should pass *transactor.Transactor as the first parameter.
func Handlers() command.Handlers {
	return command.EmptyHandlers().
		Add(ADDRESS, Address).
		Add(READ_VARIABLE, ReadVariable).
		Add(SUBMIT_TRANSACTION, SubmitTransaction)
}
