// The transactor signs and submits the transactions of the single account
// to the ForwardSwap smartcontract, and reads the smartcontract variables.
//
// Run `transactor --help` for the list of commands.
package main

import "github.com/forwardswap/transactor/cmd"

func main() {
	cmd.Execute()
}
