// Package command defines the request commands that the controller accepts.
// Besides the commands, this package also defines the HandleFunc.
//
// The HandleFunc is the function that executes the command and then returns the result
// to the caller.
package command

import (
	"context"
	"sort"

	"github.com/forwardswap/transactor/communication/message"
	"github.com/forwardswap/transactor/log"
)

// HandleFunc is the function type that manipulates the commands.
// It accepts the message.Request and log.Logger then returns message.Reply.
//
// The controller passes its shared states in the additional parameters,
// for example the transactor.
type HandleFunc = func(context.Context, message.Request, *log.Logger, ...interface{}) message.Reply

// Handlers is the command name => function
type Handlers map[Name]HandleFunc

// EmptyHandlers returns the handlers without commands
func EmptyHandlers() Handlers {
	return Handlers{}
}

// Exist checks does command handler exist
func (c Handlers) Exist(command Name) bool {
	_, ok := c[command]
	return ok
}

// Add the handler of the command, replacing the previous one
func (c Handlers) Add(command Name, handler HandleFunc) Handlers {
	c[command] = handler
	return c
}

// CommandNames returns the sorted list of command names without handlers
func (c Handlers) CommandNames() []string {
	commands := make([]string, 0, len(c))
	for name := range c {
		commands = append(commands, name.String())
	}
	sort.Strings(commands)

	return commands
}
