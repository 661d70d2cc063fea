// Package controller is the reply controller of the transactor.
//
// The controller accepts one request at a time over the zeromq REP socket.
// The next request is not read until the reply to the previous one is sent,
// so the transaction submissions of the controller are serialized.
package controller

import (
	"context"
	"fmt"

	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/forwardswap/transactor/communication/command"
	"github.com/forwardswap/transactor/communication/message"
	"github.com/forwardswap/transactor/configuration"
	"github.com/forwardswap/transactor/log"

	zmq "github.com/pebbe/zmq4"
)

// ControllerConfigurations are the default parameters of the controller
var ControllerConfigurations = configuration.DefaultConfig{
	Title: "Controller",
	Parameters: key_value.New(map[string]interface{}{
		"TRANSACTOR_PORT": 4040,
	}),
}

// SERIALIZATION_FAIL_REPLY is sent instead of the reply that can't be serialized
const SERIALIZATION_FAIL_REPLY = `{"message":"reply serialization failed","parameters":{},"status":"fail"}`

// Controller is the socket wrapper of the transactor.
type Controller struct {
	port   uint64
	socket *zmq.Socket
	logger *log.Logger
}

// Url creates url of the controller for binding.
// The zero port means the controller is available within the process only.
func Url(name string, port uint64) string {
	if port == 0 {
		return fmt.Sprintf("inproc://%s", name)
	}
	return fmt.Sprintf("tcp://*:%d", port)
}

// ClientUrl is the url that the clients connect to
func ClientUrl(name string, port uint64) string {
	if port == 0 {
		return fmt.Sprintf("inproc://%s", name)
	}
	return fmt.Sprintf("tcp://localhost:%d", port)
}

// serialize the reply for the socket.
// The caller always gets a valid reply, the serialization error is logged.
func (c *Controller) serialize(reply message.Reply) string {
	data, err := reply.ToString()
	if err != nil {
		c.logger.Error("reply.ToString", "status", reply.Status, "error", err)
		return SERIALIZATION_FAIL_REPLY
	}

	return data
}

// reply sends to the caller the message.
func (c *Controller) reply(reply message.Reply) error {
	if _, err := c.socket.SendMessage(c.serialize(reply)); err != nil {
		return fmt.Errorf("socket.SendMessage: %w", err)
	}

	return nil
}

// Handle executes the handler of the request's command.
// The parameters are passed to the handler as is.
func (c *Controller) Handle(ctx context.Context, raw []string, handlers command.Handlers, parameters ...interface{}) message.Reply {
	// All request types derive from the basic request.
	// We first attempt to parse basic request from the raw message
	request, err := message.ParseRequest(raw)
	if err != nil {
		return message.Fail("message.ParseRequest: " + err.Error())
	}

	name := command.New(request.Command)
	if !handlers.Exist(name) {
		return message.Fail(fmt.Sprintf("handler not found for command: %s", request.Command))
	}

	reply := handlers[name](ctx, request, c.logger, parameters...)
	if !reply.IsOK() {
		c.logger.Warn("handler replied an error", "command", request.Command, "request parameters", request.Parameters, "error message", reply.Message)
	}

	return reply
}

// Close the socket
func (c *Controller) Close() error {
	if c.socket == nil {
		return nil
	}

	err := c.socket.Close()
	if err != nil {
		return fmt.Errorf("controller.socket.Close: %w", err)
	}

	return nil
}
