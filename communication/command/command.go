package command

import (
	"fmt"

	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/forwardswap/transactor/communication/message"

	zmq "github.com/pebbe/zmq4"
)

// Name is the string
// It's included in the message.Request when the client requests the controller.
type Name string

// String representation of the command name
func (command Name) String() string {
	return string(command)
}

// New Converts the given string to the command name
func New(value string) Name {
	return Name(value)
}

// Request the command from the controller over the REQ socket
// with the given request parameters.
//
// The reply parameters are decoded into the reply.
// The reply should be passed by pointer.
//
// Example:
//
//	var reply struct{ Address string `json:"address"` }
//	address := command.New("address")
//	_ := address.Request(socket, key_value.Empty(), &reply)
func (command Name) Request(socket *zmq.Socket, request interface{}, reply interface{}) error {
	request_parameters, err := key_value.NewFromInterface(request)
	if err != nil {
		return fmt.Errorf("convert parameters to: %w", err)
	}

	request_message := message.Request{
		Command:    command.String(),
		Parameters: request_parameters,
	}
	request_string, err := request_message.ToString()
	if err != nil {
		return fmt.Errorf("failed to stringify message: %w", err)
	}

	if _, err := socket.SendMessage(request_string); err != nil {
		return fmt.Errorf("socket.SendMessage: %w", err)
	}
	raw, err := socket.RecvMessage(0)
	if err != nil {
		return fmt.Errorf("socket.RecvMessage: %w", err)
	}

	reply_message, err := message.ParseReply(raw)
	if err != nil {
		return fmt.Errorf("message.ParseReply: %w", err)
	}
	if !reply_message.IsOK() {
		return fmt.Errorf("the controller replied an error: %s", reply_message.Message)
	}

	if err := reply_message.Parameters.ToInterface(reply); err != nil {
		return fmt.Errorf("reply.Parameters.ToInterface: %w", err)
	}

	return nil
}

// Reply creates a successful message.Reply with the given reply parameters.
func Reply(reply interface{}) (message.Reply, error) {
	reply_parameters, err := key_value.NewFromInterface(reply)
	if err != nil {
		return message.Reply{}, fmt.Errorf("failed to encode reply: %w", err)
	}

	return message.Ok(reply_parameters), nil
}
