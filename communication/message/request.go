// Package message defines the messages of the reply controller.
//
// The client sends the Request and gets back the Reply.
// Both are JSON objects sent as the zeromq message parts.
package message

import (
	"fmt"
	"strings"

	"github.com/forwardswap/transactor/common/data_type/key_value"
)

// Request message sent by the client socket and accepted by the controller.
type Request struct {
	Command    string             `json:"command"`
	Parameters key_value.KeyValue `json:"parameters"`
}

// If the command is missing, then the request is invalid
func (request *Request) validCommand() error {
	if len(request.Command) == 0 {
		return fmt.Errorf("command is missing")
	}

	return nil
}

// ToBytes converts the message to the sequence of bytes
func (request *Request) ToBytes() ([]byte, error) {
	err := request.validCommand()
	if err != nil {
		return nil, fmt.Errorf("failed to validate command: %w", err)
	}
	if request.Parameters == nil {
		request.Parameters = key_value.Empty()
	}

	kv, err := key_value.NewFromInterface(request)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize Request to key-value %v: %w", request, err)
	}

	bytes, err := kv.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("kv.ToBytes: %w", err)
	}

	return bytes, nil
}

// ToString the message
func (request *Request) ToString() (string, error) {
	bytes, err := request.ToBytes()
	if err != nil {
		return "", fmt.Errorf("request.ToBytes: %w", err)
	}

	return string(bytes), nil
}

// Join the zeromq message parts into the single string
func Join(messages []string) string {
	return strings.Join(messages, "")
}

// ParseRequest from the zeromq messages
func ParseRequest(messages []string) (Request, error) {
	msg := Join(messages)

	data, err := key_value.NewFromString(msg)
	if err != nil {
		return Request{}, fmt.Errorf("failed to convert message string %s to key-value: %w", msg, err)
	}

	var request Request
	err = data.ToInterface(&request)
	if err != nil {
		return Request{}, fmt.Errorf("failed to convert key-value %v to intermediate interface: %w", data, err)
	}

	// verify that data is not nil
	_, err = request.ToBytes()
	if err != nil {
		return Request{}, fmt.Errorf("failed to validate: %w", err)
	}

	return request, nil
}
