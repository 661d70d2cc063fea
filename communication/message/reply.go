package message

import (
	"fmt"

	"github.com/forwardswap/transactor/common/data_type/key_value"
)

// ReplyStatus can be only as "OK" or "fail"
// It indicates whether the reply message is correct or not.
type ReplyStatus string

const (
	OK   ReplyStatus = "OK"
	FAIL ReplyStatus = "fail"
)

// Reply of the controller to the request.
type Reply struct {
	Status     ReplyStatus        `json:"status"`     // message.OK or message.FAIL
	Message    string             `json:"message"`    // If Status is fail, then field will contain error message.
	Parameters key_value.KeyValue `json:"parameters"` // If Status is OK, then field will contain the parameters.
}

// Fail creates a new Reply as a failure
// It accepts the error message that explains the reason of the failure.
func Fail(message string) Reply {
	return Reply{Status: FAIL, Message: message, Parameters: key_value.Empty()}
}

// Ok creates the successful Reply with the parameters
func Ok(parameters key_value.KeyValue) Reply {
	return Reply{Status: OK, Message: "", Parameters: parameters}
}

// Validates the status of the reply.
// It should be either OK or fail.
func (reply *Reply) validStatus() error {
	if reply.Status != FAIL && reply.Status != OK {
		return fmt.Errorf("status is either '%s' or '%s', but given: '%s'", OK, FAIL, reply.Status)
	}

	return nil
}

// If the reply type is failure then
// the message should be given too
func (reply *Reply) validFail() error {
	if reply.Status == FAIL && len(reply.Message) == 0 {
		return fmt.Errorf("failure should not have an empty message")
	}

	return nil
}

// IsOK returns the Status of the message.
func (reply *Reply) IsOK() bool { return reply.Status == OK }

// ToString converts the Reply to the string format
func (reply *Reply) ToString() (string, error) {
	bytes, err := reply.ToBytes()
	if err != nil {
		return "", fmt.Errorf("reply.ToBytes: %w", err)
	}

	return string(bytes), nil
}

// ToBytes converts Reply to the sequence of bytes
func (reply *Reply) ToBytes() ([]byte, error) {
	err := reply.validFail()
	if err != nil {
		return nil, fmt.Errorf("failure validation: %w", err)
	}
	err = reply.validStatus()
	if err != nil {
		return nil, fmt.Errorf("status validation: %w", err)
	}
	if reply.Parameters == nil {
		reply.Parameters = key_value.Empty()
	}

	kv, err := key_value.NewFromInterface(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize Reply to key-value %v: %w", reply, err)
	}

	bytes, err := kv.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialized key-value.ToBytes: %w", err)
	}

	return bytes, nil
}

// ParseReply decodes the zeromq messages into the Reply.
func ParseReply(messages []string) (Reply, error) {
	data, err := key_value.NewFromString(Join(messages))
	if err != nil {
		return Reply{}, fmt.Errorf("key_value.NewFromString: %w", err)
	}

	var reply Reply
	err = data.ToInterface(&reply)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to serialize key-value to msg.Reply: %w", err)
	}

	// validates the status and the failure message
	_, err = reply.ToBytes()
	if err != nil {
		return Reply{}, fmt.Errorf("validation: %w", err)
	}

	return reply, nil
}
