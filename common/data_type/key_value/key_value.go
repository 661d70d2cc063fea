// Package key_value is the map used as the parameters of the
// controller messages and as the decoded contract outputs.
package key_value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// KeyValue is identical to the golang map
type KeyValue map[string]interface{}

// New converts the map to the key-value
func New(key_value map[string]interface{}) KeyValue {
	return KeyValue(key_value)
}

// Empty key-value
func Empty() KeyValue {
	return KeyValue(map[string]interface{}{})
}

// NewFromString parses the JSON object.
// The numbers are kept as json.Number, so the large integers are not lost.
func NewFromString(data string) (KeyValue, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	decoder.UseNumber()

	var key_value KeyValue
	if err := decoder.Decode(&key_value); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}
	if key_value == nil {
		return nil, errors.New("the data is not a json object")
	}
	if err := key_value.validate(); err != nil {
		return nil, err
	}

	return key_value, nil
}

// NewFromInterface converts any json serializable struct into the key-value
func NewFromInterface(i interface{}) (KeyValue, error) {
	data, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return NewFromString(string(data))
}

// Set the parameter. Returns the key-value itself, so the calls could be chained.
func (k KeyValue) Set(name string, value interface{}) KeyValue {
	k[name] = value
	return k
}

// ToBytes serializes the key-value as a json object.
// The null parameters are not allowed.
func (k KeyValue) ToBytes() ([]byte, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(k)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// ToString serializes the key-value as a json string
func (k KeyValue) ToString() (string, error) {
	data, err := k.ToBytes()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ToInterface converts the key-value into the struct.
// The interface should be passed by pointer.
func (k KeyValue) ToInterface(i interface{}) error {
	data, err := json.Marshal(k)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(i); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}

func (k KeyValue) validate() error {
	for name, value := range k {
		if value == nil {
			return fmt.Errorf("the '%s' parameter is null", name)
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		if err := KeyValue(nested).validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// GetString returns the parameter as a string
func (k KeyValue) GetString(name string) (string, error) {
	raw, exists := k[name]
	if !exists {
		return "", errors.New("missing '" + name + "' parameter")
	}
	value, ok := raw.(string)
	if !ok {
		return "", errors.New("expected string type for '" + name + "' parameter")
	}

	return value, nil
}

// GetUint64 returns the parameter as an uint64
func (k KeyValue) GetUint64(name string) (uint64, error) {
	raw, exists := k[name]
	if !exists {
		return 0, errors.New("missing '" + name + "' parameter")
	}

	switch value := raw.(type) {
	case uint64:
		return value, nil
	case json.Number:
		number, err := strconv.ParseUint(string(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parameter '%s': %w", name, err)
		}
		return number, nil
	}

	return 0, errors.New("parameter '" + name + "' expected to be as a number")
}

// GetStringList returns the list of strings.
// The missing parameter is an error, the empty list is not.
func (k KeyValue) GetStringList(name string) ([]string, error) {
	raw, exists := k[name]
	if !exists {
		return nil, errors.New("missing '" + name + "' parameter")
	}

	ready_list, ok := raw.([]string)
	if ok {
		return ready_list, nil
	}

	values, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("expected list type for '" + name + "' parameter")
	}

	list := make([]string, len(values))
	for i, raw_value := range values {
		value, ok := raw_value.(string)
		if !ok {
			return nil, fmt.Errorf("the element %d of '%s' is not a string", i, name)
		}
		list[i] = value
	}

	return list, nil
}
