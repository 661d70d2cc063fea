package abi

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Format converts the decoded output into the JSON friendly value.
//
// The numbers become decimal strings, so the large integers are not lost
// by the JSON clients. The addresses become checksummed hex, and the bytes
// become 0x prefixed hex. The lists are formatted element by element.
func Format(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case *big.Int:
		return v.String()
	case common.Address:
		return v.Hex()
	case common.Hash:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	case []interface{}:
		formatted := make([]interface{}, len(v))
		for i := range v {
			formatted[i] = Format(v[i])
		}
		return formatted
	case string, bool:
		return v
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(reflected.Int()).String()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(reflected.Uint()).String()
	case reflect.Array:
		// bytesN
		if reflected.Type().Elem().Kind() == reflect.Uint8 {
			raw := make([]byte, reflected.Len())
			reflect.Copy(reflect.ValueOf(raw), reflected)
			return hexutil.Encode(raw)
		}
		fallthrough
	case reflect.Slice:
		formatted := make([]interface{}, reflected.Len())
		for i := 0; i < reflected.Len(); i++ {
			formatted[i] = Format(reflected.Index(i).Interface())
		}
		return formatted
	}

	return value
}
