package configuration

import (
	"github.com/forwardswap/transactor/common/data_type/key_value"
)

// DefaultConfig is the default configuration of the package.
//
// The parameter with the nil value has no default,
// it's required from the user.
type DefaultConfig struct {
	Title      string             // package title
	Parameters key_value.KeyValue // parameters
}
