// Package configuration defines the configuration engine of the transactor.
//
// The configuration features:
//   - loads the environment variable files given by the user.
//   - reads the parameters from the environment variables.
//   - allows setting default variables if user didn't define them.
package configuration

import (
	"fmt"
	"time"

	"github.com/forwardswap/transactor/configuration/env"
	"github.com/forwardswap/transactor/log"
	"github.com/spf13/viper"
)

// Config Configuration Engine based on viper.Viper
type Config struct {
	viper  *viper.Viper // used to keep default values
	logger *log.Logger  // debug purpose only
}

// New creates the configuration of the transactor.
// The .env files are loaded into the environment variables first.
func New(parent *log.Logger, env_paths ...string) (*Config, error) {
	logger := parent.Child("configuration")

	if len(env_paths) > 0 {
		logger.Info("Loading environment files", "paths", env_paths)
	}
	if err := env.LoadAnyEnv(env_paths...); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	conf := Config{
		viper:  viper.New(),
		logger: logger,
	}
	conf.viper.AutomaticEnv()

	return &conf, nil
}

// SetDefaults sets the default configuration parameters.
// The nil values are the required parameters without the default.
func (c *Config) SetDefaults(default_config DefaultConfig) {
	for name, value := range default_config.Parameters {
		if value == nil {
			continue
		}
		// already set, don't use the default
		if c.viper.IsSet(name) {
			continue
		}
		c.logger.Debug("Set default for "+default_config.Title, name, value)
		c.SetDefault(name, value)
	}
}

// SetDefault sets the default configuration name to the value
func (c *Config) SetDefault(name string, value interface{}) {
	c.viper.SetDefault(name, value)
}

// Require returns an error listing the parameters of the default config
// that have no default value and were not set by the user.
func (c *Config) Require(default_config DefaultConfig) error {
	missing := make([]string, 0)
	for name, value := range default_config.Parameters {
		if value == nil && !c.Exist(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing %v environment variables", default_config.Title, missing)
	}

	return nil
}

// Exist Checks whether the configuration variable exists or not
// If the configuration exists or its default value exists, then returns true.
func (c *Config) Exist(name string) bool {
	value := c.viper.GetString(name)
	return len(value) > 0
}

// GetString Returns the configuration parameter as a string
func (c *Config) GetString(name string) string {
	return c.viper.GetString(name)
}

// GetUint64 Returns the configuration parameter as an unsigned 64-bit number
func (c *Config) GetUint64(name string) uint64 {
	return c.viper.GetUint64(name)
}

// GetBool Returns the configuration parameter as a boolean
func (c *Config) GetBool(name string) bool {
	return c.viper.GetBool(name)
}

// GetDuration Returns the configuration parameter as a duration, for example "100ms"
func (c *Config) GetDuration(name string) time.Duration {
	return c.viper.GetDuration(name)
}
