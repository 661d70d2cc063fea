// Package env was created for one purpose only: LoadAnyEnv
package env

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadAnyEnv loads the .env files into the application's environment variables.
// The variables that are already set are not overwritten.
//
// The values later will be available via configuration.Config.
func LoadAnyEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	err := godotenv.Load(paths...)
	if err != nil {
		return fmt.Errorf("godotenv.Load for paths %v: %w", paths, err)
	}
	return nil
}
