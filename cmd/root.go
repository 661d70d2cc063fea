// Package cmd is the command line interface of the transactor.
//
// Every command reads the configuration from the environment variables
// and the .env files given with the --env flag.
package cmd

import (
	"fmt"
	"os"

	"github.com/forwardswap/transactor/configuration"
	"github.com/forwardswap/transactor/log"
	"github.com/spf13/cobra"
)

var (
	env_paths []string
	debug     bool

	logger     *log.Logger
	app_config *configuration.Config
)

var rootCmd = &cobra.Command{
	Use:   "transactor",
	Short: "Signs and submits the transactions to the ForwardSwap smartcontract",
	Long: `The transactor keeps the key of the single account and submits the
transactions to the single smartcontract with the fixed chain id, gas limit
and gas price. It also reads the smartcontract variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = log.New("transactor", log.WITH_TIMESTAMP)
		if err != nil {
			return fmt.Errorf("log.New: %w", err)
		}
		logger.SetDebug(debug)

		app_config, err = load_config(logger, env_paths...)
		if err != nil {
			return fmt.Errorf("load_config: %w", err)
		}

		return nil
	},
}

// Execute the command given in the arguments
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&env_paths, "env", []string{}, "the .env files to load")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print the debug messages")
}
