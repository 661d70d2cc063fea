package cmd

import (
	"fmt"

	"github.com/forwardswap/transactor/blockchain/evm/abi"
	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Read the smartcontract variable or view without arguments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := open_transactor(cmd.Context(), app_config, logger)
		if err != nil {
			return fmt.Errorf("open_transactor: %w", err)
		}
		defer t.Close()

		value, err := t.ReadVariable(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		result := key_value.Empty().Set("name", args[0])
		if value != nil {
			result.Set("value", abi.Format(value))
		}
		output, err := result.ToString()
		if err != nil {
			return fmt.Errorf("output.ToString: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
