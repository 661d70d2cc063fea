package cmd

import (
	"fmt"

	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <method> [arguments...]",
	Short: "Submit the transaction calling the smartcontract method and wait until it's mined",
	Long: `Submit the transaction calling the smartcontract method.
The arguments are converted by the method's abi, for example:

	transactor submit transfer 0x29b0d9A9A989e4651488D0002ebf79199cE1b7C1 1000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := open_transactor(cmd.Context(), app_config, logger)
		if err != nil {
			return fmt.Errorf("open_transactor: %w", err)
		}
		defer t.Close()

		call, err := t.Smartcontract().CallStrings(args[0], args[1:])
		if err != nil {
			return fmt.Errorf("smartcontract.CallStrings: %w", err)
		}

		receipt, err := t.SubmitTransaction(cmd.Context(), call)
		if err != nil {
			return err
		}

		output, err := key_value.Empty().
			Set("transaction_hash", receipt.TxHash.Hex()).
			Set("status", receipt.Status).
			Set("block_number", receipt.BlockNumber.String()).
			Set("gas_used", receipt.GasUsed).
			ToString()
		if err != nil {
			return fmt.Errorf("output.ToString: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
