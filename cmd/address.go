package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address of the account that signs the transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		signer, err := load_account(cmd.Context(), app_config, logger)
		if err != nil {
			return fmt.Errorf("load_account: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), signer.Address().Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
