package cmd

import (
	"context"
	"fmt"

	"github.com/forwardswap/transactor/account"
	"github.com/forwardswap/transactor/blockchain/evm/client"
	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/forwardswap/transactor/configuration"
	"github.com/forwardswap/transactor/log"
	"github.com/forwardswap/transactor/security/vault"
	"github.com/forwardswap/transactor/smartcontract"
	"github.com/forwardswap/transactor/transactor"
)

// TransactorConfigurations are the default parameters of the transactor.
// The nil parameters are required from the user.
var TransactorConfigurations = configuration.DefaultConfig{
	Title: "Transactor",
	Parameters: key_value.New(map[string]interface{}{
		"TRANSACTOR_RPC_URL":               nil,
		"TRANSACTOR_CONTRACT_ADDRESS":      nil,
		"TRANSACTOR_ABI_PATH":              nil,
		"TRANSACTOR_PRIVATE_KEY":           "",
		"TRANSACTOR_MNEMONIC":              "",
		"TRANSACTOR_DERIVATION_PATH":       account.DEFAULT_DERIVATION_PATH,
		"TRANSACTOR_CHAIN_ID":              transactor.DEFAULT_CHAIN_ID,
		"TRANSACTOR_GAS_LIMIT":             transactor.DEFAULT_GAS_LIMIT,
		"TRANSACTOR_GAS_PRICE":             transactor.DEFAULT_GAS_PRICE,
		"TRANSACTOR_GAS_PRICE_UNIT":        transactor.DEFAULT_GAS_PRICE_UNIT,
		"TRANSACTOR_RECEIPT_TIMEOUT":       client.DEFAULT_RECEIPT_TIMEOUT.String(),
		"TRANSACTOR_RECEIPT_POLL_INTERVAL": client.DEFAULT_RECEIPT_POLL_INTERVAL.String(),
		"TRANSACTOR_METRICS_ADDR":          "",
	}),
}

// load_config reads the .env files and the environment variables.
func load_config(logger *log.Logger, env_paths ...string) (*configuration.Config, error) {
	app_config, err := configuration.New(logger, env_paths...)
	if err != nil {
		return nil, fmt.Errorf("configuration.New: %w", err)
	}
	app_config.SetDefaults(TransactorConfigurations)

	return app_config, nil
}

// load_account picks the key source: the vault if it's enabled,
// then the mnemonic, then the private key.
func load_account(ctx context.Context, app_config *configuration.Config, logger *log.Logger) (*account.Account, error) {
	if vault.Enabled(app_config) {
		v, err := vault.New(ctx, app_config, logger)
		if err != nil {
			return nil, fmt.Errorf("vault.New: %w", err)
		}
		private_key, err := v.PrivateKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("vault.PrivateKey: %w", err)
		}
		return account.New(private_key)
	}

	if app_config.Exist("TRANSACTOR_MNEMONIC") {
		return account.NewFromMnemonic(
			app_config.GetString("TRANSACTOR_MNEMONIC"),
			app_config.GetString("TRANSACTOR_DERIVATION_PATH"),
		)
	}

	if app_config.Exist("TRANSACTOR_PRIVATE_KEY") {
		return account.NewFromHex(app_config.GetString("TRANSACTOR_PRIVATE_KEY"))
	}

	return nil, fmt.Errorf("no key: set TRANSACTOR_PRIVATE_KEY, TRANSACTOR_MNEMONIC or enable the vault")
}

func load_policy(app_config *configuration.Config) (transactor.Policy, error) {
	return transactor.NewPolicy(
		app_config.GetUint64("TRANSACTOR_CHAIN_ID"),
		app_config.GetUint64("TRANSACTOR_GAS_LIMIT"),
		app_config.GetString("TRANSACTOR_GAS_PRICE"),
		app_config.GetString("TRANSACTOR_GAS_PRICE_UNIT"),
	)
}

func load_parameters(app_config *configuration.Config) client.Parameters {
	return client.Parameters{
		ReceiptTimeout:      app_config.GetDuration("TRANSACTOR_RECEIPT_TIMEOUT"),
		ReceiptPollInterval: app_config.GetDuration("TRANSACTOR_RECEIPT_POLL_INTERVAL"),
	}
}

// open_transactor connects to the node with the configured key,
// smartcontract and policy.
// Only the commands that talk to the node require the endpoint and the contract.
func open_transactor(ctx context.Context, app_config *configuration.Config, logger *log.Logger) (*transactor.Transactor, error) {
	if err := app_config.Require(TransactorConfigurations); err != nil {
		return nil, err
	}

	contract, err := smartcontract.NewFromFile(
		app_config.GetString("TRANSACTOR_CONTRACT_ADDRESS"),
		app_config.GetString("TRANSACTOR_ABI_PATH"),
	)
	if err != nil {
		return nil, fmt.Errorf("smartcontract.NewFromFile: %w", err)
	}

	policy, err := load_policy(app_config)
	if err != nil {
		return nil, fmt.Errorf("load_policy: %w", err)
	}

	signer, err := load_account(ctx, app_config, logger)
	if err != nil {
		return nil, fmt.Errorf("load_account: %w", err)
	}

	return transactor.Dial(ctx,
		app_config.GetString("TRANSACTOR_RPC_URL"),
		load_parameters(app_config),
		signer,
		contract,
		policy,
		logger,
	)
}
