package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"

	eth_common "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/forwardswap/transactor/log"
	"github.com/forwardswap/transactor/testutil/node"
	"github.com/stretchr/testify/suite"
)

const (
	private_key      = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	address          = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
	mnemonic         = "test test test test test test test test test test test junk"
	mnemonic_address = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	contract_address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

const forward_swap_abi = `[
	{"type":"function","name":"totalContracts","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

type TestCmdSuite struct {
	suite.Suite
	logger *log.Logger
	node   *node.Node
}

func (suite *TestCmdSuite) SetupTest() {
	logger, err := log.New("test", log.WITHOUT_TIMESTAMP)
	suite.Require().NoError(err)
	suite.logger = logger

	suite.node = node.New()

	abi_path := filepath.Join(suite.T().TempDir(), "ForwardSwapV1.json")
	suite.Require().NoError(os.WriteFile(abi_path, []byte(forward_swap_abi), 0o600))

	suite.T().Setenv("TRANSACTOR_RPC_URL", suite.node.Url())
	suite.T().Setenv("TRANSACTOR_CONTRACT_ADDRESS", contract_address)
	suite.T().Setenv("TRANSACTOR_ABI_PATH", abi_path)
	suite.T().Setenv("TRANSACTOR_PRIVATE_KEY", private_key)
	suite.T().Setenv("TRANSACTOR_MNEMONIC", "")
	suite.T().Setenv("TRANSACTOR_VAULT_ENABLED", "false")
	suite.T().Setenv("TRANSACTOR_GAS_PRICE", "")
	suite.T().Setenv("TRANSACTOR_CHAIN_ID", "")
}

func (suite *TestCmdSuite) TearDownTest() {
	suite.node.Close()
}

func (suite *TestCmdSuite) execute(args ...string) (string, error) {
	output := new(bytes.Buffer)
	rootCmd.SetOut(output)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return output.String(), err
}

func (suite *TestCmdSuite) TestLoadConfig() {
	app_config, err := load_config(suite.logger)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.node.Url(), app_config.GetString("TRANSACTOR_RPC_URL"))
	suite.Require().Equal(uint64(84532), app_config.GetUint64("TRANSACTOR_CHAIN_ID"))

	parameters := load_parameters(app_config)
	suite.Require().Equal("2m0s", parameters.ReceiptTimeout.String())
	suite.Require().Equal("100ms", parameters.ReceiptPollInterval.String())

	// the missing contract parameters are reported when the node is needed
	os.Unsetenv("TRANSACTOR_ABI_PATH")
	app_config, err = load_config(suite.logger)
	suite.Require().NoError(err)
	_, err = open_transactor(context.Background(), app_config, suite.logger)
	suite.Require().ErrorContains(err, "TRANSACTOR_ABI_PATH")
	suite.Require().Zero(suite.node.Calls("web3_clientVersion"))
}

func (suite *TestCmdSuite) TestEnvFile() {
	os.Unsetenv("TRANSACTOR_CONTRACT_ADDRESS")
	env_path := filepath.Join(suite.T().TempDir(), ".env")
	suite.Require().NoError(os.WriteFile(env_path, []byte("TRANSACTOR_CONTRACT_ADDRESS="+contract_address+"\n"), 0o600))
	defer os.Unsetenv("TRANSACTOR_CONTRACT_ADDRESS")

	app_config, err := load_config(suite.logger, env_path)
	suite.Require().NoError(err)
	suite.Require().Equal(contract_address, app_config.GetString("TRANSACTOR_CONTRACT_ADDRESS"))

	_, err = load_config(suite.logger, filepath.Join(suite.T().TempDir(), "missing.env"))
	suite.Require().Error(err)
}

func (suite *TestCmdSuite) TestLoadAccount() {
	ctx := context.Background()

	app_config, err := load_config(suite.logger)
	suite.Require().NoError(err)
	signer, err := load_account(ctx, app_config, suite.logger)
	suite.Require().NoError(err)
	suite.Require().Equal(address, signer.Address().Hex())

	// the mnemonic has the priority over the private key
	suite.T().Setenv("TRANSACTOR_MNEMONIC", mnemonic)
	signer, err = load_account(ctx, app_config, suite.logger)
	suite.Require().NoError(err)
	suite.Require().Equal(mnemonic_address, signer.Address().Hex())

	suite.T().Setenv("TRANSACTOR_MNEMONIC", "")
	suite.T().Setenv("TRANSACTOR_PRIVATE_KEY", "")
	_, err = load_account(ctx, app_config, suite.logger)
	suite.Require().Error(err)
}

func (suite *TestCmdSuite) TestLoadPolicy() {
	suite.T().Setenv("TRANSACTOR_GAS_PRICE", "2")
	suite.T().Setenv("TRANSACTOR_CHAIN_ID", "8453")

	app_config, err := load_config(suite.logger)
	suite.Require().NoError(err)
	policy, err := load_policy(app_config)
	suite.Require().NoError(err)
	suite.Require().Equal(big.NewInt(8453), policy.ChainId)
	suite.Require().Equal(big.NewInt(2_000_000_000), policy.GasPriceWei)
	suite.Require().Equal(uint64(500_000), policy.GasLimit)

	suite.T().Setenv("TRANSACTOR_GAS_PRICE", "cheap")
	_, err = load_policy(app_config)
	suite.Require().Error(err)
}

func (suite *TestCmdSuite) TestAddress() {
	output, err := suite.execute("address")
	suite.Require().NoError(err)
	suite.Require().Equal(address+"\n", output)

	_, err = suite.execute("address", "extra")
	suite.Require().Error(err)
}

func (suite *TestCmdSuite) TestAddressWithoutContract() {
	os.Unsetenv("TRANSACTOR_RPC_URL")
	os.Unsetenv("TRANSACTOR_CONTRACT_ADDRESS")
	os.Unsetenv("TRANSACTOR_ABI_PATH")

	output, err := suite.execute("address")
	suite.Require().NoError(err)
	suite.Require().Equal(address+"\n", output)

	_, err = suite.execute("read", "totalContracts")
	suite.Require().ErrorContains(err, "TRANSACTOR_RPC_URL")
}

func (suite *TestCmdSuite) TestRead() {
	suite.node.Handle("eth_call", node.Result("0x0000000000000000000000000000000000000000000000000000000000000007"))

	output, err := suite.execute("read", "totalContracts")
	suite.Require().NoError(err)
	suite.Require().Contains(output, `"value":"7"`)
	suite.Require().Contains(output, `"name":"totalContracts"`)

	_, err = suite.execute("read", "doesNotExist")
	suite.Require().Error(err)

	// the node is down
	suite.node.Close()
	_, err = suite.execute("read", "totalContracts")
	suite.Require().Error(err)
}

// broadcast accepts the raw transactions, the receipt is returned
// from the second request.
type broadcast struct {
	mu       sync.Mutex
	sent     []*eth_types.Transaction
	receipts int
}

func (b *broadcast) send(params []json.RawMessage) (interface{}, *node.Error) {
	var raw string
	if len(params) != 1 || json.Unmarshal(params[0], &raw) != nil {
		return nil, &node.Error{Code: -32602, Message: "invalid params"}
	}
	data, err := hexutil.Decode(raw)
	if err != nil {
		return nil, &node.Error{Code: -32602, Message: err.Error()}
	}
	tx := new(eth_types.Transaction)
	if err := tx.UnmarshalBinary(data); err != nil {
		return nil, &node.Error{Code: -32000, Message: err.Error()}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, tx)
	return tx.Hash().Hex(), nil
}

func (b *broadcast) receipt(params []json.RawMessage) (interface{}, *node.Error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.receipts++
	if b.receipts < 2 || len(b.sent) == 0 {
		return nil, nil
	}

	receipt_json, err := json.Marshal(&eth_types.Receipt{
		Status:            eth_types.ReceiptStatusSuccessful,
		CumulativeGasUsed: 21_000,
		GasUsed:           21_000,
		Logs:              []*eth_types.Log{},
		TxHash:            b.sent[len(b.sent)-1].Hash(),
		BlockNumber:       big.NewInt(16),
		BlockHash:         eth_common.HexToHash("0x10"),
	})
	if err != nil {
		return nil, &node.Error{Code: -32603, Message: err.Error()}
	}
	return json.RawMessage(receipt_json), nil
}

func (suite *TestCmdSuite) TestSubmit() {
	mined := &broadcast{}
	suite.node.Handle("eth_getTransactionCount", node.Result("0x5"))
	suite.node.Handle("eth_sendRawTransaction", mined.send)
	suite.node.Handle("eth_getTransactionReceipt", mined.receipt)

	output, err := suite.execute("submit", "pause")
	suite.Require().NoError(err)

	suite.Require().Len(mined.sent, 1)
	tx := mined.sent[0]
	suite.Require().Equal(uint64(5), tx.Nonce())
	suite.Require().Equal(uint64(500_000), tx.Gas())
	suite.Require().Equal(0, big.NewInt(100_000_000).Cmp(tx.GasPrice()))
	suite.Require().Equal(0, big.NewInt(84532).Cmp(tx.ChainId()))
	suite.Require().Equal(eth_common.HexToAddress(contract_address), *tx.To())
	suite.Require().Equal(hexutil.MustDecode("0x8456cb59"), tx.Data())
	suite.Require().Equal(2, suite.node.Calls("eth_getTransactionReceipt"))

	sender, err := eth_types.Sender(eth_types.NewEIP155Signer(tx.ChainId()), tx)
	suite.Require().NoError(err)
	suite.Require().Equal(address, sender.Hex())

	suite.Require().Contains(output, `"transaction_hash":"`+tx.Hash().Hex()+`"`)
	suite.Require().Contains(output, `"status":1`)
	suite.Require().Contains(output, `"block_number":"16"`)
	suite.Require().Contains(output, `"gas_used":21000`)

	// the method doesn't accept the arguments
	_, err = suite.execute("submit", "pause", "extra")
	suite.Require().Error(err)
	_, err = suite.execute("submit")
	suite.Require().Error(err)
	suite.Require().Len(mined.sent, 1)
}

func (suite *TestCmdSuite) TestSubmitRejected() {
	suite.node.Handle("eth_getTransactionCount", node.Result("0x5"))
	suite.node.Handle("eth_sendRawTransaction", node.Fail(-32000, "nonce too low"))

	output, err := suite.execute("submit", "pause")
	suite.Require().ErrorContains(err, "nonce too low")
	suite.Require().Empty(output)
	suite.Require().Equal(1, suite.node.Calls("eth_sendRawTransaction"))
	suite.Require().Zero(suite.node.Calls("eth_getTransactionReceipt"))
}

func TestCmd(t *testing.T) {
	suite.Run(t, new(TestCmdSuite))
}
