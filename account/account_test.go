package account

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
)

// The key and address from the web3 documentation
const (
	private_key = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	address     = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

// The first account of the development mnemonic used by hardhat and anvil
const (
	dev_mnemonic = "test test test test test test test test test test test junk"
	dev_address  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	dev_second   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

type TestAccountSuite struct {
	suite.Suite
	account *Account
}

func (suite *TestAccountSuite) SetupTest() {
	account, err := NewFromHex(private_key)
	suite.Require().NoError(err)
	suite.account = account
}

func (suite *TestAccountSuite) TestNew() {
	suite.Require().Equal(address, suite.account.Address().Hex())
	suite.Require().Equal(address, suite.account.String())

	// the raw bytes of the key
	raw, err := hexutil.Decode(private_key)
	suite.Require().NoError(err)
	from_raw, err := New(raw)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.account.Address(), from_raw.Address())

	// without prefix and with the new line of the secret file
	from_text, err := New([]byte(private_key[2:] + "\n"))
	suite.Require().NoError(err)
	suite.Require().Equal(suite.account.Address(), from_text.Address())

	// the address is derived only from the key
	again, err := NewFromHex(private_key)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.account.Address(), again.Address())

	// not a hex
	_, err = NewFromHex("not a key")
	suite.Require().Error(err)

	// short key
	_, err = NewFromHex("0x4c0883a691")
	suite.Require().Error(err)

	// zero is not a valid secp256k1 key
	_, err = New(make([]byte, PRIVATE_KEY_LENGTH))
	suite.Require().Error(err)
}

func (suite *TestAccountSuite) TestNewFromMnemonic() {
	account, err := NewFromMnemonic(dev_mnemonic, "")
	suite.Require().NoError(err)
	suite.Require().Equal(dev_address, account.Address().Hex())

	account, err = NewFromMnemonic(dev_mnemonic, "m/44'/60'/0'/0/1")
	suite.Require().NoError(err)
	suite.Require().Equal(dev_second, account.Address().Hex())

	_, err = NewFromMnemonic("not a mnemonic", "")
	suite.Require().Error(err)

	_, err = NewFromMnemonic(dev_mnemonic, "m/not/a/path")
	suite.Require().Error(err)
}

func (suite *TestAccountSuite) TestSign() {
	to := common.HexToAddress("0x29b0d9A9A989e4651488D0002ebf79199cE1b7C1")
	chain_id := big.NewInt(84532)
	tx := eth_types.NewTx(&eth_types.LegacyTx{
		Nonce:    5,
		GasPrice: big.NewInt(100_000_000),
		Gas:      500_000,
		To:       &to,
		Data:     []byte{0x18, 0x16, 0x0d, 0xdd},
	})

	signed, err := suite.account.Sign(tx, chain_id)
	suite.Require().NoError(err)
	suite.Require().Equal(0, chain_id.Cmp(signed.ChainId()))

	// the signer is recovered from the signature
	sender, err := eth_types.Sender(eth_types.NewEIP155Signer(chain_id), signed)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.account.Address(), sender)

	_, err = suite.account.Sign(tx, nil)
	suite.Require().Error(err)
	_, err = suite.account.Sign(tx, big.NewInt(0))
	suite.Require().Error(err)
}

func TestAccount(t *testing.T) {
	suite.Run(t, new(TestAccountSuite))
}
