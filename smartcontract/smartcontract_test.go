package smartcontract

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/forwardswap/transactor/blockchain/evm/abi"
	"github.com/stretchr/testify/suite"
)

const contract_address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

const counter_abi = `[
	{"type":"function","name":"totalContracts","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[
		{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

type TestSmartcontractSuite struct {
	suite.Suite
	smartcontract *Smartcontract
}

func (suite *TestSmartcontractSuite) SetupTest() {
	contract_abi, err := abi.New([]byte(counter_abi))
	suite.Require().NoError(err)

	smartcontract, err := New(contract_address, contract_abi)
	suite.Require().NoError(err)
	suite.smartcontract = smartcontract
}

func (suite *TestSmartcontractSuite) TestNew() {
	suite.Require().Equal(common.HexToAddress(contract_address), suite.smartcontract.Address)
	suite.Require().Equal("84532."+contract_address, suite.smartcontract.Key("84532"))

	// not an address
	_, err := New("0xaddress", suite.smartcontract.Abi)
	suite.Require().Error(err)

	// no abi
	_, err = New(contract_address, nil)
	suite.Require().Error(err)

	path := filepath.Join(suite.T().TempDir(), "abi.json")
	suite.Require().NoError(os.WriteFile(path, []byte(counter_abi), 0o600))
	from_file, err := NewFromFile(contract_address, path)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.smartcontract.Abi.Id, from_file.Abi.Id)

	_, err = NewFromFile(contract_address, filepath.Join(suite.T().TempDir(), "missing.json"))
	suite.Require().Error(err)
}

func (suite *TestSmartcontractSuite) TestCall() {
	to := common.HexToAddress("0x29b0d9A9A989e4651488D0002ebf79199cE1b7C1")

	call, err := suite.smartcontract.Call("transfer", to, big.NewInt(10))
	suite.Require().NoError(err)
	suite.Require().Equal(suite.smartcontract.Address, call.To)
	suite.Require().Equal("transfer", call.Method)
	suite.Require().Len(call.Arguments, 2)
	// 4 bytes of the selector and two words of the arguments
	suite.Require().Len(call.Data, 4+32*2)

	from_strings, err := suite.smartcontract.CallStrings("transfer", []string{to.Hex(), "10"})
	suite.Require().NoError(err)
	suite.Require().Equal(call.Data, from_strings.Data)

	_, err = suite.smartcontract.Call("doesNotExist")
	suite.Require().True(errors.Is(err, abi.ErrMemberNotFound))
	_, err = suite.smartcontract.CallStrings("transfer", []string{"10"})
	suite.Require().Error(err)

	from := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
	msg := call.Msg(from)
	suite.Require().Equal(from, msg.From)
	suite.Require().Equal(suite.smartcontract.Address, *msg.To)
	suite.Require().Equal(call.Data, msg.Data)

	read, err := suite.smartcontract.Call("totalContracts")
	suite.Require().NoError(err)
	suite.Require().Equal("totalContracts 0xa09037a9", read.String())
}

func TestSmartcontract(t *testing.T) {
	suite.Run(t, new(TestSmartcontractSuite))
}
