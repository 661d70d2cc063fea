package message

import (
	"testing"

	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/stretchr/testify/suite"
)

type TestReplySuite struct {
	suite.Suite
	fail Reply
	ok   Reply
}

func (suite *TestReplySuite) SetupTest() {
	suite.ok = Ok(key_value.Empty().Set("address", "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"))
	suite.fail = Fail("submission broadcast (nonce 5): nonce too low")
}

func (suite *TestReplySuite) TestIsOk() {
	suite.Require().True(suite.ok.IsOK())
	suite.Require().False(suite.fail.IsOK())
}

func (suite *TestReplySuite) TestToBytes() {
	ok_string := `{"message":"","parameters":{"address":"0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"},"status":"OK"}`
	fail_string := `{"message":"submission broadcast (nonce 5): nonce too low","parameters":{},"status":"fail"}`

	ok_bytes, err := suite.ok.ToBytes()
	suite.Require().NoError(err)
	suite.Require().Equal(ok_string, string(ok_bytes))

	fail_string_given, err := suite.fail.ToString()
	suite.Require().NoError(err)
	suite.Require().Equal(fail_string, fail_string_given)

	// nil parameters are sent as the empty object
	reply := Reply{Status: OK}
	data, err := reply.ToBytes()
	suite.Require().NoError(err)
	suite.Require().Equal(`{"message":"","parameters":{},"status":"OK"}`, string(data))

	// the failure reply can not have an empty message
	reply = Reply{Status: FAIL, Parameters: key_value.Empty()}
	_, err = reply.ToBytes()
	suite.Require().Error(err)

	// unknown status
	reply = Reply{Status: "pending", Parameters: key_value.Empty()}
	_, err = reply.ToBytes()
	suite.Require().Error(err)
}

func (suite *TestReplySuite) TestParsing() {
	ok_string, err := suite.ok.ToString()
	suite.Require().NoError(err)

	// the message could be split into the parts
	reply, err := ParseReply([]string{ok_string[:10], ok_string[10:]})
	suite.Require().NoError(err)
	suite.Require().True(reply.IsOK())
	address, err := reply.Parameters.GetString("address")
	suite.Require().NoError(err)
	suite.Require().Equal("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", address)

	_, err = ParseReply([]string{`{"status":"fail","message":"","parameters":{}}`})
	suite.Require().Error(err)
	_, err = ParseReply([]string{`not a json`})
	suite.Require().Error(err)
}

func TestReply(t *testing.T) {
	suite.Run(t, new(TestReplySuite))
}
