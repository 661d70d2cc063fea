package vault

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/forwardswap/transactor/configuration"
	"github.com/forwardswap/transactor/log"
	"github.com/stretchr/testify/suite"
)

const (
	role_id     = "c1a3f1ac-role"
	secret_id   = "0e13e40e-secret"
	vault_token = "hvs.transactor-test-token"
	private_key = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

type TestVaultSuite struct {
	suite.Suite
	server *httptest.Server
	logger *log.Logger
	logins int
}

// fake vault with the approle auth and the kv v2 engine mounted at "secret"
func (suite *TestVaultSuite) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/v1/auth/approle/login":
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
			body["role_id"] != role_id || body["secret_id"] != secret_id {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":["invalid role or secret ID"]}`))
			return
		}
		suite.logins++
		_, _ = w.Write([]byte(`{"auth":{"client_token":"` + vault_token + `","accessor":"","policies":["transactor"],"lease_duration":3600,"renewable":true}}`))
	case "/v1/secret/data/transactor":
		if r.Header.Get("X-Vault-Token") != vault_token {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":["permission denied"]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"data":{"private_key":"` + private_key + `\n","chain_id":84532},` +
			`"metadata":{"created_time":"2024-05-01T10:00:00.000000000Z","custom_metadata":null,"deletion_time":"","destroyed":false,"version":1}}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[]}`))
	}
}

func (suite *TestVaultSuite) SetupTest() {
	logger, err := log.New("test", log.WITHOUT_TIMESTAMP)
	suite.Require().NoError(err)
	suite.logger = logger
	suite.logins = 0

	suite.server = httptest.NewServer(http.HandlerFunc(suite.serve))
	server_url, err := url.Parse(suite.server.URL)
	suite.Require().NoError(err)
	host, port, err := net.SplitHostPort(server_url.Host)
	suite.Require().NoError(err)

	suite.T().Setenv("TRANSACTOR_VAULT_HOST", host)
	suite.T().Setenv("TRANSACTOR_VAULT_PORT", port)
	suite.T().Setenv("TRANSACTOR_VAULT_APPROLE_ROLE_ID", role_id)
	suite.T().Setenv("TRANSACTOR_VAULT_APPROLE_SECRET_ID", secret_id)
	// the developer's token shouldn't be used instead of the approle
	suite.T().Setenv("VAULT_TOKEN", "")
	os.Unsetenv("VAULT_TOKEN")
}

func (suite *TestVaultSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *TestVaultSuite) TestPrivateKey() {
	conf, err := configuration.New(suite.logger)
	suite.Require().NoError(err)

	vault, err := New(context.Background(), conf, suite.logger)
	suite.Require().NoError(err)
	suite.Require().Equal(1, suite.logins)
	suite.Require().False(Enabled(conf))

	key, err := vault.PrivateKey(context.Background())
	suite.Require().NoError(err)
	suite.Require().Equal(private_key, string(key))

	// not a string
	_, err = vault.GetString(context.Background(), "transactor", "chain_id")
	suite.Require().Error(err)

	// missing secret
	_, err = vault.GetString(context.Background(), "other", "private_key")
	suite.Require().Error(err)
}

func (suite *TestVaultSuite) TestLoginFailure() {
	suite.T().Setenv("TRANSACTOR_VAULT_APPROLE_SECRET_ID", "wrong")
	conf, err := configuration.New(suite.logger)
	suite.Require().NoError(err)

	_, err = New(context.Background(), conf, suite.logger)
	suite.Require().Error(err)
	suite.Require().Equal(0, suite.logins)
}

func (suite *TestVaultSuite) TestMissingRole() {
	os.Unsetenv("TRANSACTOR_VAULT_APPROLE_ROLE_ID")
	conf, err := configuration.New(suite.logger)
	suite.Require().NoError(err)

	_, err = New(context.Background(), conf, suite.logger)
	suite.Require().Error(err)

	_, err = New(context.Background(), nil, suite.logger)
	suite.Require().Error(err)
}

func TestVault(t *testing.T) {
	suite.Run(t, new(TestVaultSuite))
}
