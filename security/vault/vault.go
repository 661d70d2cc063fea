// Package vault reads the signing key of the transactor
// from the Hashicorp Vault key-value secrets engine.
//
// The transactor logs in with the AppRole authentication method.
package vault

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/forwardswap/transactor/common/data_type/key_value"
	"github.com/forwardswap/transactor/configuration"
	"github.com/forwardswap/transactor/log"
	hashicorp "github.com/hashicorp/vault/api"
	"github.com/hashicorp/vault/api/auth/approle"
)

// Vault is the wrapper around hashicorp vault client along with
// the secret path of the transactor's key.
type Vault struct {
	logger  *log.Logger
	client  *hashicorp.Client
	path    string // Key-Value secrets engine mount path
	secret  string // the secret that keeps the private key
	key     string // the key of the private key in the secret
	timeout time.Duration

	// connection parameters
	approle_role_id    string
	approle_secret_id  string
	approle_mount_path string
}

// VaultConfigurations are setting the default configuration parameters.
//
// The values are the default values if it wasn't provided by the user
// Set the default value to nil, if the parameter is required from the user
var VaultConfigurations = configuration.DefaultConfig{
	Title: "Vault",
	Parameters: key_value.New(map[string]interface{}{
		"TRANSACTOR_VAULT_ENABLED":            false,
		"TRANSACTOR_VAULT_HOST":               "localhost",
		"TRANSACTOR_VAULT_PORT":               8200,
		"TRANSACTOR_VAULT_HTTPS":              false,
		"TRANSACTOR_VAULT_APPROLE_MOUNT_PATH": "approle",
		"TRANSACTOR_VAULT_PATH":               "secret",
		"TRANSACTOR_VAULT_SECRET":             "transactor",
		"TRANSACTOR_VAULT_KEY":                "private_key",
		"TRANSACTOR_VAULT_TIMEOUT":            "10s",
		"TRANSACTOR_VAULT_APPROLE_ROLE_ID":    nil,
		"TRANSACTOR_VAULT_APPROLE_SECRET_ID":  nil,
	}),
}

// Enabled returns true if the key should be read from the vault
func Enabled(app_config *configuration.Config) bool {
	return app_config.GetBool("TRANSACTOR_VAULT_ENABLED")
}

// New vault that's connected to remote the Hashicorp Vault.
// The vault is logged in with the AppRole.
//
// If you run the Vault in the dev mode, then the path should be "secret".
func New(ctx context.Context, app_config *configuration.Config, parent *log.Logger) (*Vault, error) {
	if app_config == nil {
		return nil, fmt.Errorf("missing configuration")
	}
	app_config.SetDefaults(VaultConfigurations)
	if err := app_config.Require(VaultConfigurations); err != nil {
		return nil, err
	}

	secure := app_config.GetBool("TRANSACTOR_VAULT_HTTPS")
	host := app_config.GetString("TRANSACTOR_VAULT_HOST")
	port := app_config.GetString("TRANSACTOR_VAULT_PORT")
	timeout := app_config.GetDuration("TRANSACTOR_VAULT_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("'TRANSACTOR_VAULT_TIMEOUT' should be positive")
	}

	config := hashicorp.DefaultConfig()
	if secure {
		config.Address = "https://" + net.JoinHostPort(host, port)
	} else {
		config.Address = "http://" + net.JoinHostPort(host, port)
	}
	config.Timeout = timeout

	client, err := hashicorp.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("hashicorp.NewClient: %w", err)
	}

	vault := Vault{
		client:             client,
		logger:             parent.Child("vault", "address", config.Address),
		path:               app_config.GetString("TRANSACTOR_VAULT_PATH"),
		secret:             app_config.GetString("TRANSACTOR_VAULT_SECRET"),
		key:                app_config.GetString("TRANSACTOR_VAULT_KEY"),
		timeout:            timeout,
		approle_mount_path: app_config.GetString("TRANSACTOR_VAULT_APPROLE_MOUNT_PATH"),
		approle_role_id:    app_config.GetString("TRANSACTOR_VAULT_APPROLE_ROLE_ID"),
		approle_secret_id:  app_config.GetString("TRANSACTOR_VAULT_APPROLE_SECRET_ID"),
	}

	login_ctx, cancel := context.WithTimeout(ctx, timeout)
	err = vault.login(login_ctx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("vault login error: %w", err)
	}

	return &vault, nil
}

// A combination of a RoleID and a SecretID is required to log into Vault
// with AppRole authentication method.
//
// ref: https://learn.hashicorp.com/tutorials/vault/approle-best-practices?in=vault/auth-methods#secretid-delivery-best-practices
func (v *Vault) login(ctx context.Context) error {
	v.logger.Info("Vault login: begin")

	approle_secret_id := &approle.SecretID{
		FromString: v.approle_secret_id,
	}

	approle_auth, err := approle.NewAppRoleAuth(
		v.approle_role_id,
		approle_secret_id,
		approle.WithMountPath(v.approle_mount_path),
	)
	if err != nil {
		return fmt.Errorf("unable to initialize approle authentication method: %w", err)
	}

	auth_info, err := v.client.Auth().Login(ctx, approle_auth)
	if err != nil {
		return fmt.Errorf("unable to login using approle auth method: %w", err)
	}
	if auth_info == nil || auth_info.Auth == nil {
		return fmt.Errorf("no approle info was returned after login")
	}

	v.logger.Info("Vault login: success!", "lease_duration", auth_info.Auth.LeaseDuration)

	return nil
}

// GetString returns the string in the secret by the key
func (v *Vault) GetString(ctx context.Context, secret_name string, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	secret, err := v.client.KVv2(v.path).Get(ctx, secret_name)
	if err != nil {
		return "", fmt.Errorf("vault.client.Get: %w", err)
	}

	value, ok := secret.Data[key].(string)
	if !ok {
		return "", fmt.Errorf("the '%s' key in the '%s' secret is %T, not a string", key, secret_name, secret.Data[key])
	}

	return value, nil
}

// PrivateKey returns the private key of the transactor stored in the vault.
// The key is not logged.
func (v *Vault) PrivateKey(ctx context.Context) ([]byte, error) {
	value, err := v.GetString(ctx, v.secret, v.key)
	if err != nil {
		return nil, err
	}
	v.logger.Info("private key was read", "secret", v.secret, "key", v.key)

	return []byte(strings.TrimSpace(value)), nil
}
