// Package account holds the signing key of the transactor.
//
// The key lives only in the process memory.
// It's never logged or serialized, only the address is.
package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// DEFAULT_DERIVATION_PATH is the first account of the BIP-44 ethereum wallet
const DEFAULT_DERIVATION_PATH = "m/44'/60'/0'/0/0"

// PRIVATE_KEY_LENGTH of the secp256k1 key in bytes
const PRIVATE_KEY_LENGTH = 32

// Account is the secp256k1 key and the address derived from it.
type Account struct {
	private_key *ecdsa.PrivateKey
	address     common.Address
}

// New account from the credential.
//
// The credential is either the raw 32 bytes of the key,
// or the key as a hex text with the optional 0x prefix.
func New(credential []byte) (*Account, error) {
	if len(credential) == PRIVATE_KEY_LENGTH {
		return from_bytes(credential)
	}

	text := strings.TrimSpace(string(credential))
	if !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
		text = "0x" + text
	}
	raw, err := hexutil.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("the credential is neither raw key nor hex: %w", err)
	}
	if len(raw) != PRIVATE_KEY_LENGTH {
		return nil, fmt.Errorf("the private key should be %d bytes, not %d", PRIVATE_KEY_LENGTH, len(raw))
	}

	return from_bytes(raw)
}

// NewFromHex is the New for the private key in the hex format
func NewFromHex(private_key string) (*Account, error) {
	return New([]byte(private_key))
}

// NewFromMnemonic derives the account from the BIP-39 mnemonic
// at the BIP-44 path. If the path is empty, then DEFAULT_DERIVATION_PATH is used.
func NewFromMnemonic(mnemonic string, path string) (*Account, error) {
	if len(path) == 0 {
		path = DEFAULT_DERIVATION_PATH
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("hdwallet.NewFromMnemonic: %w", err)
	}
	derivation_path, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("hdwallet.ParseDerivationPath(%s): %w", path, err)
	}
	derived, err := wallet.Derive(derivation_path, false)
	if err != nil {
		return nil, fmt.Errorf("wallet.Derive(%s): %w", path, err)
	}
	private_key, err := wallet.PrivateKey(derived)
	if err != nil {
		return nil, fmt.Errorf("wallet.PrivateKey: %w", err)
	}

	return &Account{
		private_key: private_key,
		address:     crypto.PubkeyToAddress(private_key.PublicKey),
	}, nil
}

func from_bytes(raw []byte) (*Account, error) {
	private_key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("crypto.ToECDSA: %w", err)
	}

	return &Account{
		private_key: private_key,
		address:     crypto.PubkeyToAddress(private_key.PublicKey),
	}, nil
}

// Address of the account
func (account *Account) Address() common.Address {
	return account.address
}

// Sign the transaction for the chain with the EIP-155 replay protection.
func (account *Account) Sign(tx *eth_types.Transaction, chain_id *big.Int) (*eth_types.Transaction, error) {
	if chain_id == nil || chain_id.Sign() <= 0 {
		return nil, fmt.Errorf("the chain id should be positive")
	}

	signed, err := eth_types.SignTx(tx, eth_types.NewEIP155Signer(chain_id), account.private_key)
	if err != nil {
		return nil, fmt.Errorf("types.SignTx: %w", err)
	}

	return signed, nil
}

// String returns the checksummed address. The key is never printed.
func (account *Account) String() string {
	return account.address.Hex()
}
