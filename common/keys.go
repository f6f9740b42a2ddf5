package common

import (
	"encoding/hex"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/go-bip39"
)

func CosmosPrivateKeyFromMnemonic(mnemonic string) (types.PrivKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	derivedPriv, err := hd.Secp256k1.Derive()(mnemonic, DefaultBIP39Passphrase, DefaultCosmosHDPath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private key: %w", err)
	}

	return hd.Secp256k1.Generate()(derivedPriv), nil
}

func CosmosPublicKeyFromHex(hexKey string) (types.PubKey, error) {
	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(keyBytes) != CosmosPublicKeyLength {
		return nil, fmt.Errorf("invalid public key length: %d", len(keyBytes))
	}
	return &secp256k1.PubKey{Key: keyBytes}, nil
}
