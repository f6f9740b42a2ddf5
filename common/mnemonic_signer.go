package common

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/types"
)

type MnemonicSigner struct {
	privKey types.PrivKey
	pubKey  types.PubKey
	keyHash []byte
}

var _ Signer = &MnemonicSigner{}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	privKey, err := CosmosPrivateKeyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create private key: %w", err)
	}

	pubKey := privKey.PubKey()

	return &MnemonicSigner{
		privKey: privKey,
		pubKey:  pubKey,
		keyHash: KeyHash(pubKey.Bytes()),
	}, nil
}

func (s *MnemonicSigner) Destroy() {
	// nothing to do
}

func (s *MnemonicSigner) Sign(data []byte) ([]byte, error) {
	return s.privKey.Sign(data)
}

func (s *MnemonicSigner) PublicKey() types.PubKey {
	return s.pubKey
}

func (s *MnemonicSigner) KeyHash() []byte {
	return s.keyHash
}
