package common

import (
	"github.com/cosmos/cosmos-sdk/crypto/types"
)

// Signer produces 64 byte secp256k1 r||s signatures over the sha256 digest of
// a payload, verifiable with PublicKey().VerifySignature(payload, sig).
type Signer interface {
	Sign(data []byte) ([]byte, error)
	PublicKey() types.PubKey
	KeyHash() []byte
	Destroy()
}
