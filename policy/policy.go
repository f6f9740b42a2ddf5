// Package policy derives time-locked single-signer minting policies and the
// asset names minted under them.
package policy

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	// DefaultExpirySlot is used as the policy window when no lifetime is
	// configured.
	DefaultExpirySlot uint64 = 90000000

	PolicyIDLength = 28

	nativeScriptTag = 0x00
)

// NewScript returns all[before(expirySlot), sig(signerKeyHash)].
func NewScript(signerKeyHash []byte, expirySlot uint64) models.NativeScript {
	return models.NativeScript{
		Type: models.ScriptTypeAll,
		Scripts: []models.NativeScript{
			{Type: models.ScriptTypeBefore, Slot: expirySlot},
			{Type: models.ScriptTypeSig, KeyHash: common.HexFromBytes(signerKeyHash)},
		},
	}
}

func ScriptBytes(script models.NativeScript) ([]byte, error) {
	return codec.Canonical(script)
}

// PolicyID is the hex blake2b-224 hash of the tagged script bytes.
func PolicyID(script models.NativeScript) (string, error) {
	body, err := ScriptBytes(script)
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrMalformedPolicy, err.Error())
	}
	h, err := blake2b.New(PolicyIDLength, nil)
	if err != nil {
		return "", err
	}
	h.Write([]byte{nativeScriptTag})
	h.Write(body)
	return common.HexFromBytes(h.Sum(nil)), nil
}

// DerivePolicy is deterministic: the same signer and expiry always give the
// same policy id.
func DerivePolicy(signerKeyHash []byte, expirySlot uint64, currentSlot uint64) (models.MintingPolicy, error) {
	if len(signerKeyHash) != common.KeyHashLength {
		return models.MintingPolicy{}, fmt.Errorf("%w: signer key hash must be %d bytes", common.ErrMalformedPolicy, common.KeyHashLength)
	}
	if expirySlot <= currentSlot {
		return models.MintingPolicy{}, fmt.Errorf("%w: expiry slot %d is not after current slot %d", common.ErrInvalidExpiry, expirySlot, currentSlot)
	}

	script := NewScript(signerKeyHash, expirySlot)
	policyID, err := PolicyID(script)
	if err != nil {
		return models.MintingPolicy{}, err
	}

	return models.MintingPolicy{
		SignerKeyHash: common.HexFromBytes(signerKeyHash),
		ExpirySlot:    expirySlot,
		PolicyID:      policyID,
		Script:        script,
	}, nil
}

// Verify checks that the policy id commits to the script and that the script
// has the expected shape for the recorded signer and expiry.
func Verify(p models.MintingPolicy) error {
	s := p.Script
	if s.Type != models.ScriptTypeAll || len(s.Scripts) != 2 ||
		s.Scripts[0].Type != models.ScriptTypeBefore || s.Scripts[0].Slot != p.ExpirySlot ||
		s.Scripts[1].Type != models.ScriptTypeSig || s.Scripts[1].KeyHash != p.SignerKeyHash {
		return fmt.Errorf("%w: unexpected script shape", common.ErrMalformedPolicy)
	}

	policyID, err := PolicyID(s)
	if err != nil {
		return err
	}
	if policyID != p.PolicyID {
		return fmt.Errorf("%w: policy id %s does not match script", common.ErrMalformedPolicy, p.PolicyID)
	}
	return nil
}

// AlignedExpiry rounds current+lifetime up to the next multiple of lifetime
// so every caller in the same window derives the same policy.
func AlignedExpiry(currentSlot uint64, lifetime uint64) uint64 {
	if lifetime == 0 {
		lifetime = DefaultExpirySlot
	}
	target := currentSlot + lifetime
	if rem := target % lifetime; rem != 0 {
		target += lifetime - rem
	}
	return target
}
