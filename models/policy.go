package models

const (
	ScriptTypeAll    = "all"
	ScriptTypeBefore = "before"
	ScriptTypeSig    = "sig"
)

// NativeScript is a timelock/multisig script. Only the fields relevant to the
// script type are set.
type NativeScript struct {
	Type    string         `json:"type" bson:"type"`
	Slot    uint64         `json:"slot,omitempty" bson:"slot,omitempty"`
	KeyHash string         `json:"keyHash,omitempty" bson:"key_hash,omitempty"`
	Scripts []NativeScript `json:"scripts,omitempty" bson:"scripts,omitempty"`
}

type MintingPolicy struct {
	SignerKeyHash string       `json:"signerKeyHash" bson:"signer_key_hash"`
	ExpirySlot    uint64       `json:"expirySlot" bson:"expiry_slot"`
	PolicyID      string       `json:"policyId" bson:"policy_id"`
	Script        NativeScript `json:"script" bson:"script"`
}

// ExpiredAt reports whether the policy can no longer mint at slot.
func (p MintingPolicy) ExpiredAt(slot uint64) bool {
	return p.ExpirySlot <= slot
}
