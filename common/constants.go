package common

import "encoding/asn1"

const (
	KeyHashLength          = 28
	CosmosPublicKeyLength  = 33
	DefaultBIP39Passphrase = ""
	DefaultCosmosHDPath    = "m/44'/118'/0'/0/0"

	// MaxAssetNameLength is the ledger limit on asset name bytes.
	MaxAssetNameLength = 32
	MaxMessageLength   = 256

	// MaxAmountMinorUnits is the largest amount canonical JSON carries exactly.
	MaxAmountMinorUnits = 1<<53 - 1

	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

var oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
