package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/common"
)

var (
	newMnemonicSigner = func(mnemonic string) (common.Signer, error) { return common.NewMnemonicSigner(mnemonic) }
	newGcpKmsSigner   = common.NewGcpKmsSigner
)

// CreateSigner builds the wallet signer, preferring a mnemonic over a KMS key.
func CreateSigner() (common.Signer, error) {
	config := Config.Wallet
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("both Mnemonic and GcpKmsKeyName are empty")
	}

	var (
		signer common.Signer
		err    error
	)
	if config.Mnemonic != "" {
		log.Debug("[SIGNER] Using mnemonic signer")
		signer, err = newMnemonicSigner(config.Mnemonic)
	} else {
		log.Debug("[SIGNER] Using gcp kms signer")
		signer, err = newGcpKmsSigner(config.GcpKmsKeyName)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing signer: %w", err)
	}

	address, err := common.EnterpriseAddress(
		common.AddressPrefixes(Config.Ledger.Network)[0],
		common.NetworkIDFor(Config.Ledger.Network),
		signer.KeyHash(),
	)
	if err != nil {
		signer.Destroy()
		return nil, fmt.Errorf("error deriving signer address: %w", err)
	}
	log.Info("[SIGNER] Wallet address: ", address)

	return signer, nil
}
