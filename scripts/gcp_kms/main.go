package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/common"
)

// Prints the ledger addresses of a KMS-held key and checks that it signs.
func main() {
	keyName := os.Getenv("WALLET_GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", keyName)
	if keyName == "" {
		log.Fatal("WALLET_GCP_KMS_KEY_NAME not set")
	}

	signer, err := common.NewGcpKmsSigner(keyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Public Key: ", common.HexFromBytes(signer.PublicKey().Bytes()))
	fmt.Println("Key Hash: ", common.HexFromBytes(signer.KeyHash()))

	for _, network := range []string{common.NetworkTestnet, common.NetworkMainnet} {
		address, err := common.EnterpriseAddress(
			common.AddressPrefixes(network)[0],
			common.NetworkIDFor(network),
			signer.KeyHash(),
		)
		if err != nil {
			log.Fatalf("failed to derive %s address: %v", network, err)
		}
		fmt.Printf("Address (%s): %s\n", network, address)
	}

	data := []byte("example transaction body")

	signature, err := signer.Sign(data)
	if err != nil {
		log.Fatalf("failed to sign: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	if !signer.PublicKey().VerifySignature(data, signature) {
		log.Fatal("signature does not verify against the public key")
	}
	fmt.Println("Signature verified")
}
