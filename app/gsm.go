package app

import (
	"context"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

// Secret names are full resource names:
// projects/<project>/secrets/<name>/versions/<version>.
func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	readSecret(client, "mongo uri", Config.GoogleSecretManager.MongoSecretName, &Config.MongoDB.URI)
	readSecret(client, "wallet mnemonic", Config.GoogleSecretManager.MnemonicSecretName, &Config.Wallet.Mnemonic)
	readSecret(client, "ipfs auth", Config.GoogleSecretManager.IPFSAuthSecretName, &Config.ContentStore.IPFSAuth)
}

func readSecret(client *secretmanager.Client, label string, name string, dst *string) {
	if *dst != "" || name == "" {
		return
	}

	log.Debug("[GSM] Reading ", label)
	value, err := accessSecretVersion(client, name)
	if err != nil {
		log.Fatalf("[GSM] Failed to access %s: %v", label, err)
	}
	*dst = value
	log.Info("[GSM] Successfully read ", label)
}
