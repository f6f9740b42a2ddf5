package common

import (
	"context"
	"crypto/sha256"
	"encoding/asn1"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cloud.google.com/go/kms/apiv1/kmspb"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	gax "github.com/googleapis/gax-go/v2"
)

// MockGCPKeyManagementClient is a mock implementation of GCPKeyManagementClient
type MockGCPKeyManagementClient struct {
	mock.Mock
}

func (m *MockGCPKeyManagementClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGCPKeyManagementClient) GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.PublicKey), args.Error(1)
}

func (m *MockGCPKeyManagementClient) AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.AsymmetricSignResponse), args.Error(1)
}

func (m *MockGCPKeyManagementClient) GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.CryptoKeyVersion), args.Error(1)
}

const testPublicKeyPem = "-----BEGIN PUBLIC KEY-----\nMFYwEAYHKoZIzj0CAQYFK4EEAAoDQgAEWf5LaoaCQYy4bfVxwKNrBvGzfmdgmFAJ\nWZwx14PGzKxssHukWefUlJ0SsXj4RogC6/fZMgB+RrAvx6K/kHYf1g==\n-----END PUBLIC KEY-----"

type asn1Signature struct {
	R, S *big.Int
}

func asn1Bytes(r, s *big.Int) []byte {
	signature, _ := asn1.Marshal(asn1Signature{R: r, S: s})
	return signature
}

// kmsSignature signs data the way KMS does: DER encoded, over sha256.
func kmsSignature(t *testing.T, priv *dcrecSecp256k1.PrivateKey, data []byte, highS bool) []byte {
	digest := sha256.Sum256(data)
	der := btcecdsa.Sign(priv, digest[:]).Serialize()

	var sig asn1Signature
	_, err := asn1.Unmarshal(der, &sig)
	assert.NoError(t, err)

	if highS {
		n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
		sig.S = new(big.Int).Sub(n, sig.S)
	}
	return asn1Bytes(sig.R, sig.S)
}

func newTestKmsSigner(t *testing.T, client GCPKeyManagementClient) (*GcpKmsSigner, *dcrecSecp256k1.PrivateKey) {
	priv, err := dcrecSecp256k1.GeneratePrivateKey()
	assert.NoError(t, err)

	pub := priv.PubKey()
	pubKey := &secp256k1.PubKey{Key: pub.SerializeCompressed()}

	return &GcpKmsSigner{
		client:          client,
		keyName:         "test-key",
		pubKey:          pubKey,
		keyHash:         KeyHash(pubKey.Bytes()),
		secp256k1PubKey: pub,
	}, priv
}

func TestNewGcpKmsSigner(t *testing.T) {
	defaultClient := NewGCPKeyManagementClient
	defer func() { NewGCPKeyManagementClient = defaultClient }()

	keyName := "test-key"

	t.Run("Valid Key", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		mockClient.On("GetCryptoKeyVersion", mock.Anything, &kmspb.GetCryptoKeyVersionRequest{Name: keyName}, mock.Anything).Return(&kmspb.CryptoKeyVersion{
			Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256,
		}, nil)
		mockClient.On("GetPublicKey", mock.Anything, &kmspb.GetPublicKeyRequest{Name: keyName}, mock.Anything).Return(&kmspb.PublicKey{
			Pem: testPublicKeyPem,
		}, nil)

		signer, err := NewGcpKmsSigner(keyName)
		assert.NoError(t, err)
		assert.NotNil(t, signer)
		assert.Len(t, signer.KeyHash(), KeyHashLength)
		assert.Len(t, signer.PublicKey().Bytes(), CosmosPublicKeyLength)

		mockClient.AssertExpectations(t)
	})

	t.Run("Wrong Algorithm", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.CryptoKeyVersion{
			Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_P256_SHA256,
		}, nil)

		signer, err := NewGcpKmsSigner(keyName)
		assert.Error(t, err)
		assert.Nil(t, signer)
	})

	t.Run("Empty Pem", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.CryptoKeyVersion{
			Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256,
		}, nil)
		mockClient.On("GetPublicKey", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.PublicKey{}, nil)

		_, err := NewGcpKmsSigner(keyName)
		assert.Error(t, err)
	})

	t.Run("Client Error", func(t *testing.T) {
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return nil, errors.New("no credentials")
		}

		_, err := NewGcpKmsSigner(keyName)
		assert.Error(t, err)
	})
}

func TestGcpKmsSigner_Sign(t *testing.T) {
	data := []byte("example transaction body")

	t.Run("Low S", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer, priv := newTestKmsSigner(t, mockClient)

		digest := sha256.Sum256(data)
		mockClient.On("AsymmetricSign", mock.Anything, mock.MatchedBy(func(req *kmspb.AsymmetricSignRequest) bool {
			return req.Name == "test-key" && string(req.Digest.GetSha256()) == string(digest[:])
		}), mock.Anything).Return(&kmspb.AsymmetricSignResponse{
			Signature: kmsSignature(t, priv, data, false),
		}, nil)

		sig, err := signer.Sign(data)
		assert.NoError(t, err)
		assert.Len(t, sig, 64)
		assert.True(t, signer.PublicKey().VerifySignature(data, sig))

		mockClient.AssertExpectations(t)
	})

	t.Run("High S Is Normalized", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer, priv := newTestKmsSigner(t, mockClient)

		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.AsymmetricSignResponse{
			Signature: kmsSignature(t, priv, data, true),
		}, nil)

		sig, err := signer.Sign(data)
		assert.NoError(t, err)
		assert.True(t, signer.PublicKey().VerifySignature(data, sig))
	})

	t.Run("Wrong Key", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer, _ := newTestKmsSigner(t, mockClient)
		other, err := dcrecSecp256k1.GeneratePrivateKey()
		assert.NoError(t, err)

		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.AsymmetricSignResponse{
			Signature: kmsSignature(t, other, data, false),
		}, nil)

		_, err = signer.Sign(data)
		assert.Error(t, err)
	})

	t.Run("Malformed Signature", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer, _ := newTestKmsSigner(t, mockClient)

		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.AsymmetricSignResponse{
			Signature: []byte("garbage"),
		}, nil)

		_, err := signer.Sign(data)
		assert.Error(t, err)
	})

	t.Run("Kms Error", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer, _ := newTestKmsSigner(t, mockClient)

		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return((*kmspb.AsymmetricSignResponse)(nil), errors.New("permission denied"))

		_, err := signer.Sign(data)
		assert.Error(t, err)
	})
}

func TestGcpKmsSigner_Destroy(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)

	signer := &GcpKmsSigner{
		client:  mockClient,
		keyName: "test-key",
	}

	mockClient.On("Close").Return(nil)

	signer.Destroy()
	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_WithGCPKMS(t *testing.T) {

	keyName := os.Getenv("WALLET_GCP_KMS_KEY_NAME")
	if keyName == "" {
		t.Skip("GCP KMS key name not set")
	}
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentials == "" {
		t.Skip("GCP credentials not set")
	}

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)
	defer signer.Destroy()

	data := []byte("example transaction body")

	sig, err := signer.Sign(data)
	assert.NoError(t, err)
	assert.True(t, signer.PublicKey().VerifySignature(data, sig))
}
