package common

import (
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	cmtcrypto "github.com/cometbft/cometbft/crypto"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/types"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	gax "github.com/googleapis/gax-go/v2"
)

type GCPKeyManagementClient interface {
	Close() error
	GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
	AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error)
}

// GcpKmsSigner signs with a secp256k1 key version held in Cloud KMS. The
// private key never leaves KMS.
type GcpKmsSigner struct {
	client          GCPKeyManagementClient
	keyName         string
	pubKey          types.PubKey
	keyHash         []byte
	secp256k1PubKey *dcrecSecp256k1.PublicKey
}

var _ Signer = &GcpKmsSigner{}

var NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}

func NewGcpKmsSigner(keyName string) (Signer, error) {
	client, err := NewGCPKeyManagementClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create KMS client: %w", err)
	}

	keyVersionDetails, err := resolveKeyVersionDetails(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	if keyVersionDetails.Algorithm != kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256 {
		return nil, fmt.Errorf("key algorithm is not EC_SIGN_SECP256K1_SHA256")
	}

	pubKeyBytes, err := resolvePubKeyBytes(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve public key: %w", err)
	}

	secp256k1PubKey, err := dcrecSecp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	pubKey := &secp256k1.PubKey{Key: secp256k1PubKey.SerializeCompressed()}

	return &GcpKmsSigner{
		client:          client,
		keyName:         keyName,
		pubKey:          pubKey,
		keyHash:         KeyHash(pubKey.Bytes()),
		secp256k1PubKey: secp256k1PubKey,
	}, nil
}

func (s *GcpKmsSigner) Destroy() {
	s.client.Close()
}

func (s *GcpKmsSigner) Sign(data []byte) ([]byte, error) {
	var digest [32]byte
	copy(digest[:], cmtcrypto.Sha256(data))
	return signDigest(s.client, s.keyName, digest, s.secp256k1PubKey)
}

func (s *GcpKmsSigner) PublicKey() types.PubKey {
	return s.pubKey
}

func (s *GcpKmsSigner) KeyHash() []byte {
	return s.keyHash
}

func resolvePubKeyBytes(client GCPKeyManagementClient, keyName string) ([]byte, error) {
	publicKeyResp, err := client.GetPublicKey(context.Background(), &kmspb.GetPublicKeyRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	publicKeyPem := publicKeyResp.Pem

	block, _ := pem.Decode([]byte(publicKeyPem))
	if block == nil {
		return nil, fmt.Errorf("public key %q PEM empty: %.130q", keyName, publicKeyPem)
	}

	var info struct {
		AlgID pkix.AlgorithmIdentifier
		Key   asn1.BitString
	}
	_, err = asn1.Unmarshal(block.Bytes, &info)
	if err != nil {
		return nil, fmt.Errorf("public key %q PEM block %q: %w", keyName, block.Type, err)
	}

	if gotAlg := info.AlgID.Algorithm; !gotAlg.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("public key %q ASN.1 algorithm %s instead of %s", keyName, gotAlg, oidPublicKeyECDSA)
	}

	return info.Key.Bytes, nil
}

func signDigest(client GCPKeyManagementClient, keyName string, digest [32]byte, pubKey *dcrecSecp256k1.PublicKey) ([]byte, error) {
	req := &kmspb.AsymmetricSignRequest{
		Name: keyName,
		Digest: &kmspb.Digest{
			Digest: &kmspb.Digest_Sha256{
				Sha256: digest[:],
			},
		},
	}

	resp, err := client.AsymmetricSign(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	var params struct{ R, S *big.Int }
	_, err = asn1.Unmarshal(resp.Signature, &params)
	if err != nil {
		return nil, fmt.Errorf("asymmetric signature encoding: %w", err)
	}
	if params.R == nil || params.S == nil {
		return nil, fmt.Errorf("asymmetric signature missing r or s")
	}

	var r, s dcrecSecp256k1.ModNScalar
	if overflow := r.SetByteSlice(params.R.Bytes()); overflow {
		return nil, fmt.Errorf("signature r overflows curve order")
	}
	if overflow := s.SetByteSlice(params.S.Bytes()); overflow {
		return nil, fmt.Errorf("signature s overflows curve order")
	}

	// KMS does not guarantee low-S; the ledger only accepts the canonical form.
	if s.IsOverHalfOrder() {
		s.Negate()
	}

	if !btcecdsa.NewSignature(&r, &s).Verify(digest[:], pubKey) {
		return nil, fmt.Errorf("signature verification failed")
	}

	rBytes := r.Bytes()
	sBytes := s.Bytes()
	return append(rBytes[:], sBytes[:]...), nil
}

func resolveKeyVersionDetails(client GCPKeyManagementClient, keyName string) (*kmspb.CryptoKeyVersion, error) {
	req := &kmspb.GetCryptoKeyVersionRequest{
		Name: keyName,
	}

	resp, err := client.GetCryptoKeyVersion(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	return resp, nil
}
