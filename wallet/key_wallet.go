package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/ledger"
	"github.com/openfund/donation-pipeline/models"
)

// KeyWallet is a custodial gateway: it holds a signer and pays from the
// enterprise address of the signer's key.
type KeyWallet struct {
	signer  common.Signer
	client  ledger.Client
	address string
}

var _ Gateway = &KeyWallet{}

type envelope struct {
	Body      json.RawMessage  `json:"body"`
	Witnesses []models.Witness `json:"witnesses"`
}

func NewKeyWallet(signer common.Signer, client ledger.Client, network string) (*KeyWallet, error) {
	prefix := common.AddressPrefixes(network)[0]
	address, err := common.EnterpriseAddress(prefix, common.NetworkIDFor(network), signer.KeyHash())
	if err != nil {
		return nil, fmt.Errorf("failed to derive wallet address: %w", err)
	}

	log.WithField("address", address).Debug("[WALLET] Key wallet initialized")

	return &KeyWallet{
		signer:  signer,
		client:  client,
		address: address,
	}, nil
}

func (w *KeyWallet) Sign(ctx context.Context, draft models.TransactionDraft) (models.SignedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", common.ErrSigningUnavailable, err)
	}
	if draft.ChangeAddress != w.address {
		return models.SignedTransaction{}, fmt.Errorf("%w: change address %s is not ours", common.ErrUserRejected, draft.ChangeAddress)
	}
	if len(draft.Outputs) == 0 {
		return models.SignedTransaction{}, fmt.Errorf("%w: draft has no outputs", common.ErrUserRejected)
	}

	body, err := codec.Canonical(draft)
	if err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", common.ErrSigningUnavailable, err)
	}

	sig, err := w.signer.Sign(body)
	if err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", common.ErrSigningUnavailable, err)
	}

	witnesses := []models.Witness{{
		PublicKey: common.HexFromBytes(w.signer.PublicKey().Bytes()),
		Signature: common.HexFromBytes(sig),
	}}

	raw, err := codec.Canonical(envelope{Body: body, Witnesses: witnesses})
	if err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", common.ErrSigningUnavailable, err)
	}

	return models.SignedTransaction{
		Draft:     draft,
		Body:      body,
		Witnesses: witnesses,
		Raw:       raw,
		TxID:      ledger.TxID(raw),
	}, nil
}

func (w *KeyWallet) Submit(ctx context.Context, signed models.SignedTransaction) (string, error) {
	if len(signed.Raw) == 0 {
		return "", fmt.Errorf("%w: transaction is not signed", common.ErrSubmissionRejected)
	}
	return w.client.SubmitTx(ctx, signed.Raw)
}

func (w *KeyWallet) GetAddress(ctx context.Context) (string, error) {
	return w.address, nil
}

func (w *KeyWallet) GetHeldAssets(ctx context.Context) ([]models.HeldAsset, error) {
	return w.client.Assets(ctx, w.address)
}

func (w *KeyWallet) KeyHash() []byte {
	return w.signer.KeyHash()
}

// VerifyWitnesses checks every witness signature against the signed body.
func VerifyWitnesses(signed models.SignedTransaction) error {
	if len(signed.Witnesses) == 0 {
		return fmt.Errorf("%w: no witnesses", common.ErrSubmissionRejected)
	}
	for _, witness := range signed.Witnesses {
		pubKey, err := common.CosmosPublicKeyFromHex(witness.PublicKey)
		if err != nil {
			return fmt.Errorf("%w: %s", common.ErrSubmissionRejected, err.Error())
		}
		sig, err := common.BytesFromHex(witness.Signature)
		if err != nil {
			return fmt.Errorf("%w: %s", common.ErrSubmissionRejected, err.Error())
		}
		if !pubKey.VerifySignature(signed.Body, sig) {
			return fmt.Errorf("%w: invalid witness for %s", common.ErrSubmissionRejected, witness.PublicKey)
		}
	}
	return nil
}
