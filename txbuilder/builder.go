// Package txbuilder assembles unsigned donation transactions. It performs no
// I/O; everything it needs is passed in.
package txbuilder

import (
	"fmt"
	"unicode/utf8"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/policy"
)

// MintDescriptor describes the receipt token to mint alongside the transfer.
type MintDescriptor struct {
	Policy    models.MintingPolicy
	AssetName string
	Metadata  *models.AssetMetadataRecord
}

type Request struct {
	Intent          models.DonationIntent
	CampaignAddress string
	ChangeAddress   string
	ContentID       string
	Mint            *MintDescriptor
	Fee             models.FeeParams
	CurrentSlot     uint64
}

type Builder struct {
	prefixes []string
}

func NewBuilder(addressPrefixes []string) *Builder {
	return &Builder{prefixes: addressPrefixes}
}

// BuildDonation returns a draft whose first output pays the campaign and
// whose second output, when minting, delivers one receipt token to the donor.
func (b *Builder) BuildDonation(req Request) (models.TransactionDraft, error) {
	if err := b.validate(req); err != nil {
		return models.TransactionDraft{}, err
	}

	draft := models.TransactionDraft{
		Outputs: []models.TxOutput{
			{
				Kind:    models.OutputKindTransfer,
				Address: req.CampaignAddress,
				Amount:  req.Intent.AmountMinorUnits,
			},
		},
		Fee:           req.Fee,
		ChangeAddress: req.ChangeAddress,
		AuxiliaryData: models.AuxiliaryData{
			DonationContentID: req.ContentID,
			Message:           req.Intent.Message,
		},
	}

	if m := req.Mint; m != nil {
		draft.Outputs = append(draft.Outputs, models.TxOutput{
			Kind:    models.OutputKindMint,
			Address: req.Intent.DonorAddress,
			Mint: &models.MintOutput{
				Policy:    m.Policy,
				AssetName: m.AssetName,
				Quantity:  1,
			},
		})
		draft.ValidUntilSlot = m.Policy.ExpirySlot
		draft.AuxiliaryData.Asset = m.Metadata
	}

	return draft, nil
}

// ValidateIntent runs the checks that need nothing but the intent and the
// destination, so callers can reject bad input before any I/O.
func (b *Builder) ValidateIntent(intent models.DonationIntent, campaignAddress string) error {
	if intent.AmountMinorUnits <= 0 || intent.AmountMinorUnits > common.MaxAmountMinorUnits {
		return fmt.Errorf("%w: amount %d out of range", common.ErrInvalidIntent, intent.AmountMinorUnits)
	}
	if len(intent.Message) > common.MaxMessageLength {
		return fmt.Errorf("%w: message too long", common.ErrInvalidIntent)
	}
	if !utf8.ValidString(intent.Message) || !utf8.ValidString(intent.CampaignID) {
		return fmt.Errorf("%w: text fields must be valid utf-8", common.ErrInvalidIntent)
	}
	if intent.CampaignID == "" {
		return fmt.Errorf("%w: campaign id is required", common.ErrInvalidIntent)
	}
	if _, err := common.ParseAddress(intent.DonorAddress, b.prefixes); err != nil {
		return fmt.Errorf("%w: donor address: %w", common.ErrInvalidIntent, err)
	}
	if _, err := common.ParseAddress(campaignAddress, b.prefixes); err != nil {
		return fmt.Errorf("%w: campaign address: %w", common.ErrInvalidIntent, err)
	}
	return nil
}

func (b *Builder) validate(req Request) error {
	if err := b.ValidateIntent(req.Intent, req.CampaignAddress); err != nil {
		return err
	}
	if _, err := common.ParseAddress(req.ChangeAddress, b.prefixes); err != nil {
		return fmt.Errorf("%w: change address: %w", common.ErrInvalidIntent, err)
	}
	if _, err := codec.ParseContentID(req.ContentID); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidIntent, err)
	}

	m := req.Mint
	if m == nil {
		return nil
	}
	if err := policy.Verify(m.Policy); err != nil {
		return err
	}
	if m.Policy.ExpiredAt(req.CurrentSlot) {
		return fmt.Errorf("%w: policy %s expired at slot %d, current slot %d",
			common.ErrExpiredPolicy, m.Policy.PolicyID, m.Policy.ExpirySlot, req.CurrentSlot)
	}
	if !policy.ValidAssetName(m.AssetName) {
		return fmt.Errorf("%w: %q", common.ErrInvalidAssetName, m.AssetName)
	}
	if md := m.Metadata; md != nil && (md.AssetName != m.AssetName || md.PolicyID != m.Policy.PolicyID) {
		return fmt.Errorf("%w: asset metadata does not describe the minted asset", common.ErrMalformedPolicy)
	}
	return nil
}
