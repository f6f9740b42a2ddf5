package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/openfund/donation-pipeline/common"
)

func NewDonationIntent(
	campaignID string,
	amountMinorUnits int64,
	donorAddress string,
	message string,
	requestedAt time.Time,
	addressPrefixes []string,
) (DonationIntent, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return DonationIntent{}, fmt.Errorf("%w: campaign id is required", common.ErrInvalidIntent)
	}
	if amountMinorUnits <= 0 {
		return DonationIntent{}, fmt.Errorf("%w: amount must be positive, got %d", common.ErrInvalidIntent, amountMinorUnits)
	}
	if amountMinorUnits > common.MaxAmountMinorUnits {
		return DonationIntent{}, fmt.Errorf("%w: amount %d too large", common.ErrInvalidIntent, amountMinorUnits)
	}
	if _, err := common.ParseAddress(donorAddress, addressPrefixes); err != nil {
		return DonationIntent{}, fmt.Errorf("%w: donor address: %w", common.ErrInvalidIntent, err)
	}
	if len(message) > common.MaxMessageLength {
		return DonationIntent{}, fmt.Errorf("%w: message longer than %d bytes", common.ErrInvalidIntent, common.MaxMessageLength)
	}
	if !utf8.ValidString(message) {
		return DonationIntent{}, fmt.Errorf("%w: message is not valid utf-8", common.ErrInvalidIntent)
	}
	if requestedAt.IsZero() {
		requestedAt = time.Now()
	}

	return DonationIntent{
		CampaignID:       campaignID,
		AmountMinorUnits: amountMinorUnits,
		DonorAddress:     strings.TrimSpace(donorAddress),
		Message:          message,
		RequestedAt:      requestedAt.UTC().Truncate(time.Millisecond),
	}, nil
}

// MetadataRecord derives the off-chain record for the intent.
func (i DonationIntent) MetadataRecord() DonationMetadataRecord {
	return DonationMetadataRecord{
		SchemaVersion:    SchemaVersion,
		CampaignID:       i.CampaignID,
		AmountMinorUnits: i.AmountMinorUnits,
		DonorAddress:     i.DonorAddress,
		Message:          i.Message,
		CreatedAt:        i.RequestedAt,
	}
}
