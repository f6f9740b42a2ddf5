package policy

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	DefaultImage     = "ipfs://QmPS4PBvpGc2z6Dd6JdYqfHrKnURjtRGPTJWdhnAXNA8bQ"
	DefaultMediaType = "image/png"

	nativeCoinUnit = "lovelace"
)

// Display controls the wallet-facing fields of a minted receipt token.
type Display struct {
	CampaignName string
	Image        string
	MediaType    string
	CoinSymbol   string
}

// NewAssetMetadataRecord builds the label 721 metadata for a receipt token.
func NewAssetMetadataRecord(
	record models.DonationMetadataRecord,
	p models.MintingPolicy,
	assetName string,
	display Display,
) (models.AssetMetadataRecord, error) {
	if !ValidAssetName(assetName) {
		return models.AssetMetadataRecord{}, fmt.Errorf("%w: %q", common.ErrInvalidAssetName, assetName)
	}

	campaign := display.CampaignName
	if campaign == "" {
		campaign = record.CampaignID
	}
	image := display.Image
	if image == "" {
		image = DefaultImage
	}
	mediaType := display.MediaType
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	amount := common.FormatAmount(record.AmountMinorUnits)
	if display.CoinSymbol != "" {
		amount += " " + display.CoinSymbol
	}

	return models.AssetMetadataRecord{
		DonationMetadataRecord: record,
		AssetName:              assetName,
		PolicyID:               p.PolicyID,
		MediaReference:         image,
		Name:                   "Donation NFT - " + campaign,
		Description:            fmt.Sprintf("This NFT represents a donation of %s to the campaign %q.", amount, campaign),
		MediaType:              mediaType,
		Attributes: []models.AssetAttribute{
			{TraitType: "Campaign", Value: campaign},
			{TraitType: "Donation Amount", Value: amount},
			{TraitType: "Donation Date", Value: record.CreatedAt.UTC().Format("2006-01-02")},
		},
	}, nil
}

// Unit is the ledger identifier of an asset: policy id followed by the hex
// encoded asset name.
func Unit(policyID string, assetName string) string {
	return policyID + hex.EncodeToString([]byte(assetName))
}

// DisplayName turns a unit back into something readable. The native coin unit
// maps to symbol.
func DisplayName(unit string, symbol string) string {
	if unit == nativeCoinUnit {
		return symbol
	}
	if len(unit) <= 2*PolicyIDLength {
		return unit
	}
	return FormatAssetName(unit[2*PolicyIDLength:])
}

// FormatAssetName decodes a hex asset name, returning the input unchanged when
// it is not printable text.
func FormatAssetName(hexName string) string {
	raw, err := hex.DecodeString(hexName)
	if err != nil || len(raw) == 0 || !utf8.Valid(raw) {
		return hexName
	}
	return string(raw)
}

// HoldsAsset reports whether unit appears in assets with a non-zero quantity.
func HoldsAsset(assets []models.HeldAsset, unit string) bool {
	for _, a := range assets {
		if a.Unit == unit && a.Quantity != "" && a.Quantity != "0" {
			return true
		}
	}
	return false
}
