package models

import (
	"time"
)

const (
	SchemaVersion = "1.0"
)

// DonationIntent is what a donor asked for. Build one with
// NewDonationIntent; the pipeline never modifies it.
type DonationIntent struct {
	CampaignID       string    `json:"campaignId"`
	AmountMinorUnits int64     `json:"amount"`
	DonorAddress     string    `json:"donorAddress"`
	Message          string    `json:"message,omitempty"`
	RequestedAt      time.Time `json:"requestedAt"`
}

type DonationMetadataRecord struct {
	SchemaVersion    string    `json:"schemaVersion"`
	CampaignID       string    `json:"campaignId"`
	AmountMinorUnits int64     `json:"amount"`
	DonorAddress     string    `json:"donorAddress"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"timestamp"`
}

type AssetAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// AssetMetadataRecord describes the receipt token minted alongside a
// donation. AssetName is unique per PolicyID.
type AssetMetadataRecord struct {
	DonationMetadataRecord

	AssetName      string           `json:"assetName"`
	PolicyID       string           `json:"policyId"`
	MediaReference string           `json:"image"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	MediaType      string           `json:"mediaType"`
	Attributes     []AssetAttribute `json:"attributes"`
}

// MintRequest asks the pipeline to mint a receipt token. A zero ExpirySlot
// lets the policy cache pick (and rotate) the policy.
type MintRequest struct {
	CampaignName   string `json:"campaignName"`
	MediaReference string `json:"mediaReference,omitempty"`
	ExpirySlot     uint64 `json:"expirySlot,omitempty"`
}
