package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionReceipts = "receipts"
)

type ReceiptStatus string

const (
	StatusBuilt     ReceiptStatus = "built"
	StatusSigned    ReceiptStatus = "signed"
	StatusSubmitted ReceiptStatus = "submitted"
	StatusConfirmed ReceiptStatus = "confirmed"
	StatusFailed    ReceiptStatus = "failed"
)

type FailureKind string

const (
	FailureNone               FailureKind = ""
	FailureValidation         FailureKind = "validation_error"
	FailurePolicy             FailureKind = "policy_error"
	FailureUserRejected       FailureKind = "user_rejected"
	FailureSigningUnavailable FailureKind = "signing_unavailable"
	FailureSubmissionRejected FailureKind = "submission_rejected"
	FailureNetwork            FailureKind = "network_error"
	FailureCancelled          FailureKind = "cancelled"
	FailureInternal           FailureKind = "internal_error"
)

type AssetRef struct {
	PolicyID  string `json:"policyId" bson:"policy_id"`
	AssetName string `json:"assetName" bson:"asset_name"`
	Unit      string `json:"unit" bson:"unit"`
}

// DonationReceipt is the durable outcome of one donation. A donor always gets
// either a TxID or a FailureKind.
type DonationReceipt struct {
	Id                *primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	DonationID        string              `json:"donationId" bson:"donation_id"`
	CampaignID        string              `json:"campaignId" bson:"campaign_id"`
	DonorAddress      string              `json:"donorAddress" bson:"donor_address"`
	AmountMinorUnits  int64               `json:"amount" bson:"amount"`
	Status            ReceiptStatus       `json:"status" bson:"status"`
	FailureKind       FailureKind         `json:"failureKind,omitempty" bson:"failure_kind,omitempty"`
	FailureReason     string              `json:"failureReason,omitempty" bson:"failure_reason,omitempty"`
	TxID              string              `json:"txId,omitempty" bson:"tx_id,omitempty"`
	MetadataContentID string              `json:"metadataContentId,omitempty" bson:"metadata_content_id,omitempty"`
	MetadataAnchored  bool                `json:"metadataAnchored" bson:"metadata_anchored"`
	PendingMetadata   []byte              `json:"-" bson:"pending_metadata,omitempty"`
	Asset             *AssetRef           `json:"asset,omitempty" bson:"asset,omitempty"`
	SubmitAttempts    int                 `json:"submitAttempts" bson:"submit_attempts"`
	CreatedAt         time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updated_at"`
}

func (r DonationReceipt) Failed() bool {
	return r.Status == StatusFailed
}
