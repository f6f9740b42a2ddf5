package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

// ReceiptRepository persists donation receipts in the receipts collection,
// keyed by donation id.
type ReceiptRepository struct {
	db Database
}

func NewReceiptRepository(db Database) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// SaveReceipt upserts the receipt. Database calls carry their own timeout, so
// ctx is only checked for an early abort.
func (r *ReceiptRepository) SaveReceipt(ctx context.Context, receipt *models.DonationReceipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = now
	}
	receipt.UpdatedAt = now

	filter := bson.M{"donation_id": receipt.DonationID}
	update := bson.M{
		"$set": bson.M{
			"campaign_id":         receipt.CampaignID,
			"donor_address":       receipt.DonorAddress,
			"amount":              receipt.AmountMinorUnits,
			"status":              receipt.Status,
			"failure_kind":        receipt.FailureKind,
			"failure_reason":      receipt.FailureReason,
			"tx_id":               receipt.TxID,
			"metadata_content_id": receipt.MetadataContentID,
			"metadata_anchored":   receipt.MetadataAnchored,
			"pending_metadata":    receipt.PendingMetadata,
			"asset":               receipt.Asset,
			"submit_attempts":     receipt.SubmitAttempts,
			"updated_at":          receipt.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"donation_id": receipt.DonationID,
			"created_at":  receipt.CreatedAt,
		},
	}

	id, err := r.db.UpsertOne(models.CollectionReceipts, filter, update)
	if err != nil {
		log.WithField("donation_id", receipt.DonationID).Error("[RECEIPTS] Error saving receipt: ", err)
		return fmt.Errorf("failed to save receipt %s: %w", receipt.DonationID, err)
	}
	if !id.IsZero() {
		receipt.Id = &id
	}

	log.WithField("donation_id", receipt.DonationID).WithField("status", receipt.Status).Debug("[RECEIPTS] Saved receipt")
	return nil
}

// MarkConfirmed moves a receipt that is still in status from to confirmed,
// clearing any failure. Only the status fields are written, so a concurrent
// anchor update survives, and a receipt that has moved on is left alone.
func (r *ReceiptRepository) MarkConfirmed(ctx context.Context, donationID string, from models.ReceiptStatus) error {
	filter := bson.M{
		"donation_id": donationID,
		"status":      from,
	}
	update := bson.M{
		"$set": bson.M{
			"status":         models.StatusConfirmed,
			"failure_kind":   models.FailureNone,
			"failure_reason": "",
			"updated_at":     time.Now().UTC(),
		},
	}
	return r.updateReceipt(ctx, donationID, filter, update)
}

func (r *ReceiptRepository) MarkFailed(ctx context.Context, donationID string, from models.ReceiptStatus, kind models.FailureKind, reason string) error {
	filter := bson.M{
		"donation_id": donationID,
		"status":      from,
	}
	update := bson.M{
		"$set": bson.M{
			"status":         models.StatusFailed,
			"failure_kind":   kind,
			"failure_reason": reason,
			"updated_at":     time.Now().UTC(),
		},
	}
	return r.updateReceipt(ctx, donationID, filter, update)
}

// MarkAnchored records that the receipt's metadata is now in the content
// store and drops the pending bytes. Status fields are not touched.
func (r *ReceiptRepository) MarkAnchored(ctx context.Context, donationID string, contentID string) error {
	filter := bson.M{
		"donation_id":         donationID,
		"metadata_content_id": contentID,
		"metadata_anchored":   false,
	}
	update := bson.M{
		"$set": bson.M{
			"metadata_anchored": true,
			"updated_at":        time.Now().UTC(),
		},
		"$unset": bson.M{
			"pending_metadata": "",
		},
	}
	return r.updateReceipt(ctx, donationID, filter, update)
}

func (r *ReceiptRepository) updateReceipt(ctx context.Context, donationID string, filter bson.M, update bson.M) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.db.UpdateOne(models.CollectionReceipts, filter, update); err != nil {
		log.WithField("donation_id", donationID).Error("[RECEIPTS] Error updating receipt: ", err)
		return fmt.Errorf("failed to update receipt %s: %w", donationID, err)
	}
	log.WithField("donation_id", donationID).Debug("[RECEIPTS] Updated receipt")
	return nil
}

// FindReceipt returns common.ErrNotFound when no receipt has the id.
func (r *ReceiptRepository) FindReceipt(donationID string) (models.DonationReceipt, error) {
	var receipt models.DonationReceipt
	err := r.db.FindOne(models.CollectionReceipts, bson.M{"donation_id": donationID}, &receipt)
	if IsNotFound(err) {
		return receipt, fmt.Errorf("%w: receipt %s", common.ErrNotFound, donationID)
	}
	return receipt, err
}

// FindAwaitingConfirmation returns submitted receipts plus failed ones whose
// submission outcome is unknown, created after since.
func (r *ReceiptRepository) FindAwaitingConfirmation(since time.Time) ([]models.DonationReceipt, error) {
	filter := bson.M{
		"created_at": bson.M{"$gte": since},
		"$or": []bson.M{
			{"status": models.StatusSubmitted},
			{
				"status":       models.StatusFailed,
				"failure_kind": bson.M{"$in": []models.FailureKind{models.FailureNetwork, models.FailureCancelled}},
				"tx_id":        bson.M{"$nin": []interface{}{"", nil}},
			},
		},
	}
	receipts := []models.DonationReceipt{}
	err := r.db.FindMany(models.CollectionReceipts, filter, &receipts)
	return receipts, err
}

func (r *ReceiptRepository) FindUnanchored() ([]models.DonationReceipt, error) {
	filter := bson.M{
		"metadata_anchored": false,
		"pending_metadata":  bson.M{"$exists": true, "$ne": nil},
	}
	receipts := []models.DonationReceipt{}
	err := r.db.FindMany(models.CollectionReceipts, filter, &receipts)
	return receipts, err
}
