// Package reconcile finishes donations the pipeline left in an intermediate
// state: transactions not yet observed on the ledger and metadata that could
// not be anchored in time.
package reconcile

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/models"
)

// ReceiptRepository updates receipts field by field, guarded by the state
// the runner read, so the two reconcilers never undo each other's writes.
type ReceiptRepository interface {
	MarkConfirmed(ctx context.Context, donationID string, from models.ReceiptStatus) error
	MarkFailed(ctx context.Context, donationID string, from models.ReceiptStatus, kind models.FailureKind, reason string) error
	MarkAnchored(ctx context.Context, donationID string, contentID string) error
	FindAwaitingConfirmation(since time.Time) ([]models.DonationReceipt, error)
	FindUnanchored() ([]models.DonationReceipt, error)
}

// withReceiptLock runs handle while holding the receipt's exclusive lock so
// that several nodes never reconcile the same receipt at once.
func withReceiptLock(tag string, receipt *models.DonationReceipt, handle func(*models.DonationReceipt) bool) bool {
	resourceId := fmt.Sprintf("%s/%s", models.CollectionReceipts, receipt.DonationID)
	lockId, err := app.DB.XLock(resourceId)
	if err != nil {
		log.Errorf("[%s] Error locking receipt %s: %s", tag, receipt.DonationID, err)
		return false
	}
	log.Debugf("[%s] Locked receipt %s", tag, receipt.DonationID)

	success := handle(receipt)

	if err = app.DB.Unlock(lockId); err != nil {
		log.Errorf("[%s] Error unlocking receipt %s: %s", tag, receipt.DonationID, err)
		success = false
	} else {
		log.Debugf("[%s] Unlocked receipt %s", tag, receipt.DonationID)
	}
	return success
}

func dbContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(app.Config.MongoDB.TimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
