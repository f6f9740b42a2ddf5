package reconcile

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/store"
)

const (
	AnchorReconcilerName = "ANCHOR RECONCILER"
)

// AnchorReconcilerRunner re-anchors metadata the pipeline could not store
// within its anchor timeout.
type AnchorReconcilerRunner struct {
	store    store.Store
	receipts ReceiptRepository
	timeout  time.Duration
	pending  int
}

func (x *AnchorReconcilerRunner) Run() {
	x.SyncReceipts()
}

func (x *AnchorReconcilerRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Pending: x.pending,
	}
}

func (x *AnchorReconcilerRunner) HandleReceipt(receipt *models.DonationReceipt) bool {
	logger := log.WithField("donation_id", receipt.DonationID).WithField("content_id", receipt.MetadataContentID)
	logger.Debug("[ANCHOR RECONCILER] Handling receipt")

	// the bytes must still hash to the id committed in the transaction
	if err := codec.VerifyContentID(receipt.MetadataContentID, receipt.PendingMetadata); err != nil {
		logger.Error("[ANCHOR RECONCILER] Pending metadata does not match content id: ", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	contentID, err := x.store.Anchor(ctx, receipt.PendingMetadata)
	if err != nil {
		logger.Warn("[ANCHOR RECONCILER] Error anchoring metadata: ", err)
		return false
	}
	if contentID != receipt.MetadataContentID {
		logger.WithField("store_content_id", contentID).Error("[ANCHOR RECONCILER] Store returned a different content id")
		return false
	}

	dbCtx, dbCancel := dbContext()
	defer dbCancel()
	if err := x.receipts.MarkAnchored(dbCtx, receipt.DonationID, contentID); err != nil {
		logger.Error("[ANCHOR RECONCILER] Error updating receipt: ", err)
		return false
	}

	receipt.MetadataAnchored = true
	receipt.PendingMetadata = nil
	logger.Info("[ANCHOR RECONCILER] Metadata anchored")
	return true
}

func (x *AnchorReconcilerRunner) SyncReceipts() bool {
	log.Debug("[ANCHOR RECONCILER] Syncing unanchored receipts")

	receipts, err := x.receipts.FindUnanchored()
	if err != nil {
		log.Error("[ANCHOR RECONCILER] Error fetching receipts: ", err)
		return false
	}
	x.pending = len(receipts)
	log.Info("[ANCHOR RECONCILER] Found ", len(receipts), " unanchored receipts")

	var success = true
	for i := range receipts {
		receipt := receipts[i]
		success = withReceiptLock(AnchorReconcilerName, &receipt, x.HandleReceipt) && success
	}

	log.Debug("[ANCHOR RECONCILER] Finished syncing unanchored receipts")
	return success
}

func newAnchorReconcilerRunner(s store.Store, receipts ReceiptRepository) *AnchorReconcilerRunner {
	timeout := time.Duration(app.Config.Pipeline.AnchorTimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AnchorReconcilerRunner{
		store:    s,
		receipts: receipts,
		timeout:  timeout,
	}
}

func NewAnchorReconciler(wg *sync.WaitGroup, s store.Store, receipts ReceiptRepository) app.Service {
	if !app.Config.AnchorReconciler.Enabled {
		log.Debug("[ANCHOR RECONCILER] Disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[ANCHOR RECONCILER] Initializing anchor reconciler")

	x := newAnchorReconcilerRunner(s, receipts)

	log.Info("[ANCHOR RECONCILER] Initialized anchor reconciler")

	return app.NewRunnerService(AnchorReconcilerName, x, wg, time.Duration(app.Config.AnchorReconciler.IntervalMillis)*time.Millisecond)
}
