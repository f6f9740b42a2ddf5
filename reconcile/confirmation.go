package reconcile

import (
	"context"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/app"
	"github.com/openfund/donation-pipeline/ledger"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/policy"
)

const (
	ConfirmationReconcilerName = "CONFIRMATION RECONCILER"

	// receipts older than this are no longer polled
	DefaultConfirmationWindow = 24 * time.Hour
)

// ConfirmationReconcilerRunner moves submitted receipts to confirmed or failed
// once the ledger reports their transaction.
type ConfirmationReconcilerRunner struct {
	client      ledger.Client
	receipts    ReceiptRepository
	window      time.Duration
	timeout     time.Duration
	currentSlot uint64
	pending     int
	now         func() time.Time
}

func (x *ConfirmationReconcilerRunner) Run() {
	x.UpdateCurrentSlot()
	x.SyncTxs()
}

func (x *ConfirmationReconcilerRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LedgerHeight: strconv.FormatUint(x.currentSlot, 10),
		Pending:      x.pending,
	}
}

func (x *ConfirmationReconcilerRunner) UpdateCurrentSlot() {
	log.Debug("[CONFIRMATION RECONCILER] Updating current slot")
	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	slot, err := x.client.CurrentSlot(ctx)
	if err != nil {
		log.Error("[CONFIRMATION RECONCILER] Error fetching current slot: ", err)
		return
	}
	x.currentSlot = slot
}

// HandleReceipt reports whether the receipt was processed without error; an
// unseen transaction is not an error.
func (x *ConfirmationReconcilerRunner) HandleReceipt(receipt *models.DonationReceipt) bool {
	logger := log.WithField("donation_id", receipt.DonationID).WithField("tx_id", receipt.TxID)
	logger.Debug("[CONFIRMATION RECONCILER] Handling receipt")

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	result, err := x.client.GetTx(ctx, receipt.TxID)
	if err != nil {
		logger.Error("[CONFIRMATION RECONCILER] Error fetching tx: ", err)
		return false
	}
	if result == nil {
		logger.Debug("[CONFIRMATION RECONCILER] Tx not yet included")
		return true
	}

	from := receipt.Status
	dbCtx, dbCancel := dbContext()
	defer dbCancel()

	if result.Succeeded() {
		logger.WithField("height", result.Height).Info("[CONFIRMATION RECONCILER] Tx confirmed")
		err = x.receipts.MarkConfirmed(dbCtx, receipt.DonationID, from)
		if err == nil {
			receipt.Status = models.StatusConfirmed
			receipt.FailureKind = models.FailureNone
			receipt.FailureReason = ""
			x.checkAssetDelivered(ctx, receipt)
		}
	} else {
		logger.WithField("code", result.Code).Warn("[CONFIRMATION RECONCILER] Tx failed on ledger")
		err = x.receipts.MarkFailed(dbCtx, receipt.DonationID, from, models.FailureSubmissionRejected, result.Log)
		if err == nil {
			receipt.Status = models.StatusFailed
			receipt.FailureKind = models.FailureSubmissionRejected
			receipt.FailureReason = result.Log
		}
	}
	if err != nil {
		logger.Error("[CONFIRMATION RECONCILER] Error updating receipt: ", err)
		return false
	}
	return true
}

// checkAssetDelivered only warns; the donation itself is confirmed either way.
func (x *ConfirmationReconcilerRunner) checkAssetDelivered(ctx context.Context, receipt *models.DonationReceipt) {
	if receipt.Asset == nil || receipt.DonorAddress == "" {
		return
	}
	logger := log.WithField("donation_id", receipt.DonationID).WithField("unit", receipt.Asset.Unit)

	assets, err := x.client.Assets(ctx, receipt.DonorAddress)
	if err != nil {
		logger.Warn("[CONFIRMATION RECONCILER] Error fetching donor assets: ", err)
		return
	}
	if !policy.HoldsAsset(assets, receipt.Asset.Unit) {
		logger.Warn("[CONFIRMATION RECONCILER] Receipt asset not found at donor address")
		return
	}
	logger.Debug("[CONFIRMATION RECONCILER] Receipt asset delivered")
}

func (x *ConfirmationReconcilerRunner) SyncTxs() bool {
	log.Debug("[CONFIRMATION RECONCILER] Syncing submitted txs")

	receipts, err := x.receipts.FindAwaitingConfirmation(x.now().Add(-x.window))
	if err != nil {
		log.Error("[CONFIRMATION RECONCILER] Error fetching receipts: ", err)
		return false
	}
	x.pending = len(receipts)
	log.Info("[CONFIRMATION RECONCILER] Found ", len(receipts), " receipts awaiting confirmation")

	var success = true
	for i := range receipts {
		receipt := receipts[i]
		if receipt.TxID == "" {
			continue
		}
		success = withReceiptLock(ConfirmationReconcilerName, &receipt, x.HandleReceipt) && success
	}

	log.Debug("[CONFIRMATION RECONCILER] Finished syncing submitted txs")
	return success
}

func newConfirmationReconcilerRunner(client ledger.Client, receipts ReceiptRepository) *ConfirmationReconcilerRunner {
	timeout := time.Duration(app.Config.Ledger.RPCTimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ConfirmationReconcilerRunner{
		client:   client,
		receipts: receipts,
		window:   DefaultConfirmationWindow,
		timeout:  timeout,
		now:      time.Now,
	}
}

func NewConfirmationReconciler(wg *sync.WaitGroup, client ledger.Client, receipts ReceiptRepository) app.Service {
	if !app.Config.ConfirmationReconciler.Enabled {
		log.Debug("[CONFIRMATION RECONCILER] Disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[CONFIRMATION RECONCILER] Initializing confirmation reconciler")

	x := newConfirmationReconcilerRunner(client, receipts)

	log.Info("[CONFIRMATION RECONCILER] Initialized confirmation reconciler")

	return app.NewRunnerService(ConfirmationReconcilerName, x, wg, time.Duration(app.Config.ConfirmationReconciler.IntervalMillis)*time.Millisecond)
}
