package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/policy"
	"github.com/openfund/donation-pipeline/txbuilder"
)

type donation struct {
	p       *Pipeline
	req     DonateRequest
	receipt models.DonationReceipt
	logger  *log.Entry

	campaign models.CampaignConfig
	metadata []byte
	mint     *txbuilder.MintDescriptor
	draft    models.TransactionDraft
	signed   models.SignedTransaction
}

func (d *donation) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("donation.id", d.receipt.DonationID),
		attribute.String("donation.campaign_id", d.req.Intent.CampaignID),
		attribute.Int64("donation.amount", d.req.Intent.AmountMinorUnits),
		attribute.Bool("donation.mint", d.req.Mint != nil),
	}
}

func (d *donation) transition(status models.ReceiptStatus) {
	d.logger.WithField("from", d.receipt.Status).WithField("to", status).Debug("[PIPELINE] Status transition")
	d.receipt.Status = status
	d.receipt.UpdatedAt = d.p.now().UTC()
}

func (d *donation) fail(kind models.FailureKind, err error) {
	d.receipt.FailureKind = kind
	if err != nil {
		d.receipt.FailureReason = err.Error()
	}
	d.logger.WithError(err).WithField("failure_kind", kind).Warn("[PIPELINE] Donation failed")
	d.transition(models.StatusFailed)
}

// checkCancelled fails the donation if ctx is done. The tx id, if any, stays
// on the receipt.
func (d *donation) checkCancelled(ctx context.Context) bool {
	if err := context.Cause(ctx); err != nil {
		d.fail(models.FailureCancelled, err)
		return true
	}
	return false
}

func (d *donation) run(ctx context.Context) {
	if d.checkCancelled(ctx) {
		return
	}
	if !d.prepare(ctx) {
		return
	}
	d.anchor(ctx)

	if d.checkCancelled(ctx) {
		return
	}
	if !d.sign(ctx) {
		return
	}
	d.transition(models.StatusSigned)

	// nothing has been broadcast yet, so the tx id means nothing to the ledger
	if ctx.Err() != nil {
		d.receipt.TxID = ""
		d.checkCancelled(ctx)
		return
	}
	if !d.submit(ctx) {
		return
	}
	d.transition(models.StatusSubmitted)

	if d.req.AwaitConfirmation {
		d.confirm(ctx)
	}
}

// prepare does everything that needs no signature: validation, encoding,
// policy selection and the draft.
func (d *donation) prepare(ctx context.Context) bool {
	ctx, span := d.p.tracer.Start(ctx, "pipeline.build")
	defer span.End()

	fail := func(err error) bool {
		recordSpanError(span, err)
		d.fail(Classify(err), err)
		return false
	}

	campaign, err := d.p.campaigns.ResolveCampaign(d.req.Intent.CampaignID)
	if err != nil {
		return fail(err)
	}
	d.campaign = campaign

	if err := d.p.builder.ValidateIntent(d.req.Intent, campaign.Address); err != nil {
		return fail(err)
	}

	metadata, err := codec.Encode(d.req.Intent.MetadataRecord())
	if err != nil {
		return fail(err)
	}
	d.metadata = metadata
	d.receipt.MetadataContentID = codec.ContentID(metadata)

	changeAddress, err := d.p.wallet.GetAddress(ctx)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", common.ErrSigningUnavailable, err))
	}

	var currentSlot uint64
	if d.req.Mint != nil {
		currentSlot, err = d.p.ledger.CurrentSlot(ctx)
		if err != nil {
			return fail(err)
		}
		if err := d.prepareMint(currentSlot); err != nil {
			return fail(err)
		}
	}

	draft, err := d.p.builder.BuildDonation(txbuilder.Request{
		Intent:          d.req.Intent,
		CampaignAddress: campaign.Address,
		ChangeAddress:   changeAddress,
		ContentID:       d.receipt.MetadataContentID,
		Mint:            d.mint,
		Fee:             d.p.config.Fee,
		CurrentSlot:     currentSlot,
	})
	if err != nil {
		return fail(err)
	}
	d.draft = draft
	d.transition(models.StatusBuilt)
	return true
}

func (d *donation) prepareMint(currentSlot uint64) error {
	keyHash := d.p.wallet.KeyHash()

	var (
		p   models.MintingPolicy
		err error
	)
	if d.req.Mint.ExpirySlot != 0 {
		p, err = policy.DerivePolicy(keyHash, d.req.Mint.ExpirySlot, currentSlot)
	} else {
		p, err = d.p.policies.Get(keyHash, currentSlot)
	}
	if err != nil {
		return err
	}

	assetName, err := d.p.namer.Next(p, d.req.Intent.CampaignID, currentSlot)
	if err != nil {
		return err
	}

	display := d.p.config.Display
	display.CampaignName = d.req.Mint.CampaignName
	if display.CampaignName == "" {
		display.CampaignName = d.campaign.Name
	}
	if d.req.Mint.MediaReference != "" {
		display.Image = d.req.Mint.MediaReference
	}

	record, err := policy.NewAssetMetadataRecord(d.req.Intent.MetadataRecord(), p, assetName, display)
	if err != nil {
		return err
	}
	d.mint = &txbuilder.MintDescriptor{
		Policy:    p,
		AssetName: assetName,
		Metadata:  &record,
	}
	d.receipt.Asset = &models.AssetRef{
		PolicyID:  p.PolicyID,
		AssetName: assetName,
		Unit:      policy.Unit(p.PolicyID, assetName),
	}
	return nil
}

// anchor stores the metadata. Failure is not fatal: the bytes stay on the
// receipt for the anchor reconciler.
func (d *donation) anchor(ctx context.Context) {
	ctx, span := d.p.tracer.Start(ctx, "pipeline.anchor")
	defer span.End()

	anchorCtx, cancel := context.WithTimeout(ctx, d.p.config.AnchorTimeout)
	defer cancel()

	contentID, err := d.p.store.Anchor(anchorCtx, d.metadata)
	if err == nil && contentID != d.receipt.MetadataContentID {
		err = fmt.Errorf("%w: store returned %s, expected %s", common.ErrInvalidContentID, contentID, d.receipt.MetadataContentID)
	}
	if err != nil {
		recordSpanError(span, err)
		d.logger.WithError(err).Warn("[PIPELINE] Metadata not anchored, deferring")
		d.receipt.MetadataAnchored = false
		d.receipt.PendingMetadata = d.metadata
		return
	}

	d.receipt.MetadataAnchored = true
	d.receipt.PendingMetadata = nil
	d.logger.WithField("content_id", contentID).Debug("[PIPELINE] Metadata anchored")
}

// sign requests exactly one signature. Signing prompts a human, so it is
// never retried.
func (d *donation) sign(ctx context.Context) bool {
	ctx, span := d.p.tracer.Start(ctx, "pipeline.sign")
	defer span.End()

	signCtx, cancel := context.WithTimeout(ctx, d.p.config.SignTimeout)
	defer cancel()

	signed, err := d.p.wallet.Sign(signCtx, d.draft)
	if err != nil {
		recordSpanError(span, err)
		if ctx.Err() != nil {
			d.fail(models.FailureCancelled, err)
			return false
		}
		kind := Classify(err)
		if errors.Is(err, context.DeadlineExceeded) {
			kind = models.FailureSigningUnavailable
		}
		switch kind {
		case models.FailureUserRejected, models.FailureSigningUnavailable, models.FailureValidation:
		default:
			kind = models.FailureSigningUnavailable
		}
		d.fail(kind, err)
		return false
	}

	d.signed = signed
	d.receipt.TxID = signed.TxID
	span.SetAttributes(attribute.String("donation.tx_id", signed.TxID))
	return true
}

// submit retries only transient network failures. Once a signed transaction
// has been offered to the ledger its outcome may be unknown, so the tx id is
// kept on every failure except an outright rejection.
func (d *donation) submit(ctx context.Context) bool {
	ctx, span := d.p.tracer.Start(ctx, "pipeline.submit")
	defer span.End()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.p.config.RetryBase
	b.MaxInterval = d.p.config.RetryBase * 16

	operation := func() (string, error) {
		d.receipt.SubmitAttempts++
		submitCtx, cancel := context.WithTimeout(ctx, d.p.config.SubmitTimeout)
		defer cancel()

		txID, err := d.p.wallet.Submit(submitCtx, d.signed)
		switch {
		case err == nil:
			return txID, nil
		case errors.Is(err, common.ErrDuplicateTransaction):
			d.logger.Debug("[PIPELINE] Transaction already known to ledger")
			return d.signed.TxID, nil
		case errors.Is(err, common.ErrNetwork), errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			return "", err
		default:
			return "", backoff.Permanent(err)
		}
	}

	txID, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(d.p.config.SubmitRetries)+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			d.logger.WithError(err).WithField("retry_in", next).Warn("[PIPELINE] Submit failed, retrying")
		}),
	)
	if err != nil {
		recordSpanError(span, err)
		switch {
		case errors.Is(err, common.ErrSubmissionRejected):
			d.receipt.TxID = ""
			d.fail(models.FailureSubmissionRejected, err)
		case ctx.Err() != nil:
			d.fail(models.FailureCancelled, err)
		case errors.Is(err, common.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
			d.fail(models.FailureNetwork, err)
		default:
			d.receipt.TxID = ""
			d.fail(models.FailureSubmissionRejected, err)
		}
		return false
	}

	if txID != "" && txID != d.signed.TxID {
		d.logger.WithField("ledger_tx_id", txID).Warn("[PIPELINE] Ledger reported a different tx id")
	}
	d.receipt.TxID = d.signed.TxID
	return true
}

// confirm polls the ledger until the transaction is included or the confirm
// timeout passes. A timeout leaves the receipt submitted.
func (d *donation) confirm(ctx context.Context) {
	ctx, span := d.p.tracer.Start(ctx, "pipeline.confirm")
	defer span.End()

	confirmCtx, cancel := context.WithTimeout(ctx, d.p.config.ConfirmTimeout)
	defer cancel()

	b := backoff.NewConstantBackOff(d.p.config.ConfirmInterval)
	result, err := backoff.Retry(confirmCtx, func() (*ledgerResult, error) {
		res, err := d.p.ledger.GetTx(confirmCtx, d.receipt.TxID)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, errNotIncluded
		}
		return &ledgerResult{code: res.Code, log: res.Log, height: res.Height}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(d.p.config.ConfirmTimeout))
	if err != nil {
		d.logger.WithError(err).Info("[PIPELINE] Transaction not confirmed yet, leaving submitted")
		return
	}

	if result.code != 0 {
		err := fmt.Errorf("%w: code %d: %s", common.ErrSubmissionRejected, result.code, result.log)
		recordSpanError(span, err)
		d.fail(models.FailureSubmissionRejected, err)
		return
	}

	d.logger.WithField("height", result.height).Info("[PIPELINE] Transaction confirmed")
	d.transition(models.StatusConfirmed)
}

var errNotIncluded = errors.New("transaction not included")

type ledgerResult struct {
	code   uint32
	log    string
	height int64
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
