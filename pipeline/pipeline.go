// Package pipeline turns a donation intent into a signed, submitted ledger
// transaction and an anchored metadata record, linked by a receipt.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/ledger"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/policy"
	"github.com/openfund/donation-pipeline/store"
	"github.com/openfund/donation-pipeline/txbuilder"
	"github.com/openfund/donation-pipeline/wallet"
)

const tracerName = "github.com/openfund/donation-pipeline/pipeline"

type ReceiptStore interface {
	SaveReceipt(ctx context.Context, receipt *models.DonationReceipt) error
}

type AssetNamer interface {
	Next(p models.MintingPolicy, campaignID string, currentSlot uint64) (string, error)
}

type CampaignResolver interface {
	ResolveCampaign(campaignID string) (models.CampaignConfig, error)
}

type Config struct {
	Network         string
	AnchorTimeout   time.Duration
	SignTimeout     time.Duration
	SubmitTimeout   time.Duration
	SubmitRetries   int
	RetryBase       time.Duration
	ConfirmTimeout  time.Duration
	ConfirmInterval time.Duration
	Fee             models.FeeParams
	Display         policy.Display
}

// ConfigFromModel converts the process configuration into pipeline settings.
func ConfigFromModel(cfg models.Config) Config {
	ms := func(v int64) time.Duration { return time.Duration(v) * time.Millisecond }
	return Config{
		Network:         cfg.Ledger.Network,
		AnchorTimeout:   ms(cfg.Pipeline.AnchorTimeoutMillis),
		SignTimeout:     ms(cfg.Pipeline.SignTimeoutMillis),
		SubmitTimeout:   ms(cfg.Pipeline.SubmitTimeoutMillis),
		SubmitRetries:   cfg.Pipeline.SubmitRetries,
		RetryBase:       ms(cfg.Pipeline.RetryBaseMillis),
		ConfirmTimeout:  ms(cfg.Pipeline.ConfirmTimeoutMillis),
		ConfirmInterval: ms(cfg.Pipeline.ConfirmIntervalMillis),
		Fee: models.FeeParams{
			Fee:   cfg.Ledger.TxFee,
			Denom: cfg.Ledger.CoinDenom,
		},
		Display: policy.Display{
			Image:      cfg.Policy.DefaultImage,
			MediaType:  cfg.Policy.DefaultMediaType,
			CoinSymbol: cfg.Ledger.CoinSymbol,
		},
	}
}

func (c Config) withDefaults() Config {
	if c.AnchorTimeout <= 0 {
		c.AnchorTimeout = 10 * time.Second
	}
	if c.SignTimeout <= 0 {
		c.SignTimeout = 30 * time.Second
	}
	if c.SubmitTimeout <= 0 {
		c.SubmitTimeout = 15 * time.Second
	}
	if c.SubmitRetries < 0 {
		c.SubmitRetries = 0
	}
	if c.RetryBase <= 0 {
		c.RetryBase = 500 * time.Millisecond
	}
	if c.ConfirmTimeout <= 0 {
		c.ConfirmTimeout = time.Minute
	}
	if c.ConfirmInterval <= 0 {
		c.ConfirmInterval = 2 * time.Second
	}
	return c
}

type Dependencies struct {
	Store     store.Store
	Wallet    wallet.Gateway
	Ledger    ledger.Client
	Receipts  ReceiptStore
	Campaigns CampaignResolver
	Policies  *policy.Cache
	Namer     AssetNamer
}

// Pipeline is safe for concurrent use. Each Donate call is independent; the
// policy cache and asset namer are the only shared state.
type Pipeline struct {
	config    Config
	store     store.Store
	wallet    wallet.Gateway
	ledger    ledger.Client
	receipts  ReceiptStore
	campaigns CampaignResolver
	builder   *txbuilder.Builder
	policies  *policy.Cache
	namer     AssetNamer
	tracer    trace.Tracer
	newID     func() string
	now       func() time.Time
}

func NewPipeline(config Config, deps Dependencies) *Pipeline {
	config = config.withDefaults()
	policies := deps.Policies
	if policies == nil {
		policies = policy.NewCache(0)
	}
	var namer AssetNamer = policy.NewAssetNamer()
	if deps.Namer != nil {
		namer = deps.Namer
	}
	return &Pipeline{
		config:    config,
		store:     deps.Store,
		wallet:    deps.Wallet,
		ledger:    deps.Ledger,
		receipts:  deps.Receipts,
		campaigns: deps.Campaigns,
		builder:   txbuilder.NewBuilder(common.AddressPrefixes(config.Network)),
		policies:  policies,
		namer:     namer,
		tracer:    otel.Tracer(tracerName),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

type DonateRequest struct {
	Intent models.DonationIntent
	// Mint requests a receipt token for the donor. Nil skips minting.
	Mint *models.MintRequest
	// AwaitConfirmation polls the ledger after submission until the
	// transaction is observed or the confirm timeout passes.
	AwaitConfirmation bool
}

// Donate runs one donation to a terminal or submitted state and persists the
// receipt. The returned error is non-nil only if the receipt could not be
// saved; donation failures are reported on the receipt.
func (p *Pipeline) Donate(ctx context.Context, req DonateRequest) (models.DonationReceipt, error) {
	d := p.newDonation(req)

	ctx, span := p.tracer.Start(ctx, "pipeline.donate", trace.WithAttributes(d.attributes()...))
	defer span.End()

	d.run(ctx)

	d.logger.WithField("status", d.receipt.Status).
		WithField("failure_kind", d.receipt.FailureKind).
		Info("[PIPELINE] Donation finished")

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.config.SubmitTimeout)
	defer cancel()
	if err := p.receipts.SaveReceipt(saveCtx, &d.receipt); err != nil {
		d.logger.WithError(err).Error("[PIPELINE] Error saving receipt")
		span.RecordError(err)
		return d.receipt, err
	}
	return d.receipt, nil
}

func (p *Pipeline) newDonation(req DonateRequest) *donation {
	now := p.now().UTC()
	id := p.newID()
	return &donation{
		p:   p,
		req: req,
		receipt: models.DonationReceipt{
			DonationID:       id,
			CampaignID:       req.Intent.CampaignID,
			DonorAddress:     req.Intent.DonorAddress,
			AmountMinorUnits: req.Intent.AmountMinorUnits,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		logger: log.WithField("donation_id", id).WithField("campaign_id", req.Intent.CampaignID),
	}
}
