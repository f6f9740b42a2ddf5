package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/pipeline"
	"github.com/openfund/donation-pipeline/policy"
)

const (
	maxBodyBytes = 64 << 10

	errMissingFields = "Missing required fields: campaignId, amount, donorAddress"
)

type donationFields struct {
	CampaignID   string      `json:"campaignId"`
	Amount       json.Number `json:"amount"`
	CoinAmount   string      `json:"coinAmount,omitempty"`
	DonorAddress string      `json:"donorAddress"`
	Message      string      `json:"message"`
}

type donateBody struct {
	donationFields
	Mint              *models.MintRequest `json:"mint,omitempty"`
	AwaitConfirmation bool                `json:"awaitConfirmation"`
}

type metadataResponse struct {
	Success   bool                          `json:"success"`
	IPFSHash  string                        `json:"ipfsHash"`
	ContentID string                        `json:"contentId"`
	Anchored  bool                          `json:"anchored"`
	Metadata  models.DonationMetadataRecord `json:"metadata"`
}

type receiptResponse struct {
	models.DonationReceipt
	AmountFormatted  string `json:"amountFormatted"`
	ExplorerURL      string `json:"explorerUrl,omitempty"`
	AssetDisplayName string `json:"assetDisplayName,omitempty"`
}

type resolvedMetadata struct {
	ContentID string                        `json:"contentId"`
	Metadata  models.DonationMetadataRecord `json:"metadata"`
	Asset     *models.AssetMetadataRecord   `json:"asset,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("[API] Error writing response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// intent validates the request fields. A zero return with a message means
// the caller should answer 400 with that message.
func (s *Server) intent(f donationFields) (models.DonationIntent, string) {
	amount, msg := parseRequestAmount(f)
	if msg != "" {
		return models.DonationIntent{}, msg
	}
	if strings.TrimSpace(f.CampaignID) == "" || amount == 0 || strings.TrimSpace(f.DonorAddress) == "" {
		return models.DonationIntent{}, errMissingFields
	}

	intent, err := models.NewDonationIntent(f.CampaignID, amount, f.DonorAddress, f.Message, s.now(), s.prefixes)
	if err != nil {
		return models.DonationIntent{}, err.Error()
	}
	if _, err := s.campaigns.ResolveCampaign(intent.CampaignID); err != nil {
		return models.DonationIntent{}, err.Error()
	}
	return intent, ""
}

// parseRequestAmount reads amount in minor units, or coinAmount as a decimal
// coin amount when amount is absent. A missing amount parses as zero.
func parseRequestAmount(f donationFields) (int64, string) {
	amountText := strings.TrimSpace(f.Amount.String())
	coinText := strings.TrimSpace(f.CoinAmount)

	switch {
	case amountText != "":
		amount, err := strconv.ParseInt(amountText, 10, 64)
		if err != nil {
			return 0, "amount must be a whole number of minor units"
		}
		return amount, ""
	case coinText != "":
		amount, err := common.ParseAmount(coinText)
		if err != nil {
			return 0, err.Error()
		}
		return amount, ""
	}
	return 0, ""
}

func (s *Server) receiptResponse(receipt models.DonationReceipt) receiptResponse {
	resp := receiptResponse{
		DonationReceipt: receipt,
		AmountFormatted: strings.TrimSpace(common.FormatAmount(receipt.AmountMinorUnits) + " " + s.config.CoinSymbol),
		ExplorerURL:     common.ExplorerTxURL(s.config.ExplorerURL, receipt.TxID),
	}
	if receipt.Asset != nil {
		resp.AssetDisplayName = policy.DisplayName(receipt.Asset.Unit, s.config.CoinSymbol)
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"healthy": true})
}

func (s *Server) handleDonationMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body donationFields
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	intent, msg := s.intent(body)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	record := intent.MetadataRecord()
	logger := log.WithField("campaign_id", record.CampaignID)

	data, err := codec.Encode(record)
	if err != nil {
		logger.WithError(err).Error("[API] Error encoding donation metadata")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	contentID := codec.ContentID(data)

	ctx, cancel := context.WithTimeout(r.Context(), s.config.AnchorTimeout)
	defer cancel()
	anchoredID, err := s.store.Anchor(ctx, data)
	if err != nil {
		logger.WithError(err).Warn("[API] Error anchoring donation metadata")
		writeError(w, http.StatusServiceUnavailable, "Failed to upload metadata to content store")
		return
	}
	if anchoredID != contentID {
		logger.WithField("expected", contentID).
			WithField("got", anchoredID).
			Error("[API] Content store returned a different content id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.WithField("content_id", contentID).Info("[API] Anchored donation metadata")

	writeJSON(w, http.StatusOK, metadataResponse{
		Success:   true,
		IPFSHash:  contentID,
		ContentID: contentID,
		Anchored:  true,
		Metadata:  record,
	})
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	var body donateBody
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	intent, msg := s.intent(body.donationFields)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	receipt, err := s.donor.Donate(r.Context(), pipeline.DonateRequest{
		Intent:            intent,
		Mint:              body.Mint,
		AwaitConfirmation: body.AwaitConfirmation,
	})
	if err != nil {
		log.WithError(err).WithField("donation_id", receipt.DonationID).Error("[API] Error recording donation")
		writeError(w, http.StatusInternalServerError, "Failed to record donation receipt")
		return
	}

	writeJSON(w, http.StatusOK, s.receiptResponse(receipt))
}

func (s *Server) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	receipt, err := s.receipts.FindReceipt(id)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Donation not found")
		return
	}
	if err != nil {
		log.WithError(err).WithField("donation_id", id).Error("[API] Error finding receipt")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, s.receiptResponse(receipt))
}

func (s *Server) handleGetMetadata(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "cid")
	if _, err := codec.ParseContentID(contentID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.AnchorTimeout)
	defer cancel()
	data, err := s.store.Resolve(ctx, contentID)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Metadata not found")
		return
	}
	if err != nil {
		log.WithError(err).WithField("content_id", contentID).Warn("[API] Error resolving metadata")
		writeError(w, http.StatusServiceUnavailable, "Content store unavailable")
		return
	}

	record, err := codec.Decode(data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	resp := resolvedMetadata{
		ContentID: contentID,
		Metadata:  record,
	}
	// receipt token metadata is a superset of the donation record
	if asset, err := codec.DecodeAsset(data); err == nil {
		resp.Asset = &asset
	}

	writeJSON(w, http.StatusOK, resp)
}
