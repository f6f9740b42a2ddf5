package txbuilder

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
	"github.com/openfund/donation-pipeline/policy"
)

var testPrefixes = common.AddressPrefixes(common.NetworkTestnet)

func testAddress(t *testing.T, b byte) string {
	addr, err := common.EnterpriseAddress(common.AddressPrefixTestnet, 0, bytes.Repeat([]byte{b}, common.KeyHashLength))
	assert.Nil(t, err)
	return addr
}

func testRequest(t *testing.T) Request {
	intent, err := models.NewDonationIntent("camp-1", 5000000, testAddress(t, 0xd0), "hi", time.Now(), testPrefixes)
	assert.Nil(t, err)
	data, err := codec.Encode(intent.MetadataRecord())
	assert.Nil(t, err)

	return Request{
		Intent:          intent,
		CampaignAddress: testAddress(t, 0xca),
		ChangeAddress:   testAddress(t, 0xee),
		ContentID:       codec.ContentID(data),
		Fee:             models.FeeParams{Fee: 200000, Denom: "lovelace"},
		CurrentSlot:     100,
	}
}

func testMint(t *testing.T, expiry uint64) *MintDescriptor {
	p, err := policy.DerivePolicy(bytes.Repeat([]byte{0xee}, common.KeyHashLength), expiry, 0)
	assert.Nil(t, err)
	return &MintDescriptor{Policy: p, AssetName: "CAMP1_TEST"}
}

func TestBuildDonation(t *testing.T) {
	builder := NewBuilder(testPrefixes)

	t.Run("Transfer Only", func(t *testing.T) {
		req := testRequest(t)

		draft, err := builder.BuildDonation(req)

		assert.Nil(t, err)
		assert.Len(t, draft.Outputs, 1)
		assert.Equal(t, models.OutputKindTransfer, draft.Outputs[0].Kind)
		assert.Equal(t, req.CampaignAddress, draft.Outputs[0].Address)
		assert.Equal(t, int64(5000000), draft.Outputs[0].Amount)
		assert.Equal(t, req.Fee, draft.Fee)
		assert.Equal(t, req.ChangeAddress, draft.ChangeAddress)
		assert.Equal(t, req.ContentID, draft.AuxiliaryData.DonationContentID)
		assert.Equal(t, "hi", draft.AuxiliaryData.Message)
		assert.Equal(t, uint64(0), draft.ValidUntilSlot)
		assert.Nil(t, draft.MintOutput())
	})

	t.Run("With Mint", func(t *testing.T) {
		req := testRequest(t)
		req.Mint = testMint(t, 1000)

		draft, err := builder.BuildDonation(req)

		assert.Nil(t, err)
		assert.Len(t, draft.Outputs, 2)
		assert.Equal(t, models.OutputKindTransfer, draft.Outputs[0].Kind)
		assert.Equal(t, models.OutputKindMint, draft.Outputs[1].Kind)
		assert.Equal(t, req.Intent.DonorAddress, draft.Outputs[1].Address)
		assert.Equal(t, "CAMP1_TEST", draft.MintOutput().AssetName)
		assert.Equal(t, int64(1), draft.MintOutput().Quantity)
		assert.Equal(t, uint64(1000), draft.ValidUntilSlot)
	})

	t.Run("Expired Policy", func(t *testing.T) {
		req := testRequest(t)
		req.Mint = testMint(t, 100)

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrExpiredPolicy)
		assert.ErrorIs(t, err, common.ErrPolicy)
	})

	t.Run("Tampered Policy", func(t *testing.T) {
		req := testRequest(t)
		req.Mint = testMint(t, 1000)
		req.Mint.Policy.ExpirySlot = 2000

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrMalformedPolicy)
	})

	t.Run("Invalid Asset Name", func(t *testing.T) {
		req := testRequest(t)
		req.Mint = testMint(t, 1000)
		req.Mint.AssetName = "not valid!"

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrInvalidAssetName)
	})

	t.Run("Metadata For Another Asset", func(t *testing.T) {
		req := testRequest(t)
		req.Mint = testMint(t, 1000)
		req.Mint.Metadata = &models.AssetMetadataRecord{AssetName: "OTHER", PolicyID: req.Mint.Policy.PolicyID}

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrMalformedPolicy)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		req := testRequest(t)
		req.Intent.AmountMinorUnits = 0

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Invalid Utf8 Message", func(t *testing.T) {
		req := testRequest(t)
		req.Intent.Message = "caf\xe9"

		err := builder.ValidateIntent(req.Intent, req.CampaignAddress)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})

	t.Run("Invalid Campaign Address", func(t *testing.T) {
		req := testRequest(t)
		req.CampaignAddress = "addr_test1notanaddress"

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
		assert.ErrorIs(t, err, common.ErrInvalidAddress)
	})

	t.Run("Mainnet Address On Testnet", func(t *testing.T) {
		req := testRequest(t)
		addr, err := common.EnterpriseAddress(common.AddressPrefixMainnet, 1, bytes.Repeat([]byte{0xca}, common.KeyHashLength))
		assert.Nil(t, err)
		req.CampaignAddress = addr

		_, err = builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrInvalidAddress)
	})

	t.Run("Missing Content Id", func(t *testing.T) {
		req := testRequest(t)
		req.ContentID = ""

		_, err := builder.BuildDonation(req)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})
}
