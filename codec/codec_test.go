package codec

import (
	"io"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

func init() {
	log.SetOutput(io.Discard)
}

const testPolicyID = "0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5"

func testRecord() models.DonationMetadataRecord {
	return models.DonationMetadataRecord{
		SchemaVersion:    models.SchemaVersion,
		CampaignID:       "camp-1",
		AmountMinorUnits: 1500000,
		DonorAddress:     "addr_test1donor",
		Message:          "Keep going",
		CreatedAt:        time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC),
	}
}

func TestEncode(t *testing.T) {
	t.Run("Canonical Form", func(t *testing.T) {
		data, err := Encode(testRecord())

		assert.Nil(t, err)
		assert.Equal(t,
			`{"amount":1500000,"campaignId":"camp-1","donorAddress":"addr_test1donor","message":"Keep going","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`,
			string(data),
		)
	})

	t.Run("Same Instant In Another Zone", func(t *testing.T) {
		record := testRecord()
		zone := time.FixedZone("UTC+2", 2*60*60)
		record.CreatedAt = record.CreatedAt.In(zone).Add(456 * time.Microsecond)

		a, err := Encode(testRecord())
		assert.Nil(t, err)
		b, err := Encode(record)
		assert.Nil(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("Defaults Schema Version", func(t *testing.T) {
		record := testRecord()
		record.SchemaVersion = ""

		data, err := Encode(record)

		assert.Nil(t, err)
		assert.Contains(t, string(data), `"schemaVersion":"1.0"`)
	})

	t.Run("Unknown Schema Version", func(t *testing.T) {
		record := testRecord()
		record.SchemaVersion = "9.9"

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		record := testRecord()
		record.AmountMinorUnits = 0

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Amount Beyond Exact Range", func(t *testing.T) {
		record := testRecord()
		record.AmountMinorUnits = MaxCanonicalAmount + 1

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})

	t.Run("Largest Amount", func(t *testing.T) {
		record := testRecord()
		record.AmountMinorUnits = MaxCanonicalAmount

		data, err := Encode(record)

		assert.Nil(t, err)
		assert.Contains(t, string(data), `"amount":9007199254740991`)
	})

	t.Run("Message Over Schema Limit", func(t *testing.T) {
		record := testRecord()
		record.Message = strings.Repeat("m", 300)

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Invalid Utf8 Message", func(t *testing.T) {
		record := testRecord()
		record.Message = "caf\xe9"

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})

	t.Run("Multibyte Message Round Trips", func(t *testing.T) {
		record := testRecord()
		record.Message = "café ☕ 寄付"
		data, err := Encode(record)
		assert.Nil(t, err)

		decoded, err := Decode(data)

		assert.Nil(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("Missing Timestamp", func(t *testing.T) {
		record := testRecord()
		record.CreatedAt = time.Time{}

		_, err := Encode(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		record := testRecord()
		data, err := Encode(record)
		assert.Nil(t, err)

		decoded, err := Decode(data)

		assert.Nil(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("Field Order Does Not Matter", func(t *testing.T) {
		data := `{"timestamp":"2024-03-01T12:30:45.123Z","schemaVersion":"1.0","message":"Keep going","donorAddress":"addr_test1donor","campaignId":"camp-1","amount":1500000}`

		decoded, err := Decode([]byte(data))

		assert.Nil(t, err)
		assert.Equal(t, testRecord(), decoded)
	})

	t.Run("Unknown Schema Version", func(t *testing.T) {
		data := `{"amount":1,"campaignId":"c","donorAddress":"d","schemaVersion":"2.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
		assert.Contains(t, err.Error(), "unknown schema version")
	})

	t.Run("Missing Schema Version", func(t *testing.T) {
		data := `{"amount":1,"campaignId":"c","donorAddress":"d","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		data := `{"amount":1,"campaignId":"c","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Amount As String", func(t *testing.T) {
		data := `{"amount":"1","campaignId":"c","donorAddress":"d","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Fractional Amount", func(t *testing.T) {
		data := `{"amount":1.5,"campaignId":"c","donorAddress":"d","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Message Too Long", func(t *testing.T) {
		data := `{"amount":1,"campaignId":"c","donorAddress":"d","message":"` + strings.Repeat("x", 257) + `","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Bad Timestamp", func(t *testing.T) {
		data := `{"amount":1,"campaignId":"c","donorAddress":"d","schemaVersion":"1.0","timestamp":"yesterday"}`

		_, err := Decode([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Not Json", func(t *testing.T) {
		_, err := Decode([]byte("not json"))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Not An Object", func(t *testing.T) {
		_, err := Decode([]byte(`[1,2]`))

		assert.ErrorIs(t, err, common.ErrSchema)
	})
}

func testAssetRecord() models.AssetMetadataRecord {
	return models.AssetMetadataRecord{
		DonationMetadataRecord: testRecord(),
		AssetName:              "CAMP1_01HQ3W5N8KJ2R4T6V8X0Y2Z4A6",
		PolicyID:               testPolicyID,
		MediaReference:         "ipfs://QmPS4PBvpGc2z6Dd6JdYqfHrKnURjtRGPTJWdhnAXNA8bQ",
		Name:                   "Donation NFT - Clean Water",
		Description:            "Proof of donation",
		MediaType:              "image/png",
		Attributes: []models.AssetAttribute{
			{TraitType: "Campaign", Value: "Clean Water"},
		},
	}
}

func TestAssetCodec(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		record := testAssetRecord()
		data, err := EncodeAsset(record)
		assert.Nil(t, err)

		decoded, err := DecodeAsset(data)

		assert.Nil(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("Donation Fields Are Checked", func(t *testing.T) {
		record := testAssetRecord()
		record.AmountMinorUnits = -1

		_, err := EncodeAsset(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})

	t.Run("Invalid Policy Id", func(t *testing.T) {
		record := testAssetRecord()
		record.PolicyID = "xyz"

		_, err := EncodeAsset(record)

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Asset Name Too Long", func(t *testing.T) {
		record := testAssetRecord()
		record.AssetName = strings.Repeat("A", 33)

		_, err := EncodeAsset(record)

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Invalid Utf8 Attribute", func(t *testing.T) {
		record := testAssetRecord()
		record.Attributes = []models.AssetAttribute{{TraitType: "Campaign", Value: "caf\xe9"}}

		_, err := EncodeAsset(record)

		assert.ErrorIs(t, err, common.ErrInvalidIntent)
	})

	t.Run("Missing Donation Field", func(t *testing.T) {
		data := `{"assetName":"A","campaignId":"c","donorAddress":"d","image":"ipfs://x","policyId":"` + testPolicyID + `","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := DecodeAsset([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Invalid Asset Name", func(t *testing.T) {
		record := testAssetRecord()
		record.AssetName = "has space"

		_, err := EncodeAsset(record)

		assert.ErrorIs(t, err, common.ErrSchema)
	})

	t.Run("Schema Rejected Asset Does Not Decode Either", func(t *testing.T) {
		data := `{"amount":1,"assetName":"has space","campaignId":"c","donorAddress":"d","image":"ipfs://x","policyId":"` + testPolicyID + `","schemaVersion":"1.0","timestamp":"2024-03-01T12:30:45.123Z"}`

		_, err := DecodeAsset([]byte(data))

		assert.ErrorIs(t, err, common.ErrSchema)
	})
}

func TestContentID(t *testing.T) {
	t.Run("Empty Block", func(t *testing.T) {
		assert.Equal(t, "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku", ContentID(nil))
	})

	t.Run("Deterministic", func(t *testing.T) {
		data, _ := Encode(testRecord())

		assert.Equal(t, ContentID(data), ContentID(append([]byte{}, data...)))
	})

	t.Run("Different Content", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.AmountMinorUnits++
		da, _ := Encode(a)
		db, _ := Encode(b)

		assert.NotEqual(t, ContentID(da), ContentID(db))
	})

	t.Run("Parse And Verify", func(t *testing.T) {
		data, _ := Encode(testRecord())
		id := ContentID(data)

		digest, err := ParseContentID(id)
		assert.Nil(t, err)
		assert.Len(t, digest, 32)

		assert.Nil(t, VerifyContentID(id, data))
		assert.ErrorIs(t, VerifyContentID(id, []byte("other")), common.ErrInvalidContentID)
	})

	t.Run("Invalid Ids", func(t *testing.T) {
		for _, id := range []string{
			"",
			"b",
			"QmPS4PBvpGc2z6Dd6JdYqfHrKnURjtRGPTJWdhnAXNA8bQ",
			"b!!!!",
			"bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		} {
			_, err := ParseContentID(id)
			assert.ErrorIs(t, err, common.ErrInvalidContentID, id)
		}
	})
}
