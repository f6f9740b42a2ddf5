// Package codec turns donation metadata into canonical bytes and content
// addresses, and back.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gowebpki/jcs"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	MaxCanonicalAmount = common.MaxAmountMinorUnits

	donationSchemaURL = "https://schemas.openfund.io/donation-1.0.json"
	assetSchemaURL    = "https://schemas.openfund.io/asset-1.0.json"
)

var (
	donationSchemas = map[string]*jsonschema.Schema{}
	assetSchemas    = map[string]*jsonschema.Schema{}
)

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(donationSchemaURL, strings.NewReader(donationSchemaV1)); err != nil {
		panic(err)
	}
	if err := compiler.AddResource(assetSchemaURL, strings.NewReader(assetSchemaV1)); err != nil {
		panic(err)
	}
	donationSchemas[models.SchemaVersion] = compiler.MustCompile(donationSchemaURL)
	assetSchemas[models.SchemaVersion] = compiler.MustCompile(assetSchemaURL)
}

type wireDonation struct {
	SchemaVersion string `json:"schemaVersion"`
	CampaignID    string `json:"campaignId"`
	Amount        int64  `json:"amount"`
	DonorAddress  string `json:"donorAddress"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}

type wireAsset struct {
	wireDonation

	AssetName   string                  `json:"assetName"`
	PolicyID    string                  `json:"policyId"`
	Image       string                  `json:"image"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	MediaType   string                  `json:"mediaType"`
	Attributes  []models.AssetAttribute `json:"attributes"`
}

// Encode returns the canonical (RFC 8785) JSON form of the record. Equal
// records always produce identical bytes, and anything Encode returns is
// accepted by Decode.
func Encode(record models.DonationMetadataRecord) ([]byte, error) {
	w, err := toWire(record)
	if err != nil {
		return nil, err
	}
	out, err := canonical(w)
	if err != nil {
		return nil, err
	}
	if err := validate(out, donationSchemas); err != nil {
		return nil, err
	}
	return out, nil
}

func EncodeAsset(record models.AssetMetadataRecord) ([]byte, error) {
	d, err := toWire(record.DonationMetadataRecord)
	if err != nil {
		return nil, err
	}
	attributes := record.Attributes
	if attributes == nil {
		attributes = []models.AssetAttribute{}
	}
	fields := []string{record.AssetName, record.PolicyID, record.MediaReference, record.Name, record.Description, record.MediaType}
	for _, a := range attributes {
		fields = append(fields, a.TraitType, a.Value)
	}
	if err := checkUTF8(fields...); err != nil {
		return nil, err
	}

	out, err := canonical(wireAsset{
		wireDonation: d,
		AssetName:    record.AssetName,
		PolicyID:     record.PolicyID,
		Image:        record.MediaReference,
		Name:         record.Name,
		Description:  record.Description,
		MediaType:    record.MediaType,
		Attributes:   attributes,
	})
	if err != nil {
		return nil, err
	}
	if err := validate(out, assetSchemas); err != nil {
		return nil, err
	}
	return out, nil
}

// Canonical encodes any JSON-marshalable value in canonical form.
func Canonical(v interface{}) ([]byte, error) {
	return canonical(v)
}

func Decode(data []byte) (models.DonationMetadataRecord, error) {
	if err := validate(data, donationSchemas); err != nil {
		return models.DonationMetadataRecord{}, err
	}

	var w wireDonation
	if err := json.Unmarshal(data, &w); err != nil {
		return models.DonationMetadataRecord{}, fmt.Errorf("%w: %s", common.ErrSchema, err.Error())
	}
	return fromWire(w)
}

func DecodeAsset(data []byte) (models.AssetMetadataRecord, error) {
	if err := validate(data, assetSchemas); err != nil {
		return models.AssetMetadataRecord{}, err
	}

	var w wireAsset
	if err := json.Unmarshal(data, &w); err != nil {
		return models.AssetMetadataRecord{}, fmt.Errorf("%w: %s", common.ErrSchema, err.Error())
	}
	d, err := fromWire(w.wireDonation)
	if err != nil {
		return models.AssetMetadataRecord{}, err
	}
	return models.AssetMetadataRecord{
		DonationMetadataRecord: d,
		AssetName:              w.AssetName,
		PolicyID:               w.PolicyID,
		MediaReference:         w.Image,
		Name:                   w.Name,
		Description:            w.Description,
		MediaType:              w.MediaType,
		Attributes:             w.Attributes,
	}, nil
}

// NormalizeTime is the precision and zone the codec preserves.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func toWire(record models.DonationMetadataRecord) (wireDonation, error) {
	if record.SchemaVersion == "" {
		record.SchemaVersion = models.SchemaVersion
	}
	if _, ok := donationSchemas[record.SchemaVersion]; !ok {
		return wireDonation{}, fmt.Errorf("%w: unknown schema version %q", common.ErrSchema, record.SchemaVersion)
	}
	if record.AmountMinorUnits <= 0 || record.AmountMinorUnits > MaxCanonicalAmount {
		return wireDonation{}, fmt.Errorf("%w: amount %d out of range", common.ErrInvalidIntent, record.AmountMinorUnits)
	}
	if record.CampaignID == "" || record.DonorAddress == "" {
		return wireDonation{}, fmt.Errorf("%w: campaign id and donor address are required", common.ErrInvalidIntent)
	}
	if record.CreatedAt.IsZero() {
		return wireDonation{}, fmt.Errorf("%w: timestamp is required", common.ErrInvalidIntent)
	}
	if err := checkUTF8(record.CampaignID, record.DonorAddress, record.Message); err != nil {
		return wireDonation{}, err
	}

	return wireDonation{
		SchemaVersion: record.SchemaVersion,
		CampaignID:    record.CampaignID,
		Amount:        record.AmountMinorUnits,
		DonorAddress:  record.DonorAddress,
		Message:       record.Message,
		Timestamp:     NormalizeTime(record.CreatedAt).Format(TimestampLayout),
	}, nil
}

func fromWire(w wireDonation) (models.DonationMetadataRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, w.Timestamp)
	if err != nil {
		return models.DonationMetadataRecord{}, fmt.Errorf("%w: timestamp: %s", common.ErrSchema, err.Error())
	}
	return models.DonationMetadataRecord{
		SchemaVersion:    w.SchemaVersion,
		CampaignID:       w.CampaignID,
		AmountMinorUnits: w.Amount,
		DonorAddress:     w.DonorAddress,
		Message:          w.Message,
		CreatedAt:        createdAt.UTC(),
	}, nil
}

// checkUTF8 rejects text json.Marshal would silently rewrite to U+FFFD.
func checkUTF8(fields ...string) error {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return fmt.Errorf("%w: %q is not valid utf-8", common.ErrInvalidIntent, f)
		}
	}
	return nil
}

func canonical(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}
	out, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize: %w", err)
	}
	return out, nil
}

func validate(data []byte, schemas map[string]*jsonschema.Schema) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: invalid json: %s", common.ErrSchema, err.Error())
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%w: expected a json object", common.ErrSchema)
	}

	version, ok := obj["schemaVersion"].(string)
	if !ok {
		return fmt.Errorf("%w: missing schemaVersion", common.ErrSchema)
	}

	schema, ok := schemas[version]
	if !ok {
		return fmt.Errorf("%w: unknown schema version %q", common.ErrSchema, version)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", common.ErrSchema, err.Error())
	}
	return nil
}
