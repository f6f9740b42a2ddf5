package codec

const donationSchemaV1 = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["schemaVersion", "campaignId", "amount", "donorAddress", "timestamp"],
	"properties": {
		"schemaVersion": {"const": "1.0"},
		"campaignId": {"type": "string", "minLength": 1},
		"amount": {"type": "integer", "minimum": 1},
		"donorAddress": {"type": "string", "minLength": 1},
		"message": {"type": "string", "maxLength": 256},
		"timestamp": {"type": "string", "minLength": 1}
	}
}`

const assetSchemaV1 = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"allOf": [{"$ref": "https://schemas.openfund.io/donation-1.0.json"}],
	"required": ["assetName", "policyId", "image"],
	"properties": {
		"assetName": {"type": "string", "minLength": 1, "maxLength": 32, "pattern": "^[A-Za-z0-9_-]+$"},
		"policyId": {"type": "string", "pattern": "^[0-9a-f]{56}$"},
		"image": {"type": "string"},
		"name": {"type": "string"},
		"description": {"type": "string"},
		"mediaType": {"type": "string"},
		"attributes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["trait_type", "value"],
				"properties": {
					"trait_type": {"type": "string"},
					"value": {"type": "string"}
				}
			}
		}
	}
}`
