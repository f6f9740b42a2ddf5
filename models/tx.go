package models

type OutputKind string

const (
	OutputKindTransfer OutputKind = "transfer"
	OutputKindMint     OutputKind = "mint"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

const (
	MetadataLabelMessage = "674"
	MetadataLabelNFT     = "721"
)

// TxOutput is a positional transaction output. Mint outputs deliver the
// minted asset to Address and carry no native value.
type TxOutput struct {
	Kind    OutputKind  `json:"kind"`
	Address string      `json:"address"`
	Amount  int64       `json:"amount"`
	Mint    *MintOutput `json:"mint,omitempty"`
}

type MintOutput struct {
	Policy    MintingPolicy `json:"policy"`
	AssetName string        `json:"assetName"`
	Quantity  int64         `json:"quantity"`
}

// FeeParams come from the ledger boundary; the builder only reserves them.
type FeeParams struct {
	Fee   uint64 `json:"fee"`
	Denom string `json:"denom"`
}

type AuxiliaryData struct {
	DonationContentID string               `json:"donationContentId"`
	Message           string               `json:"message,omitempty"`
	Asset             *AssetMetadataRecord `json:"asset,omitempty"`
}

// TransactionDraft is an unsigned transaction. Outputs[0] is always the
// campaign transfer; the mint, if any, is the second position.
type TransactionDraft struct {
	Outputs        []TxOutput    `json:"outputs"`
	Fee            FeeParams     `json:"fee"`
	ChangeAddress  string        `json:"changeAddress"`
	ValidUntilSlot uint64        `json:"validUntilSlot,omitempty"`
	AuxiliaryData  AuxiliaryData `json:"auxiliaryData"`
}

func (d TransactionDraft) MintOutput() *MintOutput {
	for _, o := range d.Outputs {
		if o.Kind == OutputKindMint {
			return o.Mint
		}
	}
	return nil
}

type Witness struct {
	PublicKey string `json:"publicKey"`
	Signature string `json:"signature"`
}

// SignedTransaction is immutable once produced and safe to resubmit.
type SignedTransaction struct {
	Draft     TransactionDraft `json:"-"`
	Body      []byte           `json:"body"`
	Witnesses []Witness        `json:"witnesses"`
	Raw       []byte           `json:"-"`
	TxID      string           `json:"-"`
}

type HeldAsset struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}
