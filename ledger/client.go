// Package ledger is the query and submission boundary to the ledger node.
package ledger

import (
	"context"

	"github.com/openfund/donation-pipeline/models"
)

// Client is everything the pipeline needs from a ledger node. GetTx returns
// nil without error while a transaction is not yet included.
type Client interface {
	CurrentSlot(ctx context.Context) (uint64, error)
	SubmitTx(ctx context.Context, raw []byte) (string, error)
	GetTx(ctx context.Context, txID string) (*TxResult, error)
	Assets(ctx context.Context, address string) ([]models.HeldAsset, error)
}

type TxResult struct {
	TxID   string
	Height int64
	Code   uint32
	Log    string
}

// Succeeded reports whether the transaction was included and executed
// without error.
func (r *TxResult) Succeeded() bool {
	return r != nil && r.Code == 0
}
