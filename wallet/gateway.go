// Package wallet signs and submits donation transactions on behalf of a key
// holder.
package wallet

import (
	"context"

	"github.com/openfund/donation-pipeline/models"
)

// Gateway is the signing boundary. Sign fails with common.ErrUserRejected or
// common.ErrSigningUnavailable; Submit with common.ErrSubmissionRejected,
// common.ErrNetwork or common.ErrDuplicateTransaction (tx id still returned).
type Gateway interface {
	Sign(ctx context.Context, draft models.TransactionDraft) (models.SignedTransaction, error)
	Submit(ctx context.Context, signed models.SignedTransaction) (string, error)
	GetAddress(ctx context.Context) (string, error)
	GetHeldAssets(ctx context.Context) ([]models.HeldAsset, error)
	KeyHash() []byte
}
