package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openfund/donation-pipeline/ledger"
	ledgermocks "github.com/openfund/donation-pipeline/ledger/mocks"
	"github.com/openfund/donation-pipeline/models"
	storemocks "github.com/openfund/donation-pipeline/store/mocks"
)

// memoryReceipts applies the same guarded updates as the mongo repository.
type memoryReceipts struct {
	mu       sync.Mutex
	receipts map[string]models.DonationReceipt
}

func newMemoryReceipts(receipts ...models.DonationReceipt) *memoryReceipts {
	m := &memoryReceipts{receipts: make(map[string]models.DonationReceipt)}
	for _, r := range receipts {
		m.receipts[r.DonationID] = r
	}
	return m
}

func (m *memoryReceipts) MarkConfirmed(_ context.Context, donationID string, from models.ReceiptStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receipts[donationID]
	if !ok || r.Status != from {
		return nil
	}
	r.Status = models.StatusConfirmed
	r.FailureKind = models.FailureNone
	r.FailureReason = ""
	m.receipts[donationID] = r
	return nil
}

func (m *memoryReceipts) MarkFailed(_ context.Context, donationID string, from models.ReceiptStatus, kind models.FailureKind, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receipts[donationID]
	if !ok || r.Status != from {
		return nil
	}
	r.Status = models.StatusFailed
	r.FailureKind = kind
	r.FailureReason = reason
	m.receipts[donationID] = r
	return nil
}

func (m *memoryReceipts) MarkAnchored(_ context.Context, donationID string, contentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receipts[donationID]
	if !ok || r.MetadataContentID != contentID || r.MetadataAnchored {
		return nil
	}
	r.MetadataAnchored = true
	r.PendingMetadata = nil
	m.receipts[donationID] = r
	return nil
}

func (m *memoryReceipts) FindAwaitingConfirmation(since time.Time) ([]models.DonationReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DonationReceipt
	for _, r := range m.receipts {
		if r.Status == models.StatusSubmitted {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReceipts) FindUnanchored() ([]models.DonationReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DonationReceipt
	for _, r := range m.receipts {
		if !r.MetadataAnchored && len(r.PendingMetadata) > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReceipts) get(donationID string) models.DonationReceipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.receipts[donationID]
}

func TestReconcilersKeepEachOthersWrites(t *testing.T) {
	for _, confirmFirst := range []bool{true, false} {
		client := ledgermocks.NewMockClient(t)
		s := storemocks.NewMockStore(t)
		receipt := unanchoredReceipt("d-1")
		receipt.TxID = "tx-1"
		repo := newMemoryReceipts(receipt)

		confirmer := &ConfirmationReconcilerRunner{
			client:   client,
			receipts: repo,
			window:   time.Hour,
			timeout:  time.Second,
			now:      time.Now,
		}
		anchorer := NewTestAnchorReconciler(t, s, nil)
		anchorer.receipts = repo

		client.EXPECT().GetTx(mock.Anything, "tx-1").Return(&ledger.TxResult{TxID: "tx-1", Height: 10}, nil).Once()
		s.EXPECT().Anchor(mock.Anything, receipt.PendingMetadata).Return(receipt.MetadataContentID, nil).Once()

		// both runners list the receipt before either one writes
		awaiting, err := repo.FindAwaitingConfirmation(time.Time{})
		assert.Nil(t, err)
		unanchored, err := repo.FindUnanchored()
		assert.Nil(t, err)
		assert.Len(t, awaiting, 1)
		assert.Len(t, unanchored, 1)

		if confirmFirst {
			assert.True(t, confirmer.HandleReceipt(&awaiting[0]))
			assert.True(t, anchorer.HandleReceipt(&unanchored[0]))
		} else {
			assert.True(t, anchorer.HandleReceipt(&unanchored[0]))
			assert.True(t, confirmer.HandleReceipt(&awaiting[0]))
		}

		stored := repo.get("d-1")
		assert.Equal(t, models.StatusConfirmed, stored.Status)
		assert.True(t, stored.MetadataAnchored)
		assert.Nil(t, stored.PendingMetadata)
	}
}
