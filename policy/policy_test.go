package policy

import (
	"bytes"
	"io"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/common"
)

func init() {
	log.SetOutput(io.Discard)
}

var (
	signerA = bytes.Repeat([]byte{0x01}, common.KeyHashLength)
	signerB = bytes.Repeat([]byte{0x02}, common.KeyHashLength)
)

func TestDerivePolicy(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a, err := DerivePolicy(signerA, 1000, 10)
		assert.Nil(t, err)
		b, err := DerivePolicy(signerA, 1000, 999)
		assert.Nil(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a.PolicyID, 2*PolicyIDLength)
		assert.Equal(t, common.HexFromBytes(signerA), a.SignerKeyHash)
		assert.Equal(t, uint64(1000), a.ExpirySlot)
	})

	t.Run("Script Shape", func(t *testing.T) {
		p, err := DerivePolicy(signerA, 1000, 10)
		assert.Nil(t, err)

		assert.Equal(t, "all", p.Script.Type)
		assert.Equal(t, "before", p.Script.Scripts[0].Type)
		assert.Equal(t, uint64(1000), p.Script.Scripts[0].Slot)
		assert.Equal(t, "sig", p.Script.Scripts[1].Type)
		assert.Equal(t, p.SignerKeyHash, p.Script.Scripts[1].KeyHash)
	})

	t.Run("Different Inputs Different Ids", func(t *testing.T) {
		a, _ := DerivePolicy(signerA, 1000, 10)
		b, _ := DerivePolicy(signerB, 1000, 10)
		c, _ := DerivePolicy(signerA, 1001, 10)

		assert.NotEqual(t, a.PolicyID, b.PolicyID)
		assert.NotEqual(t, a.PolicyID, c.PolicyID)
	})

	t.Run("Expiry Not In Future", func(t *testing.T) {
		_, err := DerivePolicy(signerA, 10, 10)
		assert.ErrorIs(t, err, common.ErrInvalidExpiry)
		assert.ErrorIs(t, err, common.ErrPolicy)

		_, err = DerivePolicy(signerA, 5, 10)
		assert.ErrorIs(t, err, common.ErrInvalidExpiry)
	})

	t.Run("Bad Key Hash", func(t *testing.T) {
		_, err := DerivePolicy([]byte{1, 2, 3}, 1000, 10)
		assert.ErrorIs(t, err, common.ErrMalformedPolicy)
	})
}

func TestVerify(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, _ := DerivePolicy(signerA, 1000, 10)
		assert.Nil(t, Verify(p))
	})

	t.Run("Tampered Policy Id", func(t *testing.T) {
		p, _ := DerivePolicy(signerA, 1000, 10)
		other, _ := DerivePolicy(signerB, 1000, 10)
		p.PolicyID = other.PolicyID

		assert.ErrorIs(t, Verify(p), common.ErrMalformedPolicy)
	})

	t.Run("Tampered Expiry", func(t *testing.T) {
		p, _ := DerivePolicy(signerA, 1000, 10)
		p.ExpirySlot = 5000

		assert.ErrorIs(t, Verify(p), common.ErrMalformedPolicy)
	})
}

func TestAlignedExpiry(t *testing.T) {
	assert.Equal(t, uint64(100), AlignedExpiry(0, 100))
	assert.Equal(t, uint64(200), AlignedExpiry(1, 100))
	assert.Equal(t, uint64(200), AlignedExpiry(99, 100))
	assert.Equal(t, uint64(200), AlignedExpiry(100, 100))
	assert.Equal(t, uint64(300), AlignedExpiry(101, 100))
	assert.Equal(t, 2*DefaultExpirySlot, AlignedExpiry(5, 0))
}

func TestCache(t *testing.T) {
	t.Run("Reuses Live Policy", func(t *testing.T) {
		c := NewCache(100)

		a, err := c.Get(signerA, 10)
		assert.Nil(t, err)
		b, err := c.Get(signerA, 150)
		assert.Nil(t, err)

		assert.Equal(t, a, b)
		assert.Equal(t, uint64(200), a.ExpirySlot)
	})

	t.Run("Rotates Expired Policy", func(t *testing.T) {
		c := NewCache(100)

		a, _ := c.Get(signerA, 10)
		b, err := c.Get(signerA, 200)

		assert.Nil(t, err)
		assert.NotEqual(t, a.PolicyID, b.PolicyID)
		assert.Equal(t, uint64(300), b.ExpirySlot)
		assert.False(t, b.ExpiredAt(200))
	})

	t.Run("Per Signer", func(t *testing.T) {
		c := NewCache(100)

		a, _ := c.Get(signerA, 10)
		b, _ := c.Get(signerB, 10)

		assert.NotEqual(t, a.PolicyID, b.PolicyID)
	})

	t.Run("Concurrent Callers Agree", func(t *testing.T) {
		c := NewCache(100)
		ids := make([]string, 32)

		var wg sync.WaitGroup
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p, err := c.Get(signerA, uint64(10+i))
				if err == nil {
					ids[i] = p.PolicyID
				}
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
	})

	t.Run("Default Lifetime", func(t *testing.T) {
		assert.Equal(t, DefaultExpirySlot, NewCache(0).Lifetime())
	})
}
