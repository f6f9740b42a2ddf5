package policy

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

// Cache holds the active minting policy per signer. Reads vastly outnumber
// rotations.
type Cache struct {
	mu       sync.RWMutex
	lifetime uint64
	policies map[string]models.MintingPolicy
}

func NewCache(lifetime uint64) *Cache {
	if lifetime == 0 {
		lifetime = DefaultExpirySlot
	}
	return &Cache{
		lifetime: lifetime,
		policies: make(map[string]models.MintingPolicy),
	}
}

// Get returns the signer's policy, deriving a new one when none exists or the
// cached one has expired at currentSlot.
func (c *Cache) Get(signerKeyHash []byte, currentSlot uint64) (models.MintingPolicy, error) {
	key := common.HexFromBytes(signerKeyHash)

	c.mu.RLock()
	p, ok := c.policies[key]
	c.mu.RUnlock()
	if ok && !p.ExpiredAt(currentSlot) {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.policies[key]; ok && !p.ExpiredAt(currentSlot) {
		return p, nil
	}

	next, err := DerivePolicy(signerKeyHash, AlignedExpiry(currentSlot, c.lifetime), currentSlot)
	if err != nil {
		return models.MintingPolicy{}, fmt.Errorf("failed to derive policy: %w", err)
	}

	logger := log.WithField("signer", key).WithField("policy_id", next.PolicyID)
	if ok {
		logger.WithField("expired_at", p.ExpirySlot).Info("[POLICY] Rotated minting policy")
	} else {
		logger.WithField("expiry_slot", next.ExpirySlot).Debug("[POLICY] Derived minting policy")
	}

	c.policies[key] = next
	return next, nil
}

func (c *Cache) Lifetime() uint64 {
	return c.lifetime
}
