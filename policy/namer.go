package policy

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	defaultNameTag = "DON"
	maxNameTag     = 5
)

var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func ValidAssetName(name string) bool {
	return len(name) > 0 && len(name) <= common.MaxAssetNameLength && assetNamePattern.MatchString(name)
}

// AssetNamer issues asset names of the form <TAG>_<ULID>, where TAG is taken
// from the campaign id. Names are unique per policy while the policy can still
// mint; once a policy expires its names are forgotten.
type AssetNamer struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	issued  map[string]*issuedNames
	now     func() time.Time
}

type issuedNames struct {
	expirySlot uint64
	names      map[string]struct{}
}

func NewAssetNamer() *AssetNamer {
	return &AssetNamer{
		entropy: ulid.Monotonic(rand.Reader, 0),
		issued:  make(map[string]*issuedNames),
		now:     time.Now,
	}
}

func (n *AssetNamer) Next(p models.MintingPolicy, campaignID string, currentSlot uint64) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.prune(currentSlot)

	id, err := ulid.New(ulid.Timestamp(n.now()), n.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate asset name: %w", err)
	}

	name := nameTag(campaignID) + "_" + id.String()
	if err := n.reserve(p, name); err != nil {
		return "", err
	}
	return name, nil
}

// Reserve records an externally chosen name, failing if it was already issued
// under the policy.
func (n *AssetNamer) Reserve(p models.MintingPolicy, name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reserve(p, name)
}

// Tracked is the number of policies with live names.
func (n *AssetNamer) Tracked() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.issued)
}

func (n *AssetNamer) prune(currentSlot uint64) {
	for policyID, issued := range n.issued {
		if issued.expirySlot <= currentSlot {
			delete(n.issued, policyID)
		}
	}
}

func (n *AssetNamer) reserve(p models.MintingPolicy, name string) error {
	if !ValidAssetName(name) {
		return fmt.Errorf("%w: %q", common.ErrInvalidAssetName, name)
	}
	issued, ok := n.issued[p.PolicyID]
	if !ok {
		issued = &issuedNames{expirySlot: p.ExpirySlot, names: make(map[string]struct{})}
		n.issued[p.PolicyID] = issued
	}
	if _, ok := issued.names[name]; ok {
		return fmt.Errorf("%w: %s under policy %s", common.ErrAssetNameCollision, name, p.PolicyID)
	}
	issued.names[name] = struct{}{}
	return nil
}

func nameTag(campaignID string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(campaignID) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == maxNameTag {
				break
			}
		}
	}
	if b.Len() == 0 {
		return defaultNameTag
	}
	return b.String()
}
