package app

import (
	"fmt"
	"strings"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

// CampaignRegistry resolves campaign ids to their configured destination. It
// is read-only after construction.
type CampaignRegistry struct {
	campaigns map[string]models.CampaignConfig
}

func NewCampaignRegistry(campaigns []models.CampaignConfig) *CampaignRegistry {
	r := &CampaignRegistry{
		campaigns: make(map[string]models.CampaignConfig, len(campaigns)),
	}
	for _, c := range campaigns {
		c.ID = strings.TrimSpace(c.ID)
		r.campaigns[c.ID] = c
	}
	return r
}

func (r *CampaignRegistry) ResolveCampaign(campaignID string) (models.CampaignConfig, error) {
	c, ok := r.campaigns[strings.TrimSpace(campaignID)]
	if !ok {
		return models.CampaignConfig{}, fmt.Errorf("%w: %q", common.ErrUnknownCampaign, campaignID)
	}
	return c, nil
}
