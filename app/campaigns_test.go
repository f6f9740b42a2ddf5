package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

func TestCampaignRegistry(t *testing.T) {
	registry := NewCampaignRegistry([]models.CampaignConfig{
		{ID: " clean-water ", Name: "Clean Water", Address: "addr_test1a"},
		{ID: "schools", Name: "Schools", Address: "addr_test1b"},
	})

	t.Run("Known", func(t *testing.T) {
		c, err := registry.ResolveCampaign("clean-water")

		assert.Nil(t, err)
		assert.Equal(t, "Clean Water", c.Name)
		assert.Equal(t, "clean-water", c.ID)
	})

	t.Run("Trims Id", func(t *testing.T) {
		c, err := registry.ResolveCampaign(" schools\n")

		assert.Nil(t, err)
		assert.Equal(t, "addr_test1b", c.Address)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := registry.ResolveCampaign("unknown")

		assert.True(t, errors.Is(err, common.ErrUnknownCampaign))
		assert.True(t, errors.Is(err, common.ErrValidation))
	})
}
