package config

import (
	"testing"

	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("COST_LIKE", "")
	t.Setenv("COST_SUPERLIKE", "")
	t.Setenv("COST_UNLOCK", "")
	t.Setenv("COST_DM", "")
	t.Setenv("DECK_PAGE_SIZE", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.DeckPageSize)
	assert.Equal(t, CostSchedule{Like: 5, Superlike: 20, Unlock: 30, DirectMessage: 50}, cfg.Costs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COST_LIKE", "7")
	t.Setenv("COST_DM", "not-a-number")
	t.Setenv("DECK_PAGE_SIZE", "25")

	cfg := Load()
	assert.Equal(t, 7, cfg.Costs.Like)
	assert.Equal(t, 50, cfg.Costs.DirectMessage, "invalid values fall back to the default")
	assert.Equal(t, 25, cfg.DeckPageSize)
}

func TestCostSchedule_CostOf(t *testing.T) {
	costs := CostSchedule{Like: 5, Superlike: 20, Unlock: 30, DirectMessage: 50}

	assert.Equal(t, 5, costs.CostOf(models.ActionLike))
	assert.Equal(t, 20, costs.CostOf(models.ActionSuperlike))
	assert.Equal(t, 30, costs.CostOf(models.ActionUnlock))
	assert.Equal(t, 50, costs.CostOf(models.ActionDM))
	assert.Zero(t, costs.CostOf(models.ActionPass))
}
