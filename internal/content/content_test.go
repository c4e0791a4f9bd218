package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiftytwo-server/internal/domain"
)

func TestLoad(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err, "embedded content must load cleanly")

	assert.NotEmpty(t, lib.Enemies)
	assert.NotEmpty(t, lib.Trinkets)
	assert.NotEmpty(t, lib.Affixes)
	assert.NotEmpty(t, lib.Events)
}

func TestLoadEnemyLookup(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	e, ok := lib.Enemy("rusty_croupier")
	require.True(t, ok, "rusty_croupier must exist")
	assert.Equal(t, "Rusty Croupier", e.Name)
	assert.Equal(t, domain.EncounterNormal, e.Tier)
	assert.Greater(t, e.MaxHP, 0)
	require.NotEmpty(t, e.Abilities)

	_, ok = lib.Enemy("no_such_enemy")
	assert.False(t, ok)
}

func TestLoadEnemyTiers(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	// Каждый тип столкновения должен быть заполняем из контента
	for _, tier := range []domain.EncounterType{
		domain.EncounterNormal, domain.EncounterElite, domain.EncounterBoss,
	} {
		assert.NotEmpty(t, lib.EnemiesByTier(tier), "no enemies for tier %v", tier)
	}
}

func TestLoadTrinkets(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	tpl, ok := lib.Trinket("aces_sleeve")
	require.True(t, ok, "aces_sleeve must exist")
	assert.NotEmpty(t, tpl.Name)
	assert.Greater(t, tpl.BaseSell, 0)

	keys := make(map[string]bool, len(lib.Trinkets))
	for _, tr := range lib.Trinkets {
		assert.False(t, keys[tr.Key], "duplicate trinket key %s", tr.Key)
		keys[tr.Key] = true
	}
}

func TestLoadAffixStats(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	for _, a := range lib.Affixes {
		assert.Greater(t, a.Weight, 0, "affix %s must carry a positive weight", a.ID)
		assert.LessOrEqual(t, a.MinValue, a.MaxValue, "affix %s range inverted", a.ID)
	}
}

func TestLoadEventShape(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	for _, ev := range lib.Events {
		require.Len(t, ev.Choices, 3, "event %s must have exactly three choices", ev.ID)
		// Третий выбор всегда заперт условием
		assert.NotEqual(t, domain.RequireNone, ev.Choices[2].Requirement.Type,
			"event %s: third choice must carry a requirement", ev.ID)
		assert.Greater(t, ev.Weight, 0, "event %s weight", ev.ID)
	}
}

func TestLoadHouseOdds(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	var houseOdds *domain.NarrativeEvent
	for _, ev := range lib.Events {
		if ev.ID == "house_odds" {
			houseOdds = ev
			break
		}
	}
	require.NotNil(t, houseOdds)

	second := houseOdds.Choices[1]
	assert.Equal(t, domain.StrategyRankAces, second.Outcome.Strategy)
	assert.Equal(t, -15, second.Outcome.SanityDelta)
}
