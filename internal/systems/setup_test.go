package systems

import (
	"math/rand"
	"os"
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
	"fiftytwo-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newTestContext собирает контекст с игроком, врагом на 500 HP,
// реестром тегов и детерминированным генератором.
func newTestContext(seed int64) Context {
	reg := tags.NewRegistry()
	tpl := &domain.EnemyTemplate{
		ID:    "test_dummy",
		Name:  "Test Dummy",
		MaxHP: 500,
		Tier:  domain.EncounterNormal,
	}
	player := domain.NewPlayer(domain.ClassDegenerate, reg)
	player.SetStats(domain.CombatStats{})
	return Context{
		Player:     player,
		Enemy:      tpl.Spawn(1.0),
		Deck:       domain.NewDeck(1, rand.New(rand.NewSource(seed))),
		DealerHand: domain.NewHand(reg),
		Tags:       reg,
		Rng:        rand.New(rand.NewSource(seed)),
		Log:        logger.System("test"),
	}
}
