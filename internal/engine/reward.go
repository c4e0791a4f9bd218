package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/systems"
)

// rewardChips - фишки за победу по тиру врага
var rewardChips = map[domain.EncounterType]int{
	domain.EncounterNormal: 25,
	domain.EncounterElite:  50,
	domain.EncounterBoss:   100,
}

// combatVictory закрывает бой: фишки начисляются сразу, тринкет ждет
// решения игрока (взять, заменить или продать).
func (g *Game) combatVictory() {
	g.setState(domain.StateCombatVictory)
	if g.Enemy.Template.DefeatLine != "" {
		g.say(g.Enemy.Template.DefeatLine, "SPEECH")
	}
	g.Bus.Publish(domain.EventCombatEnd, domain.EventPayload{Actor: g.Enemy.Template.ID})

	tier := g.Enemy.Template.Tier
	g.RewardChips = rewardChips[tier]
	if g.RewardChips > 0 {
		systems.GrantChips(g.sysCtx(), g.RewardChips, "victory")
		g.say(fmt.Sprintf("The pot is yours: %d chips.", g.RewardChips), "INFO")
	}

	g.Reward = systems.RollReward(g.rng, g.lib.Trinkets, g.lib.Affixes, tier, g.Run.Act, &g.Pity)
	if g.Reward != nil {
		g.say(fmt.Sprintf("The enemy drops %s (%s).", g.Reward.Template.Name, g.Reward.Rarity), "INFO")
		g.log.WithFields(logrus.Fields{
			"trinket": g.Reward.Template.Key,
			"rarity":  g.Reward.Rarity.String(),
			"affixes": len(g.Reward.Affixes),
		}).Info("Reward rolled")
	}

	// Победа над боссом последнего этажа заканчивает забег сразу
	if tier == domain.EncounterBoss && g.Run.Act >= lastAct {
		g.Reward = nil
		g.finishRun(true)
	}
}

// TakeReward экипирует выпавший тринкет. При заполненных слотах slot
// указывает, что продать на замену.
func (g *Game) TakeReward(slot int) (string, error) {
	if g.State != domain.StateCombatVictory {
		return "", fmt.Errorf("there is no reward to take")
	}
	if g.Reward == nil {
		return "", fmt.Errorf("the reward is already settled")
	}
	name := g.Reward.Template.Name
	if err := g.takePendingReward(slot); err != nil {
		return "", err
	}
	g.advanceRun()
	return fmt.Sprintf("%s equipped.", name), nil
}

func (g *Game) takePendingReward(slot int) error {
	if g.Reward == nil {
		return nil
	}
	ctx := g.sysCtx()
	if g.Player.FreeSlot() < 0 {
		if slot < 0 || slot >= domain.TrinketSlots {
			return fmt.Errorf("all trinket slots are full, pick one to sell")
		}
		old := systems.UnequipTrinket(ctx, slot)
		if old != nil {
			systems.GrantChips(ctx, old.SellValue, "sell")
			g.say(fmt.Sprintf("%s sold for %d chips.", old.Template.Name, old.SellValue), "INFO")
		}
	}
	if _, ok := systems.EquipTrinket(ctx, g.Reward); !ok {
		return fmt.Errorf("no free trinket slot")
	}
	g.Reward = nil
	return nil
}

// SellReward обменивает выпавший тринкет на фишки
func (g *Game) SellReward() (string, error) {
	if g.State != domain.StateCombatVictory {
		return "", fmt.Errorf("there is no reward to sell")
	}
	if g.Reward == nil {
		return "", fmt.Errorf("the reward is already settled")
	}
	value := g.Reward.SellValue
	name := g.Reward.Template.Name
	systems.GrantChips(g.sysCtx(), value, "sell")
	g.Reward = nil
	g.advanceRun()
	return fmt.Sprintf("%s sold for %d chips.", name, value), nil
}

// SellTrinket продает экипированный тринкет. Разрешено между раундами
// и на экране победы.
func (g *Game) SellTrinket(slot int) (string, error) {
	if g.State != domain.StateBetting && g.State != domain.StateCombatVictory {
		return "", fmt.Errorf("you cannot sell trinkets now")
	}
	inst := systems.UnequipTrinket(g.sysCtx(), slot)
	if inst == nil {
		return "", fmt.Errorf("slot %d is empty", slot)
	}
	systems.GrantChips(g.sysCtx(), inst.SellValue, "sell")
	return fmt.Sprintf("%s sold for %d chips.", inst.Template.Name, inst.SellValue), nil
}
