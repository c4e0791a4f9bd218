package systems

import (
	"math/rand"
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

func testAffixPool() []*domain.AffixTemplate {
	return []*domain.AffixTemplate{
		{ID: "heavy", Stat: domain.StatFlatDamage, MinValue: 1, MaxValue: 3, Weight: 10},
		{ID: "sharp", Stat: domain.StatCritChance, MinValue: 5, MaxValue: 10, Weight: 10},
		{ID: "greedy", Stat: domain.StatWinBonusPercent, MinValue: 5, MaxValue: 15, Weight: 10},
	}
}

func TestRollRarityPityNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pity := &PityCounters{Normal: PityLimit}

	// Счетчик на пределе: следующий дроп не может быть COMMON
	for i := 0; i < 20; i++ {
		pity.Normal = PityLimit
		r := RollRarity(rng, domain.EncounterNormal, pity)
		if r < domain.RarityUncommon {
			t.Fatalf("roll #%d: rarity %v with pity at limit, want UNCOMMON+", i, r)
		}
	}
}

func TestRollRarityPityCounting(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pity := &PityCounters{}

	// Пять обычных убийств без апгрейда доводят счетчик до предела,
	// шестое гарантирует UNCOMMON и сбрасывает его
	upgrades := 0
	for kill := 0; kill < 100 && upgrades < 3; kill++ {
		before := pity.Normal
		r := RollRarity(rng, domain.EncounterNormal, pity)
		if r >= domain.RarityUncommon {
			upgrades++
			if pity.Normal != 0 {
				t.Fatalf("pity = %d after an UNCOMMON+ drop, want reset", pity.Normal)
			}
		} else {
			if pity.Normal != before+1 {
				t.Fatalf("pity = %d after a COMMON drop, want %d", pity.Normal, before+1)
			}
			if pity.Normal > PityLimit {
				t.Fatalf("pity counter exceeded the limit: %d", pity.Normal)
			}
		}
	}
	if upgrades == 0 {
		t.Fatal("no upgraded drops in 100 kills")
	}
}

func TestRollRarityEliteTable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Валидация таблицы: элитка не роняет LEGENDARY без жалости,
	// босс никогда не роняет COMMON
	for i := 0; i < 200; i++ {
		if r := RollRarity(rng, domain.EncounterElite, nil); r == domain.RarityLegendary {
			t.Fatal("elite table has no natural LEGENDARY weight")
		}
		if r := RollRarity(rng, domain.EncounterBoss, nil); r == domain.RarityCommon {
			t.Fatal("boss table has no COMMON weight")
		}
	}
}

func TestRollAffixesTierAndUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := testAffixPool()

	for act := 1; act <= 3; act++ {
		affixes := RollAffixes(rng, pool, domain.RarityRare, act)
		if len(affixes) != act {
			t.Fatalf("act %d: %d affixes, want %d", act, len(affixes), act)
		}
		seen := make(map[domain.StatKey]bool)
		for _, a := range affixes {
			if seen[a.Template.Stat] {
				t.Fatalf("act %d: duplicate stat %v", act, a.Template.Stat)
			}
			seen[a.Template.Stat] = true
			if a.Value < a.Template.MinValue || a.Value > a.Template.MaxValue {
				t.Fatalf("affix value %d out of [%d,%d]", a.Value, a.Template.MinValue, a.Template.MaxValue)
			}
		}
	}
}

func TestInstantiateTrinket(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tpl := &domain.TrinketTemplate{Key: "rare_charm", Rarity: domain.RarityRare, BaseSell: 20}

	// Редкость не опускается ниже собственной редкости шаблона
	inst := InstantiateTrinket(rng, tpl, testAffixPool(), domain.RarityCommon, 2)
	if inst.Rarity != domain.RarityRare {
		t.Errorf("Rarity = %v, want floored RARE", inst.Rarity)
	}
	if inst.Tier != 2 {
		t.Errorf("Tier = %d, want 2", inst.Tier)
	}
	// Наценка за редкость: 20 * (100 + 50*2) / 100
	if inst.SellValue != 40 {
		t.Errorf("SellValue = %d, want 40", inst.SellValue)
	}
	if len(inst.Affixes) != 2 {
		t.Errorf("affix count = %d, want tier 2", len(inst.Affixes))
	}
}

func TestRollRewardPicksExactRarity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	templates := []*domain.TrinketTemplate{
		{Key: "common_a", Rarity: domain.RarityCommon, BaseSell: 10},
		{Key: "common_b", Rarity: domain.RarityCommon, BaseSell: 10},
		{Key: "uncommon_a", Rarity: domain.RarityUncommon, BaseSell: 15},
		{Key: "rare_a", Rarity: domain.RarityRare, BaseSell: 25},
	}

	for i := 0; i < 50; i++ {
		inst := RollReward(rng, templates, testAffixPool(), domain.EncounterNormal, 1, nil)
		if inst == nil {
			t.Fatal("RollReward returned nil with a non-empty template pool")
		}
		// Обычный стол роняет только COMMON и UNCOMMON; шаблон должен
		// совпадать с выпавшей редкостью
		if inst.Rarity > domain.RarityUncommon {
			t.Fatalf("rarity %v from the normal drop table", inst.Rarity)
		}
		if inst.Template.Rarity != inst.Rarity {
			t.Fatalf("template rarity %v != rolled %v", inst.Template.Rarity, inst.Rarity)
		}
	}
}

func TestRollRewardRarityFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	// В пуле только LEGENDARY: любая выпавшая редкость откатывается вверх
	templates := []*domain.TrinketTemplate{
		{Key: "crown", Rarity: domain.RarityLegendary, BaseSell: 100},
	}

	inst := RollReward(rng, templates, testAffixPool(), domain.EncounterNormal, 1, nil)
	if inst == nil {
		t.Fatal("RollReward must fall back to the only available template")
	}
	if inst.Template.Key != "crown" {
		t.Errorf("Template = %s, want crown", inst.Template.Key)
	}
}

func TestEquipUnequipTagBuff(t *testing.T) {
	ctx := newTestContext(1)
	tpl := &domain.TrinketTemplate{
		Key: "lucky_coin",
		TagBuff: &domain.TagBehavior{
			Tag:   tags.Lucky,
			Count: 3,
		},
	}
	inst := &domain.TrinketInstance{Template: tpl}

	slot, ok := EquipTrinket(ctx, inst)
	if !ok {
		t.Fatal("equip failed")
	}
	if got := ctx.Tags.Count(tpl.TagBuff.Tag); got != 3 {
		t.Errorf("tagged cards = %d, want 3", got)
	}

	UnequipTrinket(ctx, slot)
	if got := ctx.Tags.Count(tpl.TagBuff.Tag); got != 0 {
		t.Errorf("tagged cards after unequip = %d, want rolled back 0", got)
	}
}

func TestEquipBlockDebuff(t *testing.T) {
	ctx := newTestContext(1)
	inst := &domain.TrinketInstance{
		Template: &domain.TrinketTemplate{
			Key:     "ward",
			Primary: domain.TrinketPassive{Effect: domain.TrinketBlockDebuff, Value: 2},
		},
	}
	EquipTrinket(ctx, inst)
	if ctx.Player.DebuffBlocks != 2 {
		t.Fatalf("DebuffBlocks = %d, want 2", ctx.Player.DebuffBlocks)
	}

	// Первый дебафф съедает заряд и не доходит до игрока
	if ApplyStatus(ctx, domain.StatusTilt, 0, 2, "test") {
		t.Error("debuff must be blocked by the charge")
	}
	if ctx.Player.Statuses.Has(domain.StatusTilt) {
		t.Error("blocked status must not be applied")
	}
	if ctx.Player.DebuffBlocks != 1 {
		t.Errorf("DebuffBlocks = %d, want 1", ctx.Player.DebuffBlocks)
	}
}

func TestTrinketStacksResetToOne(t *testing.T) {
	ctx := newTestContext(1)
	inst := &domain.TrinketInstance{
		Template: &domain.TrinketTemplate{
			Key: "hot_streak",
			Stack: &domain.StackBehavior{
				Stat:     domain.StatDamagePercent,
				PerStack: 5,
				Max:      3,
				OnMax:    domain.StackOnMaxResetToOne,
			},
		},
	}
	ctx.Player.Equip(inst)

	for i := 0; i < 2; i++ {
		bumpStacks(ctx, inst, 1)
	}
	if inst.Stacks != 2 {
		t.Fatalf("Stacks = %d, want 2", inst.Stacks)
	}
	// Достижение максимума скидывает счетчик в единицу
	bumpStacks(ctx, inst, 1)
	if inst.Stacks != 1 {
		t.Errorf("Stacks = %d, want reset to 1 at max", inst.Stacks)
	}
}
