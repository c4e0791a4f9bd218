package systems

import (
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

func TestAggregateHandTags(t *testing.T) {
	ctx := newTestContext(1)

	lucky1 := domain.NewCard(domain.SuitHearts, domain.RankTwo)
	lucky2 := domain.NewCard(domain.SuitSpades, domain.RankThree)
	lucky3 := domain.NewCard(domain.SuitClubs, domain.RankFour)
	brutal := domain.NewCard(domain.SuitDiamonds, domain.RankFive)

	ctx.Tags.Add(lucky1.CardID, tags.Lucky)
	ctx.Tags.Add(lucky2.CardID, tags.Lucky)
	ctx.Tags.Add(lucky3.CardID, tags.Lucky)
	ctx.Tags.Add(brutal.CardID, tags.Brutal)

	// Две счастливые у игрока, одна с жестокой у дилера:
	// теги складываются по картам обеих рук
	ctx.Player.Hand.Add(lucky1)
	ctx.Player.Hand.Add(lucky2)
	ctx.DealerHand.Add(lucky3)
	ctx.DealerHand.Add(brutal)

	ctx.Player.MarkStatsDirty()
	s := AggregateStats(ctx)

	if s.CritChance != 3*tags.LuckyCritBonus {
		t.Errorf("CritChance = %d, want %d", s.CritChance, 3*tags.LuckyCritBonus)
	}
	if s.DamagePercent != tags.BrutalDmgBonus {
		t.Errorf("DamagePercent = %d, want %d", s.DamagePercent, tags.BrutalDmgBonus)
	}
}

func TestAggregateSkipsCleanRecompute(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.SetStats(domain.CombatStats{FlatDamage: 99})

	// Грязный флаг снят: агрегатор возвращает кеш как есть
	s := AggregateStats(ctx)
	if s.FlatDamage != 99 {
		t.Errorf("clean stats must be returned from cache, got %+v", s)
	}

	ctx.Player.MarkStatsDirty()
	s = AggregateStats(ctx)
	if s.FlatDamage != 0 {
		t.Errorf("dirty recompute must rebuild from sources, got %+v", s)
	}
}

func TestAggregateTrinketAffixes(t *testing.T) {
	ctx := newTestContext(1)

	flat := &domain.AffixTemplate{ID: "iron", Stat: domain.StatFlatDamage}
	crit := &domain.AffixTemplate{ID: "sharp", Stat: domain.StatCritChance}
	inst := &domain.TrinketInstance{
		Template: &domain.TrinketTemplate{Key: "test_charm"},
		Affixes: []domain.Affix{
			{Template: flat, Value: 4},
			{Template: crit, Value: 15},
		},
	}
	if _, ok := ctx.Player.Equip(inst); !ok {
		t.Fatal("equip failed")
	}

	s := AggregateStats(ctx)
	if s.FlatDamage != 4 {
		t.Errorf("FlatDamage = %d, want 4", s.FlatDamage)
	}
	if s.CritChance != 15 {
		t.Errorf("CritChance = %d, want 15", s.CritChance)
	}
}

func TestAggregateBetGate(t *testing.T) {
	ctx := newTestContext(1)

	inst := &domain.TrinketInstance{
		Template: &domain.TrinketTemplate{
			Key:    "high_roller",
			BetGTE: 25,
			Primary: domain.TrinketPassive{
				Effect: domain.TrinketAddDamageFlat,
				Value:  10,
			},
		},
	}
	ctx.Player.Equip(inst)

	ctx.Player.Bet = 10
	s := AggregateStats(ctx)
	if s.FlatDamage != 0 {
		t.Errorf("trinket below bet gate must be inert, got %+v", s)
	}

	ctx.Player.Bet = 25
	ctx.Player.MarkStatsDirty()
	s = AggregateStats(ctx)
	if s.FlatDamage != 10 {
		t.Errorf("FlatDamage = %d, want 10 at the gate", s.FlatDamage)
	}
}

func TestAggregateStacks(t *testing.T) {
	ctx := newTestContext(1)

	inst := &domain.TrinketInstance{
		Template: &domain.TrinketTemplate{
			Key: "streak_counter",
			Stack: &domain.StackBehavior{
				Stat:     domain.StatDamagePercent,
				PerStack: 5,
				Max:      10,
			},
		},
		Stacks: 3,
	}
	ctx.Player.Equip(inst)

	s := AggregateStats(ctx)
	if s.DamagePercent != 15 {
		t.Errorf("DamagePercent = %d, want 15 (3 stacks x5)", s.DamagePercent)
	}
}
