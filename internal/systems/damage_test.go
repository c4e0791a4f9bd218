package systems

import (
	"testing"

	"fiftytwo-server/internal/domain"
)

func TestResolveRoundWin(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10

	res := ResolveRound(ctx, domain.OutcomeWin)

	if res.Damage != 10 {
		t.Errorf("Damage = %d, want bet-sized 10", res.Damage)
	}
	if ctx.Enemy.HP != 490 {
		t.Errorf("enemy HP = %d, want 490", ctx.Enemy.HP)
	}
	// Ставка не списывалась заранее: выигрыш просто начисляется
	if ctx.Player.Chips != domain.StartingChips+10 {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips+10)
	}
}

func TestResolveRoundBlackjack(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10

	res := ResolveRound(ctx, domain.OutcomeBlackjack)

	// Урон 150% от базы, выплата 3:2
	if res.Damage != 15 {
		t.Errorf("Damage = %d, want 15", res.Damage)
	}
	if ctx.Enemy.HP != 485 {
		t.Errorf("enemy HP = %d, want 485", ctx.Enemy.HP)
	}
	if ctx.Player.Chips != domain.StartingChips+15 {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips+15)
	}
}

func TestResolveRoundPush(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10

	res := ResolveRound(ctx, domain.OutcomePush)
	if res.Damage != 0 || res.ChipsDelta != 0 {
		t.Errorf("plain push must not deal damage or move chips, got %+v", res)
	}
	if ctx.Player.Chips != domain.StartingChips {
		t.Errorf("chips = %d, want untouched %d", ctx.Player.Chips, domain.StartingChips)
	}

	// С пассивом ничья бьет долей от базового урона
	ctx.Player.SetStats(domain.CombatStats{PushDamagePercent: 50})
	res = ResolveRound(ctx, domain.OutcomePush)
	if res.Damage != 5 {
		t.Errorf("push damage = %d, want 5 (50%% of base)", res.Damage)
	}
	if ctx.Enemy.HP != 495 {
		t.Errorf("enemy HP = %d, want 495", ctx.Enemy.HP)
	}
}

func TestResolveRoundLoss(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10

	res := ResolveRound(ctx, domain.OutcomeLoss)
	if res.ChipsDelta != -10 {
		t.Errorf("ChipsDelta = %d, want -10", res.ChipsDelta)
	}
	if ctx.Player.Chips != domain.StartingChips-10 {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips-10)
	}
	if ctx.Enemy.HP != 500 {
		t.Errorf("enemy HP = %d, loss must not damage the enemy", ctx.Enemy.HP)
	}
}

func TestResolveRoundLossRefund(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10
	ctx.Player.SetStats(domain.CombatStats{LossRefundPercent: 30})

	res := ResolveRound(ctx, domain.OutcomeLoss)
	if res.Refund != 3 {
		t.Errorf("Refund = %d, want 3", res.Refund)
	}
	if ctx.Player.Chips != domain.StartingChips-7 {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips-7)
	}
}

func TestRollDamageOrder(t *testing.T) {
	// Порядок применения: процент, затем крит мультипликативно,
	// плоский урон в самом конце
	ctx := newTestContext(1)
	ctx.Player.SetStats(domain.CombatStats{
		DamagePercent: 50,
		CritChance:    100,
		CritBonus:     100,
		FlatDamage:    7,
	})

	roll := RollDamage(ctx, 20)
	if !roll.Crit {
		t.Fatal("100% crit chance must always crit")
	}
	// 20 * 1.5 = 30, крит x2 = 60, плюс 7 = 67
	if roll.Base != 30 {
		t.Errorf("Base = %d, want 30", roll.Base)
	}
	if roll.Final != 67 {
		t.Errorf("Final = %d, want 67", roll.Final)
	}
}

func TestRollDamageNoCrit(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.SetStats(domain.CombatStats{CritBonus: 100})

	roll := RollDamage(ctx, 20)
	if roll.Crit {
		t.Error("zero crit chance must never crit")
	}
	if roll.Final != 20 {
		t.Errorf("Final = %d, want plain 20", roll.Final)
	}
}

func TestWinBonusAndFlatChips(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10
	ctx.Player.SetStats(domain.CombatStats{WinBonusPercent: 20, FlatChipsOnWin: 5})

	res := ResolveRound(ctx, domain.OutcomeWin)
	// 10 * 1.2 + 5 = 17
	if res.ChipsDelta != 17 {
		t.Errorf("ChipsDelta = %d, want 17", res.ChipsDelta)
	}
}

func TestRakeTaxesFinalDamage(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 20
	ctx.Player.Statuses.Apply(domain.StatusRake, 50, 3, "test")

	ResolveRound(ctx, domain.OutcomeWin)

	if ctx.Enemy.HP != 480 {
		t.Errorf("enemy HP = %d, want 480", ctx.Enemy.HP)
	}
	// Комиссия 50% от итогового урона (10), выплата +20
	if ctx.Player.Chips != domain.StartingChips-10+20 {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips+10)
	}
}

func TestDamageEnemyFloorsAtZero(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Enemy.HP = 5

	DamageEnemy(ctx, 100, "test")
	if ctx.Enemy.HP != 0 {
		t.Errorf("enemy HP = %d, want floored 0", ctx.Enemy.HP)
	}
	if !ctx.Enemy.IsDefeated() {
		t.Error("enemy must be defeated at 0 HP")
	}
}

func TestDrainChipsDefeat(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Chips = 8

	got := DrainChips(ctx, 50, "test")
	if got != 8 {
		t.Errorf("DrainChips = %d, want clamped 8", got)
	}
	if !ctx.Player.IsDefeated() {
		t.Error("player with zero chips must be defeated")
	}
}

func TestResolveRoundGreedHalvesPayout(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Bet = 10
	ctx.Player.Statuses.Apply(domain.StatusGreed, 0, 3, "test")

	res := ResolveRound(ctx, domain.OutcomeWin)

	if res.ChipsDelta != 5 {
		t.Errorf("ChipsDelta = %d, want half the bet under GREED", res.ChipsDelta)
	}
	// Урон жадность не режет
	if res.Damage != 10 {
		t.Errorf("Damage = %d, want 10", res.Damage)
	}
}
