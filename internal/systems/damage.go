package systems

import "fiftytwo-server/internal/domain"

// BlackjackDamagePercent - бонус урона за натуральный блэкджек, в процентах
// от базового урона. Тринкет "Ace's Sleeve" удваивает.
const BlackjackDamagePercent = 150

// BlackjackPayoutNum и BlackjackPayoutDen - выплата 3:2 за блэкджек
const (
	BlackjackPayoutNum = 3
	BlackjackPayoutDen = 2
)

// DamageRoll - результат расчета урона раунда
type DamageRoll struct {
	Base  int  // Ставка с процентным бонусом, до крита и плоского урона
	Final int  // Итоговый урон
	Crit  bool // Крит сработал
}

// RollDamage считает урон выигранного раунда: ставка умножается на
// процентный бонус, критический бросок применяется мультипликативно,
// плоский урон добавляется в конце.
func RollDamage(ctx Context, bet int) DamageRoll {
	stats := ctx.Player.Stats()
	base := bet * (100 + stats.DamagePercent) / 100

	final := base
	crit := false
	if stats.CritChance > 0 && ctx.Rng != nil && ctx.Rng.Intn(100) < stats.CritChance {
		crit = true
		final = final * (100 + stats.CritBonus) / 100
	}
	final += stats.FlatDamage
	return DamageRoll{Base: base, Final: final, Crit: crit}
}

// RoundResolution - разбор исхода раунда для UI и статистики
type RoundResolution struct {
	Outcome    domain.RoundOutcome
	ChipsDelta int
	Base       int // Урон до крита и плоской прибавки
	Damage     int
	Crit       bool
	Refund     int
}

// ResolveRound применяет выплату и урон по исходу раунда.
// Ставка не списывается заранее: выигрыш зачисляет ее с бонусами,
// проигрыш и перебор отнимают, ничья не трогает фишки.
func ResolveRound(ctx Context, outcome domain.RoundOutcome) RoundResolution {
	stats := ctx.Player.Stats()
	bet := ctx.Player.Bet
	res := RoundResolution{Outcome: outcome}

	switch outcome {
	case domain.OutcomeWin:
		roll := RollDamage(ctx, bet)
		res.Base = roll.Base
		res.Damage = roll.Final
		res.Crit = roll.Crit
		res.ChipsDelta = greedCut(ctx.Player, bet*(100+stats.WinBonusPercent)/100+stats.FlatChipsOnWin)
		DamageEnemy(ctx, res.Damage, "turn_win")
		GrantChips(ctx, res.ChipsDelta, "payout")
		ctx.emit(domain.EventPlayerWin, domain.EventPayload{Amount: res.Damage})

	case domain.OutcomeBlackjack:
		roll := RollDamage(ctx, bet)
		res.Base = roll.Base
		res.Damage = roll.Final * blackjackDamagePercent(ctx.Player) / 100
		res.Crit = roll.Crit
		res.ChipsDelta = greedCut(ctx.Player, bet*BlackjackPayoutNum/BlackjackPayoutDen+
			bet*stats.WinBonusPercent/100+stats.FlatChipsOnWin)
		DamageEnemy(ctx, res.Damage, "turn_win")
		GrantChips(ctx, res.ChipsDelta, "payout")
		ctx.emit(domain.EventPlayerBlackjack, domain.EventPayload{Amount: res.Damage})

	case domain.OutcomePush:
		if stats.PushDamagePercent > 0 {
			roll := RollDamage(ctx, bet)
			res.Base = roll.Base
			res.Damage = roll.Base * stats.PushDamagePercent / 100
			DamageEnemy(ctx, res.Damage, "turn_push")
		}
		ctx.emit(domain.EventPlayerPush, domain.EventPayload{Amount: res.Damage})

	case domain.OutcomeLoss:
		res.ChipsDelta = -bet
		DrainChips(ctx, bet, "turn_loss")
		if stats.LossRefundPercent > 0 {
			res.Refund = bet * stats.LossRefundPercent / 100
			GrantChips(ctx, res.Refund, "loss_refund")
			res.ChipsDelta += res.Refund
		}
		ctx.emit(domain.EventPlayerLoss, domain.EventPayload{Amount: bet})
	}

	return res
}

// greedCut режет выплату пополам под статусом GREED. Урон не трогает:
// жадность бьет по карману, не по рукам.
func greedCut(p *domain.Player, payout int) int {
	if p.Statuses.Has(domain.StatusGreed) {
		return payout / 2
	}
	return payout
}

// blackjackDamagePercent учитывает удвоение бонуса блэкджека тринкетом
func blackjackDamagePercent(p *domain.Player) int {
	for _, t := range p.Trinkets {
		if t != nil && t.Template.Key == "aces_sleeve" {
			return BlackjackDamagePercent * 2
		}
	}
	return BlackjackDamagePercent
}
