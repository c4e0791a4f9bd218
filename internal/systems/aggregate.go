package systems

import (
	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// addStat прибавляет значение к полю агрегата по ключу стата
func addStat(s *domain.CombatStats, k domain.StatKey, v int) {
	switch k {
	case domain.StatFlatDamage:
		s.FlatDamage += v
	case domain.StatDamagePercent:
		s.DamagePercent += v
	case domain.StatCritChance:
		s.CritChance += v
	case domain.StatCritBonus:
		s.CritBonus += v
	case domain.StatWinBonusPercent:
		s.WinBonusPercent += v
	case domain.StatLossRefundPercent:
		s.LossRefundPercent += v
	case domain.StatPushDamagePercent:
		s.PushDamagePercent += v
	case domain.StatFlatChipsOnWin:
		s.FlatChipsOnWin += v
	}
}

// AggregateStats пересчитывает боевые статы игрока с нуля, если стоит
// грязный флаг. Источники вклада, в порядке обхода: аффиксы надетых
// тринкетов, статические пассивы, стеки, теговые бонусы тринкетов,
// теги LUCKY и BRUTAL на картах в любой из двух рук.
func AggregateStats(ctx Context) domain.CombatStats {
	p := ctx.Player
	if !p.StatsDirty() {
		return p.Stats()
	}

	var s domain.CombatStats

	for _, t := range p.Trinkets {
		if t == nil {
			continue
		}
		if t.Template.BetGTE > 0 && p.Bet < t.Template.BetGTE {
			continue
		}
		for _, a := range t.Affixes {
			addStat(&s, a.Template.Stat, a.Value)
		}
		foldPassive(&s, t, t.Template.Primary)
		if t.Template.HasSecondary {
			foldPassive(&s, t, t.Template.Secondary)
		}
		if st := t.Template.Stack; st != nil && t.Stacks > 0 {
			addStat(&s, st.Stat, st.PerStack*t.Stacks)
		}
		if tb := t.Template.TagBuff; tb != nil && tb.PerTagDamage > 0 && ctx.Tags != nil {
			s.DamagePercent += tb.PerTagDamage * ctx.Tags.Count(tb.Tag)
		}
	}

	if ctx.Tags != nil {
		foldHandTags(&s, ctx.Tags, p.Hand)
		foldHandTags(&s, ctx.Tags, ctx.DealerHand)
	}

	p.SetStats(s)
	return s
}

// foldPassive забирает статические пассивы, которые не привязаны к событию
func foldPassive(s *domain.CombatStats, t *domain.TrinketInstance, pv domain.TrinketPassive) {
	if pv.Trigger != domain.EventNone {
		return
	}
	switch pv.Effect {
	case domain.TrinketAddDamageFlat:
		s.FlatDamage += pv.Value
	case domain.TrinketDamageMultiplier:
		s.DamagePercent += pv.Value
	case domain.TrinketPushDamagePercent:
		s.PushDamagePercent += pv.Value
	case domain.TrinketRefundChipsPercent:
		s.LossRefundPercent += pv.Value
	}
}

// foldHandTags добавляет вклад карт с тегами LUCKY и BRUTAL
func foldHandTags(s *domain.CombatStats, reg *tags.Registry, h *domain.Hand) {
	if h == nil {
		return
	}
	for _, c := range h.Cards {
		if reg.Has(c.CardID, tags.Lucky) {
			s.CritChance += tags.LuckyCritBonus
		}
		if reg.Has(c.CardID, tags.Brutal) {
			s.DamagePercent += tags.BrutalDmgBonus
		}
	}
}
