package systems

import (
	"math/rand"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// PityLimit - после пяти убийств без апгрейда редкость форсируется
const PityLimit = 5

// dropTable - веса редкостей по типу врага: COMMON/UNCOMMON/RARE/LEGENDARY
var dropTable = map[domain.EncounterType][4]int{
	domain.EncounterNormal: {80, 20, 0, 0},
	domain.EncounterElite:  {30, 50, 20, 0},
	domain.EncounterBoss:   {0, 30, 50, 20},
}

// PityCounters - два независимых счетчика жалости.
// Normal растет на убийствах обычных врагов без выпадения UNCOMMON+,
// Elite - на элитках без LEGENDARY.
type PityCounters struct {
	Normal int
	Elite  int
}

// RollRarity бросает редкость по таблице типа врага и применяет жалость.
// Счетчики сбрасываются на апгрейде и на естественном выпадении
// соответствующей редкости.
func RollRarity(rng *rand.Rand, enc domain.EncounterType, pity *PityCounters) domain.TrinketRarity {
	weights, ok := dropTable[enc]
	if !ok {
		weights = dropTable[domain.EncounterNormal]
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)
	rarity := domain.RarityCommon
	for i, w := range weights {
		if roll < w {
			rarity = domain.TrinketRarity(i)
			break
		}
		roll -= w
	}

	if pity != nil {
		switch enc {
		case domain.EncounterNormal:
			if pity.Normal >= PityLimit && rarity < domain.RarityUncommon {
				rarity = domain.RarityUncommon
				pity.Normal = 0
			} else if rarity >= domain.RarityUncommon {
				pity.Normal = 0
			} else {
				pity.Normal++
			}
		case domain.EncounterElite:
			if pity.Elite >= PityLimit && rarity < domain.RarityLegendary {
				rarity = domain.RarityLegendary
				pity.Elite = 0
			} else if rarity == domain.RarityLegendary {
				pity.Elite = 0
			} else {
				pity.Elite++
			}
		}
	}
	return rarity
}

// RollAffixes выбирает tier аффиксов без повторения ключа стата.
// Вес аффикса - базовый плюс бонус редкости тринкета.
func RollAffixes(rng *rand.Rand, pool []*domain.AffixTemplate, rarity domain.TrinketRarity, tier int) []domain.Affix {
	if tier > domain.MaxAffixes {
		tier = domain.MaxAffixes
	}
	bonus := domain.AffixWeightBonus[rarity]
	taken := make(map[domain.StatKey]bool, tier)
	out := make([]domain.Affix, 0, tier)

	for len(out) < tier {
		total := 0
		for _, t := range pool {
			if !taken[t.Stat] {
				total += t.Weight + bonus
			}
		}
		if total == 0 {
			break
		}
		roll := rng.Intn(total)
		for _, t := range pool {
			if taken[t.Stat] {
				continue
			}
			w := t.Weight + bonus
			if roll < w {
				value := t.MinValue
				if t.MaxValue > t.MinValue {
					value += rng.Intn(t.MaxValue - t.MinValue + 1)
				}
				out = append(out, domain.Affix{Template: t, Value: value})
				taken[t.Stat] = true
				break
			}
			roll -= w
		}
	}
	return out
}

// InstantiateTrinket собирает экземпляр тринкета: тир ограничен номером
// акта, аффиксы без повторов, продажная цена с наценкой за редкость.
func InstantiateTrinket(rng *rand.Rand, tpl *domain.TrinketTemplate, pool []*domain.AffixTemplate, rarity domain.TrinketRarity, act int) *domain.TrinketInstance {
	if rarity < tpl.Rarity {
		rarity = tpl.Rarity
	}
	tier := act
	if tier < 1 {
		tier = 1
	}
	if tier > 3 {
		tier = 3
	}
	return &domain.TrinketInstance{
		Template:  tpl,
		Rarity:    rarity,
		Tier:      tier,
		SellValue: tpl.BaseSell * (100 + 50*int(rarity)) / 100,
		Affixes:   RollAffixes(rng, pool, rarity, tier),
	}
}

// RollTrinket бросает редкость для заранее известного шаблона.
// Редкость не опускается ниже собственной редкости шаблона.
func RollTrinket(rng *rand.Rand, tpl *domain.TrinketTemplate, pool []*domain.AffixTemplate, enc domain.EncounterType, act int, pity *PityCounters) *domain.TrinketInstance {
	rarity := RollRarity(rng, enc, pity)
	return InstantiateTrinket(rng, tpl, pool, rarity, act)
}

// RollReward - дроп после боя: сначала бросается редкость по таблице
// убитого врага, затем среди шаблонов этой редкости выбирается случайный.
// Если шаблонов точной редкости нет, берется ближайшая редкость ниже,
// потом выше, чтобы таблица дропа не искажала жалость.
func RollReward(rng *rand.Rand, templates []*domain.TrinketTemplate, pool []*domain.AffixTemplate, enc domain.EncounterType, act int, pity *PityCounters) *domain.TrinketInstance {
	if len(templates) == 0 {
		return nil
	}
	rarity := RollRarity(rng, enc, pity)
	tpl := pickTemplate(rng, templates, rarity)
	if tpl == nil {
		return nil
	}
	return InstantiateTrinket(rng, tpl, pool, rarity, act)
}

func pickTemplate(rng *rand.Rand, templates []*domain.TrinketTemplate, rarity domain.TrinketRarity) *domain.TrinketTemplate {
	byRarity := func(r domain.TrinketRarity) []*domain.TrinketTemplate {
		var out []*domain.TrinketTemplate
		for _, t := range templates {
			if t.Rarity == r {
				out = append(out, t)
			}
		}
		return out
	}
	for r := int(rarity); r >= 0; r-- {
		if pool := byRarity(domain.TrinketRarity(r)); len(pool) > 0 {
			return pool[rng.Intn(len(pool))]
		}
	}
	for r := int(rarity) + 1; r < domain.RarityCount(); r++ {
		if pool := byRarity(domain.TrinketRarity(r)); len(pool) > 0 {
			return pool[rng.Intn(len(pool))]
		}
	}
	return nil
}

// EquipTrinket помещает тринкет в свободный слот и применяет разовые
// эффекты экипировки: ADD_TAG_TO_CARDS пишет теги в реестр,
// BLOCK_DEBUFF заряжает счетчик блокировок.
func EquipTrinket(ctx Context, inst *domain.TrinketInstance) (int, bool) {
	slot, ok := ctx.Player.Equip(inst)
	if !ok {
		return -1, false
	}
	applyEquipEffects(ctx, inst, inst.Template.Primary)
	if inst.Template.HasSecondary {
		applyEquipEffects(ctx, inst, inst.Template.Secondary)
	}
	if tb := inst.Template.TagBuff; tb != nil && tb.Count > 0 {
		tagRandomCards(ctx, tb.Tag, tb.Count)
	}
	if ctx.Log != nil {
		ctx.Log.WithField("trinket", inst.Template.Key).WithField("slot", slot).Info("Trinket equipped")
	}
	return slot, true
}

// UnequipTrinket убирает тринкет из слота, откатывая навешанные им теги
func UnequipTrinket(ctx Context, slot int) *domain.TrinketInstance {
	inst := ctx.Player.Unequip(slot)
	if inst == nil {
		return nil
	}
	if tb := inst.Template.TagBuff; tb != nil && ctx.Tags != nil {
		for _, id := range ctx.Tags.TaggedCards(tb.Tag) {
			ctx.Tags.Remove(id, tb.Tag)
		}
		ctx.Player.Hand.Invalidate()
	}
	if inst.Template.Primary.Effect == domain.TrinketBlockDebuff {
		ctx.Player.DebuffBlocks = 0
	}
	return inst
}

// applyEquipEffects выполняет разовые эффекты на момент экипировки
func applyEquipEffects(ctx Context, inst *domain.TrinketInstance, pv domain.TrinketPassive) {
	switch pv.Effect {
	case domain.TrinketBlockDebuff:
		ctx.Player.DebuffBlocks += pv.Value
	case domain.TrinketAddTagToCards:
		// Value карт получают тег из поведения тегов шаблона
		if tb := inst.Template.TagBuff; tb != nil {
			tagRandomCards(ctx, tb.Tag, pv.Value)
		}
	}
}

// tagRandomCards навешивает тег на count случайных карт без этого тега
func tagRandomCards(ctx Context, kind tags.Kind, count int) {
	if ctx.Tags == nil || ctx.Rng == nil {
		return
	}
	var candidates []int
	for id := 0; id < domain.CardsPerSet; id++ {
		if !ctx.Tags.Has(id, kind) {
			candidates = append(candidates, id)
		}
	}
	for i := 0; i < count && len(candidates) > 0; i++ {
		j := ctx.Rng.Intn(len(candidates))
		ctx.Tags.Add(candidates[j], kind)
		candidates = append(candidates[:j], candidates[j+1:]...)
	}
	ctx.Player.MarkStatsDirty()
	ctx.Player.Hand.Invalidate()
}

// TriggerTrinkets прогоняет пассивы надетых тринкетов по событию шины
func TriggerTrinkets(ctx Context, event domain.GameEvent) {
	for slot, inst := range ctx.Player.Trinkets {
		if inst == nil {
			continue
		}
		if inst.Template.BetGTE > 0 && ctx.Player.Bet < inst.Template.BetGTE {
			continue
		}
		if inst.Template.Primary.Trigger == event {
			executeTrinketPassive(ctx, slot, inst, inst.Template.Primary)
		}
		if inst.Template.HasSecondary && inst.Template.Secondary.Trigger == event {
			executeTrinketPassive(ctx, slot, inst, inst.Template.Secondary)
		}
	}
}

// executeTrinketPassive применяет эффект сработавшего пассива
func executeTrinketPassive(ctx Context, slot int, inst *domain.TrinketInstance, pv domain.TrinketPassive) {
	key := inst.Template.Key
	switch pv.Effect {
	case domain.TrinketAddChips:
		GrantChips(ctx, pv.Value, key)
		inst.Track(domain.TrackBonusChips, pv.Value)

	case domain.TrinketAddChipsPercent:
		amount := ctx.Player.Bet * pv.Value / 100
		GrantChips(ctx, amount, key)
		inst.Track(domain.TrackBonusChips, amount)

	case domain.TrinketLoseChips:
		DrainChips(ctx, pv.Value, key)

	case domain.TrinketApplyStatus:
		ApplyStatus(ctx, pv.Status, pv.Value, pv.StatusStacks, key)

	case domain.TrinketClearStatus:
		ctx.Player.Statuses.Clear(pv.Status)

	case domain.TrinketStack:
		bumpStacks(ctx, inst, pv.Value)

	case domain.TrinketStackReset:
		if inst.Stacks != 0 {
			inst.Stacks = 0
			ctx.Player.MarkStatsDirty()
		}

	case domain.TrinketRefundChipsPercent:
		amount := ctx.Player.Bet * pv.Value / 100
		GrantChips(ctx, amount, key)
		inst.Track(domain.TrackRefundedChips, amount)

	case domain.TrinketBlockDebuff:
		ctx.Player.DebuffBlocks += pv.Value

	case domain.TrinketPunishHeal:
		// Наказание за лечение врага: встречный урон
		DamageEnemy(ctx, pv.Value, key)
		inst.Track(domain.TrackHealDamage, pv.Value)
		inst.Track(domain.TrackDamageDealt, pv.Value)
	}
	ctx.emit(domain.EventTrinketTriggered, domain.EventPayload{Amount: slot, Actor: key})
}

// bumpStacks наращивает стеки с учетом потолка и поведения на максимуме
func bumpStacks(ctx Context, inst *domain.TrinketInstance, delta int) {
	st := inst.Template.Stack
	if st == nil {
		return
	}
	if delta <= 0 {
		delta = 1
	}
	inst.Stacks += delta
	if inst.Stacks >= st.Max {
		if st.OnMax == domain.StackOnMaxResetToOne {
			inst.Stacks = 1
		} else {
			inst.Stacks = st.Max
		}
	}
	if inst.Stacks > inst.Tracked[domain.TrackHighestStreak] {
		inst.Tracked[domain.TrackHighestStreak] = inst.Stacks
	}
	ctx.Player.MarkStatsDirty()
}
