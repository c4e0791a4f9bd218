package engine

import (
	"fmt"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/systems"
)

// pickEvent выбирает нарративное событие взвешенно по Weight.
// Событие прошлой остановки исключается, пока пул это позволяет.
func (g *Game) pickEvent() *domain.NarrativeEvent {
	pool := make([]*domain.NarrativeEvent, 0, len(g.lib.Events))
	total := 0
	for _, ev := range g.lib.Events {
		if ev.ID == g.lastEventID && len(g.lib.Events) > 1 {
			continue
		}
		pool = append(pool, ev)
		total += ev.Weight
	}
	if len(pool) == 0 || total <= 0 {
		return nil
	}
	roll := g.rng.Intn(total)
	for _, ev := range pool {
		if roll < ev.Weight {
			g.lastEventID = ev.ID
			return ev
		}
		roll -= ev.Weight
	}
	return pool[len(pool)-1]
}

// ChooseOption применяет выбранный вариант события. Порядок эффектов
// фиксированный: фишки, рассудок, теги, тринкет, модификатор HP
// следующего врага.
func (g *Game) ChooseOption(index int) (string, error) {
	if g.State != domain.StateEvent {
		return "", fmt.Errorf("there is no event to answer")
	}
	if g.eventResolved {
		return "", fmt.Errorf("the choice is already made")
	}
	if g.Event == nil {
		return "", fmt.Errorf("there is no event to answer")
	}
	if index < 0 || index >= domain.ChoicesPerEvent {
		return "", fmt.Errorf("choice %d out of range", index)
	}

	choice := g.Event.Choices[index]
	ctx := g.sysCtx()
	if !systems.RequirementMet(ctx, choice.Requirement) {
		return "", fmt.Errorf("you do not meet the requirement")
	}

	out := choice.Outcome
	switch {
	case out.ChipsDelta > 0:
		systems.GrantChips(ctx, out.ChipsDelta, "event")
	case out.ChipsDelta < 0:
		systems.DrainChips(ctx, -out.ChipsDelta, "event")
	}
	if out.SanityDelta != 0 {
		systems.ChangeSanity(ctx, out.SanityDelta, "event")
	}
	if out.HasTag {
		tagged := systems.ApplyTags(ctx, out.Strategy, out.Tag, out.TagCount)
		g.log.WithField("count", tagged).WithField("tag", out.Tag.String()).Info("Event tagged cards")
	}
	if out.TrinketKey != "" {
		g.grantTrinket(out.TrinketKey)
	}
	if out.NextEnemyHPPercent > 0 {
		g.hpMultPercent = out.NextEnemyHPPercent
	}

	g.eventResolved = true
	g.EventResult = out.ResultText
	g.say(out.ResultText, "EVENT")

	if g.Player.IsDefeated() {
		g.finishRun(false)
	}
	return "", nil
}

// grantTrinket выдает конкретный тринкет из события. Таблицы дропа и
// жалость не участвуют: редкость берется из шаблона. При заполненных
// слотах тринкет уходит с молотка.
func (g *Game) grantTrinket(key string) {
	tpl, ok := g.lib.Trinket(key)
	if !ok {
		g.log.WithField("trinket", key).Error("Event references unknown trinket")
		return
	}
	inst := systems.InstantiateTrinket(g.rng, tpl, g.lib.Affixes, tpl.Rarity, g.Run.Act)
	if _, ok := systems.EquipTrinket(g.sysCtx(), inst); ok {
		g.say(fmt.Sprintf("You receive %s.", tpl.Name), "EVENT")
		return
	}
	systems.GrantChips(g.sysCtx(), inst.SellValue, "sell")
	g.say(fmt.Sprintf("No room for %s, sold for %d chips.", tpl.Name, inst.SellValue), "EVENT")
}

// RerollEvent меняет событие за фишки. Каждый реролл за остановку
// удваивает цену следующего.
func (g *Game) RerollEvent() (string, error) {
	if g.State != domain.StateEvent {
		return "", fmt.Errorf("there is no event to reroll")
	}
	if g.eventResolved {
		return "", fmt.Errorf("the choice is already made")
	}
	if !systems.SpendChips(g.sysCtx(), g.RerollCost, "reroll") {
		return "", fmt.Errorf("not enough chips: reroll costs %d", g.RerollCost)
	}
	cost := g.RerollCost
	g.RerollCost *= 2
	g.Event = g.pickEvent()
	if g.Player.IsDefeated() {
		g.finishRun(false)
		return "", nil
	}
	return fmt.Sprintf("The story shifts. Paid %d chips.", cost), nil
}
