package engine

import (
	"fmt"
	"strings"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/systems"
	"fiftytwo-server/internal/tags"
	"fiftytwo-server/pkg/api"
)

// ApplyCheat выполняет отладочные правки состояния. Доступен только
// при включенном debug-режиме.
func (g *Game) ApplyCheat(p api.CheatPayload) (string, error) {
	if g.Player == nil {
		return "", fmt.Errorf("no active run")
	}
	var done []string

	if p.Chips != 0 {
		g.Player.Chips = p.Chips
		g.Tracker.ObserveChips(g.Player.Chips)
		done = append(done, fmt.Sprintf("chips=%d", p.Chips))
	}
	if p.Sanity != 0 {
		g.Player.Sanity = p.Sanity
		if g.Player.Sanity > domain.MaxSanity {
			g.Player.Sanity = domain.MaxSanity
		}
		done = append(done, fmt.Sprintf("sanity=%d", g.Player.Sanity))
	}
	if p.EnemyHP != 0 && g.Enemy != nil {
		g.Enemy.HP = p.EnemyHP
		if g.Enemy.HP > g.Enemy.MaxHP {
			g.Enemy.HP = g.Enemy.MaxHP
		}
		done = append(done, fmt.Sprintf("enemyHp=%d", g.Enemy.HP))
	}
	if len(p.Cards) > 0 && g.Deck != nil {
		cards := make([]domain.Card, 0, len(p.Cards))
		for _, id := range p.Cards {
			if id < 0 || id >= domain.CardsPerSet {
				return "", fmt.Errorf("card id %d out of range", id)
			}
			cards = append(cards, domain.CardFromID(id))
		}
		g.Deck.StackTop(cards...)
		done = append(done, fmt.Sprintf("stacked %d cards", len(cards)))
	}
	if p.Tag != "" {
		kind, err := tags.Parse(p.Tag)
		if err != nil {
			return "", err
		}
		for _, id := range p.TagCards {
			if id < 0 || id >= domain.CardsPerSet {
				return "", fmt.Errorf("card id %d out of range", id)
			}
			g.Tags.Add(id, kind)
		}
		g.Player.MarkStatsDirty()
		done = append(done, fmt.Sprintf("%s on %d cards", kind, len(p.TagCards)))
	}
	if p.Status != "" {
		kind, err := domain.ParseStatusKind(p.Status)
		if err != nil {
			return "", err
		}
		systems.ApplyStatus(g.sysCtx(), kind, p.StatusValue, p.StatusDuration, "cheat")
		done = append(done, fmt.Sprintf("status %s", kind))
	}
	if p.Event != "" {
		var found *domain.NarrativeEvent
		for _, ev := range g.lib.Events {
			if ev.ID == p.Event {
				found = ev
				break
			}
		}
		if found == nil {
			return "", fmt.Errorf("unknown event %q", p.Event)
		}
		g.Event = found
		g.eventResolved = false
		if g.RerollCost == 0 {
			g.RerollCost = domain.RerollBaseCost
		}
		g.setState(domain.StateEvent)
		done = append(done, "event "+found.ID)
	}

	if len(done) == 0 {
		return "", fmt.Errorf("nothing to cheat")
	}
	g.dirty = true
	g.log.WithField("cheat", strings.Join(done, ", ")).Warn("Cheat applied")
	return "Cheat: " + strings.Join(done, ", "), nil
}
