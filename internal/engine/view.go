package engine

import (
	"fmt"

	"fiftytwo-server/pkg/api"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/systems"
	"fiftytwo-server/internal/tags"
)

// BuildState собирает полный снимок игры для клиента. Закрытые карты
// отдаются без идентификатора, масти и достоинства: клиент не должен
// узнавать их из трафика.
func (g *Game) BuildState() api.ServerResponse {
	resp := api.ServerResponse{
		Type:  "UPDATE",
		State: g.State.String(),
	}
	if g.Player == nil {
		return resp
	}

	resp.Player = g.playerView()
	resp.Enemy = g.enemyView()
	if g.DealerHand != nil && g.DealerHand.Size() > 0 {
		resp.Dealer = g.handView(g.DealerHand)
	}
	if g.Deck != nil {
		resp.Deck = &api.DeckView{
			Remaining: g.Deck.Remaining(),
			Discard:   g.Deck.DiscardCount(),
			Reshuffle: g.Deck.NeedsReshuffle(),
		}
	}
	resp.Round = g.roundView()
	if g.Run != nil {
		resp.Act = g.actView()
	}
	if g.Event != nil && (g.State == domain.StateEvent || g.State == domain.StateEventPreview) {
		resp.Event = g.eventView()
	}
	if g.State == domain.StateCombatVictory {
		resp.Reward = g.rewardView()
	}
	return resp
}

func (g *Game) playerView() *api.PlayerView {
	p := g.Player
	minBet, maxBet := systems.BetLimits(p)
	view := &api.PlayerView{
		Class:    p.Class.String(),
		Chips:    p.Chips,
		Sanity:   p.Sanity,
		Tier:     systems.TierOf(p.Sanity).String(),
		MinBet:   minBet,
		MaxBet:   maxBet,
		Trinkets: []api.TrinketView{},
	}
	if p.Hand != nil && p.Hand.Size() > 0 {
		view.Hand = g.handView(p.Hand)
	}
	for _, e := range p.Statuses.List() {
		view.Statuses = append(view.Statuses, api.StatusView{
			Kind:      e.Kind.String(),
			Remaining: e.Remaining,
			Magnitude: e.Magnitude,
			Source:    e.Source,
		})
	}
	for slot, t := range p.Trinkets {
		if t != nil {
			view.Trinkets = append(view.Trinkets, trinketView(slot, t))
		}
	}
	if kit := p.ClassKit; kit != nil {
		view.ClassKit = &api.ClassKitView{
			Name:        kit.Name,
			PassiveName: kit.PassiveName,
			ActiveName:  kit.ActiveName,
			Cooldown:    kit.Cooldown,
			Remaining:   kit.Remaining,
			Ready:       kit.Ready(),
		}
	}
	return view
}

func trinketView(slot int, t *domain.TrinketInstance) api.TrinketView {
	view := api.TrinketView{
		Slot:        slot,
		ID:          t.Template.Key,
		Name:        t.Template.Name,
		Description: t.Template.Flavor,
		Rarity:      t.Rarity.String(),
		SellValue:   t.SellValue,
	}
	for _, a := range t.Affixes {
		view.Affixes = append(view.Affixes, api.AffixView{
			Name:  a.Template.Name,
			Value: a.Value,
		})
	}
	return view
}

func (g *Game) handView(h *domain.Hand) *api.HandView {
	view := &api.HandView{
		Cards: make([]api.CardView, 0, h.Size()),
		Score: h.VisibleScore(),
		Soft:  h.IsSoft(),
		Bust:  h.IsBust(),
	}
	for _, c := range h.Cards {
		view.Cards = append(view.Cards, g.cardView(c))
	}
	return view
}

func (g *Game) cardView(c domain.Card) api.CardView {
	if !c.FaceUp {
		return api.CardView{CardID: -1}
	}
	view := api.CardView{
		CardID: c.CardID,
		Suit:   c.Suit.String(),
		Rank:   c.Rank.String(),
		FaceUp: true,
	}
	for _, k := range g.Tags.Tags(c.CardID) {
		info := tags.Describe(k)
		view.Tags = append(view.Tags, api.TagView{Name: info.Name, Color: info.Color})
	}
	return view
}

// enemyView показывает текущего врага, а в превью боя - следующего
func (g *Game) enemyView() *api.EnemyView {
	if g.State == domain.StateCombatPreview && g.nextEnemy != nil {
		return &api.EnemyView{
			ID:        g.nextEnemy.ID,
			Name:      g.nextEnemy.Name,
			HP:        g.nextEnemy.MaxHP,
			MaxHP:     g.nextEnemy.MaxHP,
			Portrait:  g.nextEnemy.Portrait,
			IntroLine: g.nextEnemy.IntroLine,
		}
	}
	if g.Enemy == nil {
		return nil
	}
	return &api.EnemyView{
		ID:       g.Enemy.Template.ID,
		Name:     g.Enemy.Template.Name,
		HP:       g.Enemy.HP,
		MaxHP:    g.Enemy.MaxHP,
		Portrait: g.Enemy.Template.Portrait,
	}
}

func (g *Game) roundView() *api.RoundView {
	if g.Player.Bet == 0 && g.Resolution == nil {
		return nil
	}
	view := &api.RoundView{
		Bet:     g.Player.Bet,
		Doubled: g.Player.Doubled,
	}
	if res := g.Resolution; res != nil {
		view.Outcome = res.Outcome.String()
		if res.Damage > 0 || res.Outcome == domain.OutcomeWin || res.Outcome == domain.OutcomeBlackjack {
			view.Damage = &api.DamageView{
				Base:  res.Base,
				Crit:  res.Crit,
				Final: res.Damage,
			}
		}
	}
	return view
}

func (g *Game) actView() *api.ActView {
	view := &api.ActView{
		Encounter: g.Run.Index + 1,
		Total:     len(g.Run.Nodes),
	}
	if next, ok := g.Run.Peek(); ok {
		view.NextType = next.String()
	}
	return view
}

func (g *Game) eventView() *api.EventView {
	view := &api.EventView{
		ID:         g.Event.ID,
		Title:      g.Event.Title,
		Body:       g.Event.Body,
		RerollCost: g.RerollCost,
		ResultText: g.EventResult,
	}
	ctx := g.sysCtx()
	for _, c := range g.Event.Choices {
		view.Choices = append(view.Choices, api.ChoiceView{
			Text:        c.Text,
			Available:   systems.RequirementMet(ctx, c.Requirement),
			Requirement: requirementText(c.Requirement),
		})
	}
	return view
}

// requirementText - человекочитаемое условие для заблокированных выборов
func requirementText(req domain.ChoiceRequirement) string {
	switch req.Type {
	case domain.RequireTagCount:
		return fmt.Sprintf("Requires %d cards tagged %s", req.Threshold, req.Tag)
	case domain.RequireSanityThreshold:
		return fmt.Sprintf("Requires %d sanity", req.Threshold)
	case domain.RequireChipsThreshold:
		return fmt.Sprintf("Requires %d chips", req.Threshold)
	case domain.RequireHPThreshold:
		return fmt.Sprintf("Requires %d chips of health", req.Threshold)
	case domain.RequireTrinket:
		return fmt.Sprintf("Requires trinket: %s", req.Trinket)
	}
	return ""
}

func (g *Game) rewardView() *api.RewardView {
	view := &api.RewardView{Chips: g.RewardChips}
	if g.Reward != nil {
		t := trinketView(-1, g.Reward)
		view.Trinket = &t
	}
	return view
}
