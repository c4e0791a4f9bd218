package systems

import (
	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// Нарративные события: проверка условий выбора и раздача тегов по стратегии.

// RequirementMet оценивает условие выбора против текущего состояния игрока
func RequirementMet(ctx Context, req domain.ChoiceRequirement) bool {
	switch req.Type {
	case domain.RequireNone:
		return true
	case domain.RequireTagCount:
		return ctx.Tags != nil && ctx.Tags.Count(req.Tag) >= req.Threshold
	case domain.RequireSanityThreshold:
		return ctx.Player.Sanity >= req.Threshold
	case domain.RequireChipsThreshold, domain.RequireHPThreshold:
		// Фишки и есть здоровье, оба порога читают один запас
		return ctx.Player.Chips >= req.Threshold
	case domain.RequireTrinket:
		for _, t := range ctx.Player.Trinkets {
			if t != nil && t.Template.Key == req.Trinket {
				return true
			}
		}
		return false
	}
	return false
}

// ResolveStrategy возвращает card_id карт, на которые стратегия вешает тег.
// Карты, уже несущие тег, пропускаются.
func ResolveStrategy(ctx Context, strategy domain.TagStrategy, kind tags.Kind, count int) []int {
	switch strategy {
	case domain.StrategyRandomCard:
		return pickRandomUntagged(ctx, kind, count)

	case domain.StrategyHighestUntagged:
		return scanUntagged(ctx, kind, count, true)

	case domain.StrategyLowestUntagged:
		return scanUntagged(ctx, kind, count, false)

	case domain.StrategySuitHearts:
		return suitCards(domain.SuitHearts)
	case domain.StrategySuitDiamonds:
		return suitCards(domain.SuitDiamonds)
	case domain.StrategySuitClubs:
		return suitCards(domain.SuitClubs)
	case domain.StrategySuitSpades:
		return suitCards(domain.SuitSpades)

	case domain.StrategyRankAces:
		return rankCards(domain.RankAce)

	case domain.StrategyRankFaceCards:
		out := rankCards(domain.RankJack)
		out = append(out, rankCards(domain.RankQueen)...)
		out = append(out, rankCards(domain.RankKing)...)
		return out

	case domain.StrategyAllCards:
		out := make([]int, domain.CardsPerSet)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return nil
}

// ApplyTags вешает тег на карты, выбранные стратегией.
// Возвращает число реально помеченных карт.
func ApplyTags(ctx Context, strategy domain.TagStrategy, kind tags.Kind, count int) int {
	if ctx.Tags == nil {
		return 0
	}
	added := 0
	for _, id := range ResolveStrategy(ctx, strategy, kind, count) {
		if ctx.Tags.Add(id, kind) {
			added++
		}
	}
	if added > 0 {
		ctx.Player.MarkStatsDirty()
		ctx.Player.Hand.Invalidate()
	}
	return added
}

// pickRandomUntagged выбирает count случайных карт без тега
func pickRandomUntagged(ctx Context, kind tags.Kind, count int) []int {
	if ctx.Rng == nil {
		return nil
	}
	var candidates []int
	for id := 0; id < domain.CardsPerSet; id++ {
		if ctx.Tags == nil || !ctx.Tags.Has(id, kind) {
			candidates = append(candidates, id)
		}
	}
	var out []int
	for i := 0; i < count && len(candidates) > 0; i++ {
		j := ctx.Rng.Intn(len(candidates))
		out = append(out, candidates[j])
		candidates = append(candidates[:j], candidates[j+1:]...)
	}
	return out
}

// scanUntagged идет по достоинствам от старших или младших и собирает
// первые count карт без тега
func scanUntagged(ctx Context, kind tags.Kind, count int, highest bool) []int {
	var out []int
	appendRank := func(rank domain.CardRank) {
		for suit := domain.CardSuit(0); suit < domain.SuitMax && len(out) < count; suit++ {
			id := domain.MakeCardID(suit, rank)
			if ctx.Tags == nil || !ctx.Tags.Has(id, kind) {
				out = append(out, id)
			}
		}
	}
	if highest {
		for rank := domain.RankKing; rank >= domain.RankAce && len(out) < count; rank-- {
			appendRank(rank)
		}
	} else {
		for rank := domain.RankAce; rank <= domain.RankKing && len(out) < count; rank++ {
			appendRank(rank)
		}
	}
	return out
}

// suitCards - все тринадцать карт масти
func suitCards(suit domain.CardSuit) []int {
	out := make([]int, 0, 13)
	for rank := domain.RankAce; rank <= domain.RankKing; rank++ {
		out = append(out, domain.MakeCardID(suit, rank))
	}
	return out
}

// rankCards - все четыре карты достоинства
func rankCards(rank domain.CardRank) []int {
	out := make([]int, 0, 4)
	for suit := domain.CardSuit(0); suit < domain.SuitMax; suit++ {
		out = append(out, domain.MakeCardID(suit, rank))
	}
	return out
}
