package systems

import (
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

func TestRequirementMet(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Chips = 60
	ctx.Player.Sanity = 40
	ctx.Tags.Add(0, tags.Cursed)
	ctx.Tags.Add(1, tags.Cursed)
	ctx.Player.Equip(&domain.TrinketInstance{
		Template: &domain.TrinketTemplate{Key: "evil_eye"},
	})

	tests := []struct {
		name string
		req  domain.ChoiceRequirement
		want bool
	}{
		{"none", domain.ChoiceRequirement{Type: domain.RequireNone}, true},
		{"tag count met", domain.ChoiceRequirement{Type: domain.RequireTagCount, Tag: tags.Cursed, Threshold: 2}, true},
		{"tag count short", domain.ChoiceRequirement{Type: domain.RequireTagCount, Tag: tags.Cursed, Threshold: 3}, false},
		{"sanity met", domain.ChoiceRequirement{Type: domain.RequireSanityThreshold, Threshold: 40}, true},
		{"sanity short", domain.ChoiceRequirement{Type: domain.RequireSanityThreshold, Threshold: 41}, false},
		{"chips met", domain.ChoiceRequirement{Type: domain.RequireChipsThreshold, Threshold: 50}, true},
		// Отдельного здоровья нет: порог HP читает запас фишек
		{"hp reads chips", domain.ChoiceRequirement{Type: domain.RequireHPThreshold, Threshold: 60}, true},
		{"hp short", domain.ChoiceRequirement{Type: domain.RequireHPThreshold, Threshold: 61}, false},
		{"trinket present", domain.ChoiceRequirement{Type: domain.RequireTrinket, Trinket: "evil_eye"}, true},
		{"trinket absent", domain.ChoiceRequirement{Type: domain.RequireTrinket, Trinket: "third_eye"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := RequirementMet(ctx, tt.req); got != tt.want {
				t.Errorf("RequirementMet(%+v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

func TestResolveStrategySuitsAndRanks(t *testing.T) {
	ctx := newTestContext(1)

	hearts := ResolveStrategy(ctx, domain.StrategySuitHearts, tags.Lucky, 0)
	if len(hearts) != 13 {
		t.Errorf("hearts = %d cards, want 13", len(hearts))
	}
	for _, id := range hearts {
		if domain.CardFromID(id).Suit != domain.SuitHearts {
			t.Errorf("card %d is not a heart", id)
		}
	}

	aces := ResolveStrategy(ctx, domain.StrategyRankAces, tags.Lucky, 0)
	if len(aces) != 4 {
		t.Errorf("aces = %d cards, want 4", len(aces))
	}

	faces := ResolveStrategy(ctx, domain.StrategyRankFaceCards, tags.Lucky, 0)
	if len(faces) != 12 {
		t.Errorf("face cards = %d, want 12", len(faces))
	}

	all := ResolveStrategy(ctx, domain.StrategyAllCards, tags.Lucky, 0)
	if len(all) != domain.CardsPerSet {
		t.Errorf("all cards = %d, want %d", len(all), domain.CardsPerSet)
	}
}

func TestResolveStrategyHighestUntagged(t *testing.T) {
	ctx := newTestContext(1)

	got := ResolveStrategy(ctx, domain.StrategyHighestUntagged, tags.Brutal, 4)
	if len(got) != 4 {
		t.Fatalf("got %d cards, want 4", len(got))
	}
	// Все четыре короля свободны: берутся именно они
	for _, id := range got {
		if domain.CardFromID(id).Rank != domain.RankKing {
			t.Errorf("card %d is not a king", id)
		}
	}

	// Пометим королей: следующий заход берет дам
	for _, id := range got {
		ctx.Tags.Add(id, tags.Brutal)
	}
	got = ResolveStrategy(ctx, domain.StrategyHighestUntagged, tags.Brutal, 2)
	for _, id := range got {
		if domain.CardFromID(id).Rank != domain.RankQueen {
			t.Errorf("card %d is not a queen", id)
		}
	}
}

func TestResolveStrategyLowestUntagged(t *testing.T) {
	ctx := newTestContext(1)

	got := ResolveStrategy(ctx, domain.StrategyLowestUntagged, tags.Cursed, 4)
	for _, id := range got {
		if domain.CardFromID(id).Rank != domain.RankAce {
			t.Errorf("card %d is not an ace", id)
		}
	}
}

func TestApplyTagsSkipsTagged(t *testing.T) {
	ctx := newTestContext(1)

	added := ApplyTags(ctx, domain.StrategyRankAces, tags.Lucky, 0)
	if added != 4 {
		t.Fatalf("added = %d, want 4", added)
	}
	// Повторное применение не добавляет ничего
	added = ApplyTags(ctx, domain.StrategyRankAces, tags.Lucky, 0)
	if added != 0 {
		t.Errorf("second pass added = %d, want 0", added)
	}
}

func TestApplyTagsRandomCount(t *testing.T) {
	ctx := newTestContext(1)

	added := ApplyTags(ctx, domain.StrategyRandomCard, tags.Vampiric, 5)
	if added != 5 {
		t.Errorf("added = %d, want 5", added)
	}
	if got := ctx.Tags.Count(tags.Vampiric); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}
