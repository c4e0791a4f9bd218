package systems

import (
	"testing"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

func TestCursedCardOnDraw(t *testing.T) {
	ctx := newTestContext(1)
	c := domain.NewCard(domain.SuitDiamonds, domain.RankSix)
	ctx.Tags.Add(c.CardID, tags.Cursed)

	OnCardDrawn(ctx, c, true)

	if ctx.Enemy.HP != 500-tags.CursedDamage {
		t.Errorf("enemy HP = %d, want %d", ctx.Enemy.HP, 500-tags.CursedDamage)
	}
	if ctx.Player.Chips != domain.StartingChips {
		t.Errorf("cursed card must not touch chips, got %d", ctx.Player.Chips)
	}
}

func TestVampiricCardOnDraw(t *testing.T) {
	ctx := newTestContext(1)
	c := domain.NewCard(domain.SuitClubs, domain.RankNine)
	ctx.Tags.Add(c.CardID, tags.Vampiric)

	OnCardDrawn(ctx, c, true)

	if ctx.Enemy.HP != 500-tags.VampiricDamage {
		t.Errorf("enemy HP = %d, want %d", ctx.Enemy.HP, 500-tags.VampiricDamage)
	}
	if ctx.Player.Chips != domain.StartingChips+tags.VampiricChips {
		t.Errorf("chips = %d, want %d", ctx.Player.Chips, domain.StartingChips+tags.VampiricChips)
	}
}

func TestVampiricDealerDraw(t *testing.T) {
	ctx := newTestContext(1)
	c := domain.NewCard(domain.SuitClubs, domain.RankNine)
	ctx.Tags.Add(c.CardID, tags.Vampiric)

	// Дилер тянет вампирскую карту: урон проходит, фишки игроку не идут
	OnCardDrawn(ctx, c, false)

	if ctx.Enemy.HP != 500-tags.VampiricDamage {
		t.Errorf("enemy HP = %d, want %d", ctx.Enemy.HP, 500-tags.VampiricDamage)
	}
	if ctx.Player.Chips != domain.StartingChips {
		t.Errorf("chips = %d, dealer draw must not pay the player", ctx.Player.Chips)
	}
}

func TestUntaggedCardNoEffect(t *testing.T) {
	ctx := newTestContext(1)
	OnCardDrawn(ctx, domain.NewCard(domain.SuitHearts, domain.RankTwo), true)

	if ctx.Enemy.HP != 500 || ctx.Player.Chips != domain.StartingChips {
		t.Error("untagged card must have no draw effect")
	}
}
