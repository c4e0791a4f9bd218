package systems

import (
	"testing"

	"fiftytwo-server/internal/domain"
)

func TestDegenerateDoubleDown(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.ClassKit = NewClassKit(domain.ClassDegenerate)

	nine := domain.NewCard(domain.SuitHearts, domain.RankNine)
	nine.FaceUp = true
	ctx.Player.Hand.Add(nine)

	if err := UseClassActive(ctx, nine.CardID); err != nil {
		t.Fatalf("UseClassActive: %v", err)
	}
	if got := ctx.Player.Hand.Total(); got != 18 {
		t.Errorf("doubled nine: Total() = %d, want 18", got)
	}
	if ctx.Player.ClassKit.Ready() {
		t.Error("active must go on cooldown after use")
	}
}

func TestDegenerateDoubleDownRefusesTens(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.ClassKit = NewClassKit(domain.ClassDegenerate)

	for _, rank := range []domain.CardRank{domain.RankTen, domain.RankJack, domain.RankQueen, domain.RankKing} {
		c := domain.NewCard(domain.SuitSpades, rank)
		c.FaceUp = true
		ctx.Player.Hand.Add(c)
		if err := UseClassActive(ctx, c.CardID); err != ErrCannotDouble {
			t.Errorf("rank %v: err = %v, want ErrCannotDouble", rank, err)
		}
	}
}

func TestClassActiveCooldown(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Class = domain.ClassDreamer
	ctx.Player.ClassKit = NewClassKit(domain.ClassDreamer)
	ctx.Player.Sanity = 50

	if err := UseClassActive(ctx, -1); err != nil {
		t.Fatalf("UseClassActive: %v", err)
	}
	if ctx.Player.Sanity != 65 {
		t.Errorf("sanity = %d, want 65", ctx.Player.Sanity)
	}

	if err := UseClassActive(ctx, -1); err != ErrActiveNotReady {
		t.Fatalf("err = %v, want ErrActiveNotReady on cooldown", err)
	}

	// Кулдаун Сновидца - пять раундов
	for i := 0; i < 5; i++ {
		TickClassKit(ctx.Player.ClassKit)
	}
	if err := UseClassActive(ctx, -1); err != nil {
		t.Errorf("UseClassActive after cooldown: %v", err)
	}
}

func TestRecklessPayoffPassive(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.ClassKit = NewClassKit(domain.ClassDegenerate)

	// Сумма ниже порога: пассив молчит
	ctx.Player.Hand.Add(domain.NewCard(domain.SuitHearts, domain.RankTen))
	ctx.Player.Hand.Add(domain.NewCard(domain.SuitSpades, domain.RankFour))
	ClassPassiveOnEvent(ctx, domain.EventPlayerStand)
	if ctx.Enemy.HP != 500 {
		t.Fatalf("passive fired below threshold, enemy HP = %d", ctx.Enemy.HP)
	}

	// 17 на стенде: урон пассива проходит
	ctx.Player.Hand.Add(domain.NewCard(domain.SuitClubs, domain.RankThree))
	ClassPassiveOnEvent(ctx, domain.EventPlayerStand)
	if ctx.Enemy.HP != 490 {
		t.Errorf("enemy HP = %d, want 490 after Reckless Payoff", ctx.Enemy.HP)
	}
}

func TestActiveUseGrowsPassiveBonus(t *testing.T) {
	ctx := newTestContext(1)
	ctx.Player.Class = domain.ClassDealer
	ctx.Player.ClassKit = NewClassKit(domain.ClassDealer)

	UseClassActive(ctx, -1)
	if ctx.Player.ClassKit.PassiveBonus != 2 {
		t.Errorf("PassiveBonus = %d, want 2 after one use", ctx.Player.ClassKit.PassiveBonus)
	}
}
