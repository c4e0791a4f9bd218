package domain

import "testing"

// fakeTags - минимальный источник тегов для проверки удвоения карт
type fakeTags struct {
	doubled map[int]bool
}

func (f *fakeTags) IsDoubled(cardID int) bool { return f.doubled[cardID] }
func (f *fakeTags) ClearDoubled(cardID int) bool {
	if !f.doubled[cardID] {
		return false
	}
	delete(f.doubled, cardID)
	return true
}

func TestHandScoring(t *testing.T) {
	tests := []struct {
		name      string
		cards     []Card
		total     int
		soft      bool
		bust      bool
		blackjack bool
	}{
		{
			name:  "two aces",
			cards: []Card{NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankAce)},
			total: 12,
			soft:  true,
		},
		{
			name: "four aces",
			cards: []Card{
				NewCard(SuitHearts, RankAce), NewCard(SuitDiamonds, RankAce),
				NewCard(SuitClubs, RankAce), NewCard(SuitSpades, RankAce),
			},
			total: 14,
			soft:  true,
		},
		{
			name:      "natural blackjack",
			cards:     []Card{NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankKing)},
			total:     21,
			soft:      true,
			blackjack: true,
		},
		{
			name:  "hard seventeen",
			cards: []Card{NewCard(SuitHearts, RankTen), NewCard(SuitSpades, RankSeven)},
			total: 17,
		},
		{
			name: "soft seventeen",
			cards: []Card{
				NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankSix),
			},
			total: 17,
			soft:  true,
		},
		{
			name: "ace demoted after hit",
			cards: []Card{
				NewCard(SuitHearts, RankAce), NewCard(SuitSpades, RankSix),
				NewCard(SuitClubs, RankTen),
			},
			total: 17,
		},
		{
			name: "bust",
			cards: []Card{
				NewCard(SuitHearts, RankTen), NewCard(SuitSpades, RankNine),
				NewCard(SuitClubs, RankFive),
			},
			total: 24,
			bust:  true,
		},
		{
			name: "twenty one on three cards is not blackjack",
			cards: []Card{
				NewCard(SuitHearts, RankSeven), NewCard(SuitSpades, RankSeven),
				NewCard(SuitClubs, RankSeven),
			},
			total: 21,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(nil)
			for _, c := range tt.cards {
				h.Add(c)
			}
			if got := h.Total(); got != tt.total {
				t.Errorf("Total() = %d, want %d", got, tt.total)
			}
			if got := h.IsSoft(); got != tt.soft {
				t.Errorf("IsSoft() = %v, want %v", got, tt.soft)
			}
			if got := h.IsBust(); got != tt.bust {
				t.Errorf("IsBust() = %v, want %v", got, tt.bust)
			}
			if got := h.IsBlackjack(); got != tt.blackjack {
				t.Errorf("IsBlackjack() = %v, want %v", got, tt.blackjack)
			}
		})
	}
}

func TestHandDoubledCard(t *testing.T) {
	nine := NewCard(SuitHearts, RankNine)
	ft := &fakeTags{doubled: map[int]bool{nine.CardID: true}}

	h := NewHand(ft)
	h.Add(nine)
	if got := h.Total(); got != 18 {
		t.Errorf("doubled nine: Total() = %d, want 18", got)
	}

	// Удвоенный туз считается как сырое достоинство и теряет мягкость
	ace := NewCard(SuitSpades, RankAce)
	ft.doubled[ace.CardID] = true
	h.Add(ace)
	if got := h.Total(); got != 20 {
		t.Errorf("doubled nine + doubled ace: Total() = %d, want 20", got)
	}
	if h.IsSoft() {
		t.Error("doubled ace must not count as soft")
	}
}

func TestHandClearRemovesDoubled(t *testing.T) {
	nine := NewCard(SuitHearts, RankNine)
	ft := &fakeTags{doubled: map[int]bool{nine.CardID: true}}

	h := NewHand(ft)
	h.Add(nine)
	out := h.Clear()

	if len(out) != 1 {
		t.Fatalf("Clear() returned %d cards, want 1", len(out))
	}
	if ft.doubled[nine.CardID] {
		t.Error("DOUBLED tag must be removed when the hand is cleared")
	}
	if h.Size() != 0 {
		t.Errorf("hand size after Clear() = %d, want 0", h.Size())
	}
}

func TestHandVisibleScore(t *testing.T) {
	h := NewHand(nil)
	up := NewCard(SuitHearts, RankTen)
	up.FaceUp = true
	hole := NewCard(SuitSpades, RankSeven)
	h.Add(up)
	h.Add(hole)

	if got := h.VisibleScore(); got != 10 {
		t.Errorf("VisibleScore() = %d, want 10 (hole card hidden)", got)
	}

	h.RevealAll()
	if got := h.VisibleScore(); got != 17 {
		t.Errorf("VisibleScore() after reveal = %d, want 17", got)
	}
}
