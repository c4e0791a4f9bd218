package domain

// BlackjackTarget - целевое значение очков
const BlackjackTarget = 21

// DoubleCapRank - максимальное достоинство, к которому применимо удвоение.
// Карты с вкладом 10 (десятки и картинки) удвоить нельзя.
const DoubleCapRank = 10

// TagSource отвечает на вопрос "удвоена ли карта тегом" и снимает
// одноручный тег DOUBLED при сбросе руки.
// Реализуется реестром тегов; nil означает обычный подсчет без модификаторов.
type TagSource interface {
	IsDoubled(cardID int) bool
	ClearDoubled(cardID int) bool
}

// Hand - рука игрока или дилера. Подсчет очков кешируется
// и пересчитывается только после изменения состава руки.
type Hand struct {
	Cards []Card `json:"cards"`

	tags  TagSource
	total int
	soft  bool
	dirty bool
}

// NewHand создает пустую руку. tags может быть nil.
func NewHand(tags TagSource) *Hand {
	return &Hand{
		Cards: make([]Card, 0, 8),
		tags:  tags,
	}
}

// Add добавляет карту в руку
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
	h.dirty = true
}

// Clear опустошает руку и возвращает сброшенные карты.
// DOUBLED живет одну руку: тег снимается со всех карт, покидающих руку.
func (h *Hand) Clear() []Card {
	out := h.Cards
	if h.tags != nil {
		for _, c := range out {
			h.tags.ClearDoubled(c.CardID)
		}
	}
	h.Cards = make([]Card, 0, 8)
	h.dirty = true
	return out
}

// Size - количество карт в руке
func (h *Hand) Size() int {
	return len(h.Cards)
}

// Invalidate принудительно сбрасывает кеш очков.
// Вызывается, когда теги карты изменились без изменения состава руки.
func (h *Hand) Invalidate() {
	h.dirty = true
}

// cardValue - вклад карты с учетом тега DOUBLED.
// Удвоение применяется к сырому достоинству с потолком 10 до удвоения;
// туз удваивается как 1 -> 2 и перестает быть мягким.
func (h *Hand) cardValue(c Card) (value int, softAce bool) {
	if h.tags != nil && h.tags.IsDoubled(c.CardID) {
		return c.RawRank() * 2, false
	}
	if c.Rank == RankAce {
		return 11, true
	}
	return c.BaseValue(), false
}

// recompute пересчитывает очки: тузы считаются по 11 и понижаются до 1
// по одному, пока сумма превышает 21.
func (h *Hand) recompute() {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		v, soft := h.cardValue(c)
		total += v
		if soft {
			aces++
		}
	}
	for total > BlackjackTarget && aces > 0 {
		total -= 10
		aces--
	}
	h.total = total
	h.soft = aces > 0
	h.dirty = false
}

// Total - сумма очков руки
func (h *Hand) Total() int {
	if h.dirty {
		h.recompute()
	}
	return h.total
}

// IsSoft - в руке есть туз, который все еще считается как 11
func (h *Hand) IsSoft() bool {
	if h.dirty {
		h.recompute()
	}
	return h.soft
}

// IsBust - перебор
func (h *Hand) IsBust() bool {
	return h.Total() > BlackjackTarget
}

// IsBlackjack - натуральный блэкджек: ровно две карты на 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total() == BlackjackTarget
}

// VisibleScore - очки только открытых карт (для показа руки дилера до вскрытия)
func (h *Hand) VisibleScore() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		if !c.FaceUp {
			continue
		}
		v, soft := h.cardValue(c)
		total += v
		if soft {
			aces++
		}
	}
	for total > BlackjackTarget && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// RevealAll открывает все карты руки
func (h *Hand) RevealAll() {
	for i := range h.Cards {
		h.Cards[i].FaceUp = true
	}
}
