package domain

import (
	"errors"
	"math/rand"
)

// ErrShoeExhausted возвращается при попытке вытянуть карту из пустой колоды,
// когда сброс тоже пуст. Нормальная игра не должна доходить до этого состояния.
var ErrShoeExhausted = errors.New("shoe exhausted: draw pile and discard pile are both empty")

// DefaultReshuffleThreshold - доля колоды, при которой объявляется перетасовка
const DefaultReshuffleThreshold = 0.25

// Deck - игровая колода (шуз). Карты тянутся с хвоста среза,
// сыгранные уходят в сброс и возвращаются при пересборке.
// Deck не потокобезопасен: им владеет единственная горутина движка.
type Deck struct {
	cards   []Card
	discard []Card
	sets    int
	rng     *rand.Rand
}

// NewDeck собирает шуз из указанного числа стандартных колод и тасует его.
func NewDeck(sets int, rng *rand.Rand) *Deck {
	if sets < 1 {
		sets = 1
	}
	d := &Deck{
		cards:   make([]Card, 0, sets*CardsPerSet),
		discard: make([]Card, 0, sets*CardsPerSet),
		sets:    sets,
		rng:     rng,
	}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for s := 0; s < d.sets; s++ {
		for suit := SuitHearts; suit < SuitMax; suit++ {
			for rank := RankAce; rank < rankMax; rank++ {
				d.cards = append(d.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle тасует оставшиеся карты (Фишер-Йетс)
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw снимает верхнюю карту. Если колода пуста, сначала пересобирает её из сброса.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		if len(d.discard) == 0 {
			return Card{}, ErrShoeExhausted
		}
		d.Reset()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Discard кладет карту в стопку сброса
func (d *Deck) Discard(c Card) {
	c.FaceUp = false
	d.discard = append(d.discard, c)
}

// DiscardAll сбрасывает все карты руки разом
func (d *Deck) DiscardAll(cards []Card) {
	for _, c := range cards {
		d.Discard(c)
	}
}

// Reset возвращает сброс в колоду и тасует. Карты на руках не трогаются.
func (d *Deck) Reset() {
	d.cards = append(d.cards, d.discard...)
	d.discard = d.discard[:0]
	d.Shuffle()
}

// NeedsReshuffle сообщает, что в колоде осталось меньше порога —
// движок должен объявить перетасовку перед следующей раздачей.
func (d *Deck) NeedsReshuffle() bool {
	return len(d.cards) < int(float64(d.sets*CardsPerSet)*DefaultReshuffleThreshold)
}

// Remaining - количество карт, доступных для вытягивания
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// DiscardCount - размер стопки сброса
func (d *Deck) DiscardCount() int {
	return len(d.discard)
}

// StackTop подкладывает карты наверх колоды в указанном порядке:
// первая карта среза будет вытянута первой. Используется отладочными читами.
func (d *Deck) StackTop(cards ...Card) {
	for i := len(cards) - 1; i >= 0; i-- {
		d.cards = append(d.cards, cards[i])
	}
}
