package domain

import "fmt"

// CardSuit - масть карты (порядок совпадает с нумерацией card_id: 13 карт на масть)
type CardSuit uint8

const (
	SuitHearts CardSuit = iota // ♥
	SuitDiamonds
	SuitClubs
	SuitSpades
	SuitMax
)

// CardRank - достоинство карты. Туз = 1, король = 13.
type CardRank uint8

const (
	RankAce CardRank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	rankMax
)

// CardsPerSet - количество карт в одной стандартной колоде
const CardsPerSet = 52

// Card - карта как value-тип. Карты свободно копируются;
// идентичность для реестра тегов определяется через CardID (0..51).
// Экранные координаты нужны только клиенту и не участвуют в игровой логике.
type Card struct {
	CardID int      `json:"cardId"` // 0-51, стабилен между копиями
	Suit   CardSuit `json:"suit"`
	Rank   CardRank `json:"rank"`
	FaceUp bool     `json:"faceUp"`

	// Визуальное состояние (только для рендера на клиенте)
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Texture string `json:"texture,omitempty"` // Ключ текстуры для клиента
}

// NewCard создает карту и вычисляет её card_id из масти и достоинства.
func NewCard(suit CardSuit, rank CardRank) Card {
	return Card{
		CardID: MakeCardID(suit, rank),
		Suit:   suit,
		Rank:   rank,
	}
}

// MakeCardID упаковывает (масть, достоинство) в идентификатор 0..51
func MakeCardID(suit CardSuit, rank CardRank) int {
	return int(suit)*13 + int(rank) - 1
}

// CardFromID распаковывает card_id обратно в карту
func CardFromID(id int) Card {
	return Card{
		CardID: id,
		Suit:   CardSuit(id / 13),
		Rank:   CardRank(id%13 + 1),
	}
}

// BaseValue - базовый вклад карты в очки блэкджека.
// Картинки = 10, туз считается как 11 (понижение до 1 делает Hand).
func (c Card) BaseValue() int {
	switch {
	case c.Rank == RankAce:
		return 11
	case c.Rank >= RankTen:
		return 10
	default:
		return int(c.Rank)
	}
}

// RawRank - достоинство с ограничением в 10 (для тега DOUBLED)
func (c Card) RawRank() int {
	if c.Rank >= RankTen {
		return 10
	}
	return int(c.Rank)
}

func (s CardSuit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	case SuitSpades:
		return "Spades"
	}
	return "Unknown"
}

func (r CardRank) String() string {
	switch r {
	case RankAce:
		return "Ace"
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// String реализует Stringer: "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
