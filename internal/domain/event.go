package domain

import (
	"fmt"

	"fiftytwo-server/internal/tags"
)

// ChoicesPerEvent - каждое нарративное событие предлагает ровно три выбора
const ChoicesPerEvent = 3

// RerollBaseCost - базовая цена реролла событий, удваивается с каждым рероллом
const RerollBaseCost = 50

// RequirementType - условие доступности выбора в событии
type RequirementType uint8

const (
	RequireNone RequirementType = iota
	RequireTagCount
	RequireSanityThreshold
	RequireChipsThreshold
	RequireHPThreshold
	RequireTrinket
)

var requirementNames = map[RequirementType]string{
	RequireNone:            "NONE",
	RequireTagCount:        "TAG_COUNT",
	RequireSanityThreshold: "SANITY_THRESHOLD",
	RequireChipsThreshold:  "CHIPS_THRESHOLD",
	RequireHPThreshold:     "HP_THRESHOLD",
	RequireTrinket:         "TRINKET",
}

var requirementValues = func() map[string]RequirementType {
	m := make(map[string]RequirementType, len(requirementNames))
	for k, v := range requirementNames {
		m[v] = k
	}
	return m
}()

func (r RequirementType) String() string {
	if name, ok := requirementNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RequirementType(%d)", uint8(r))
}

// ParseRequirementType разбирает имя условия из контента
func ParseRequirementType(s string) (RequirementType, error) {
	if r, ok := requirementValues[s]; ok {
		return r, nil
	}
	return RequireNone, fmt.Errorf("unknown requirement type: %q", s)
}

// TagStrategy - стратегия выбора карт для навешивания тега
type TagStrategy uint8

const (
	StrategyRandomCard TagStrategy = iota
	StrategyHighestUntagged
	StrategyLowestUntagged
	StrategySuitHearts
	StrategySuitDiamonds
	StrategySuitClubs
	StrategySuitSpades
	StrategyRankAces
	StrategyRankFaceCards
	StrategyAllCards
)

var tagStrategyNames = map[TagStrategy]string{
	StrategyRandomCard:      "RANDOM_CARD",
	StrategyHighestUntagged: "HIGHEST_UNTAGGED",
	StrategyLowestUntagged:  "LOWEST_UNTAGGED",
	StrategySuitHearts:      "SUIT_H",
	StrategySuitDiamonds:    "SUIT_D",
	StrategySuitClubs:       "SUIT_C",
	StrategySuitSpades:      "SUIT_S",
	StrategyRankAces:        "RANK_ACES",
	StrategyRankFaceCards:   "RANK_FACE_CARDS",
	StrategyAllCards:        "ALL_CARDS",
}

var tagStrategyValues = func() map[string]TagStrategy {
	m := make(map[string]TagStrategy, len(tagStrategyNames))
	for k, v := range tagStrategyNames {
		m[v] = k
	}
	return m
}()

func (t TagStrategy) String() string {
	if name, ok := tagStrategyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TagStrategy(%d)", uint8(t))
}

// ParseTagStrategy разбирает имя стратегии из контента
func ParseTagStrategy(s string) (TagStrategy, error) {
	if t, ok := tagStrategyValues[s]; ok {
		return t, nil
	}
	return StrategyRandomCard, fmt.Errorf("unknown tag strategy: %q", s)
}

// ChoiceRequirement - условие для разблокировки выбора
type ChoiceRequirement struct {
	Type      RequirementType `json:"type"`
	Tag       tags.Kind       `json:"tag,omitempty"`      // TAG_COUNT
	Threshold int             `json:"threshold,omitempty"` // TAG_COUNT / *_THRESHOLD
	Trinket   string          `json:"trinket,omitempty"`   // TRINKET: ключ шаблона
}

// ChoiceOutcome - последствия выбора. Применяются в фиксированном порядке:
// фишки, рассудок, теги, тринкет, множитель здоровья следующего врага.
type ChoiceOutcome struct {
	ChipsDelta  int `json:"chipsDelta,omitempty"`
	SanityDelta int `json:"sanityDelta,omitempty"`

	Tag      tags.Kind   `json:"tag,omitempty"`
	TagCount int         `json:"tagCount,omitempty"`
	Strategy TagStrategy `json:"strategy,omitempty"`
	HasTag   bool        `json:"hasTag,omitempty"`

	TrinketKey string `json:"trinketKey,omitempty"`

	// Множитель здоровья следующего врага в процентах (0 = без эффекта)
	NextEnemyHPPercent int `json:"nextEnemyHpPercent,omitempty"`

	ResultText string `json:"resultText"`
}

// EventChoice - один из трех выборов события
type EventChoice struct {
	Text        string            `json:"text"`
	Requirement ChoiceRequirement `json:"requirement"`
	Outcome     ChoiceOutcome     `json:"outcome"`
}

// NarrativeEvent - нарративное событие между боями
type NarrativeEvent struct {
	ID      string                       `json:"id"`
	Title   string                       `json:"title"`
	Body    string                       `json:"body"`
	Weight  int                          `json:"weight"`
	Choices [ChoicesPerEvent]EventChoice `json:"choices"`
}

// Validate проверяет инварианты события: ровно три выбора, третий закрыт условием
func (e *NarrativeEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event without id")
	}
	for i, c := range e.Choices {
		if c.Text == "" {
			return fmt.Errorf("event %s: choice %d has no text", e.ID, i)
		}
	}
	if e.Choices[2].Requirement.Type == RequireNone {
		return fmt.Errorf("event %s: third choice must carry a requirement", e.ID)
	}
	return nil
}
