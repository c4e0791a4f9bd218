package domain

import "fmt"

// TriggerKind - условие срабатывания способности врага
type TriggerKind uint8

const (
	TriggerPassive     TriggerKind = iota // Не срабатывает в рантайме
	TriggerOnEvent                        // Реакция на событие шины
	TriggerCounter                        // Каждое N-е совпадающее событие
	TriggerHPThreshold                    // Однократно при падении HP ниже доли
	TriggerRandom                         // Шанс на совпадающем событии
	TriggerOnAction                       // Реакция на действие игрока
	TriggerHPSegment                      // На каждом пересечении сегмента HP
)

var triggerKindNames = map[TriggerKind]string{
	TriggerPassive:     "PASSIVE",
	TriggerOnEvent:     "ON_EVENT",
	TriggerCounter:     "COUNTER",
	TriggerHPThreshold: "HP_THRESHOLD",
	TriggerRandom:      "RANDOM",
	TriggerOnAction:    "ON_ACTION",
	TriggerHPSegment:   "HP_SEGMENT",
}

var triggerKindValues = map[string]TriggerKind{
	"PASSIVE":      TriggerPassive,
	"ON_EVENT":     TriggerOnEvent,
	"COUNTER":      TriggerCounter,
	"HP_THRESHOLD": TriggerHPThreshold,
	"RANDOM":       TriggerRandom,
	"ON_ACTION":    TriggerOnAction,
	"HP_SEGMENT":   TriggerHPSegment,
}

func (t TriggerKind) String() string {
	if name, ok := triggerKindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TriggerKind(%d)", uint8(t))
}

// ParseTriggerKind разбирает имя триггера из контента
func ParseTriggerKind(s string) (TriggerKind, error) {
	if t, ok := triggerKindValues[s]; ok {
		return t, nil
	}
	return TriggerPassive, fmt.Errorf("unknown ability trigger: %q", s)
}

// Trigger - дескриптор триггера с параметрами
type Trigger struct {
	Kind TriggerKind `json:"kind"`

	Event          GameEvent    `json:"event,omitempty"`          // ON_EVENT, COUNTER, RANDOM
	CounterMax     int          `json:"counterMax,omitempty"`     // COUNTER
	HPPercent      int          `json:"hpPercent,omitempty"`      // HP_THRESHOLD: порог в процентах
	Chance         int          `json:"chance,omitempty"`         // RANDOM: процент
	Action         PlayerAction `json:"action,omitempty"`         // ON_ACTION
	SegmentPercent int          `json:"segmentPercent,omitempty"` // HP_SEGMENT: ширина сегмента
}

// EffectKind - вид действия сработавшей способности
type EffectKind uint8

const (
	EffectApplyStatus EffectKind = iota
	EffectRemoveStatus
	EffectHeal
	EffectDamage
	EffectShuffleDeck
	EffectDiscardHand
	EffectForceHit
	EffectRevealHole
	EffectMessage
)

var effectKindNames = map[EffectKind]string{
	EffectApplyStatus:  "APPLY_STATUS",
	EffectRemoveStatus: "REMOVE_STATUS",
	EffectHeal:         "HEAL",
	EffectDamage:       "DAMAGE",
	EffectShuffleDeck:  "SHUFFLE_DECK",
	EffectDiscardHand:  "DISCARD_HAND",
	EffectForceHit:     "FORCE_HIT",
	EffectRevealHole:   "REVEAL_HOLE",
	EffectMessage:      "MESSAGE",
}

var effectKindValues = map[string]EffectKind{
	"APPLY_STATUS":  EffectApplyStatus,
	"REMOVE_STATUS": EffectRemoveStatus,
	"HEAL":          EffectHeal,
	"DAMAGE":        EffectDamage,
	"SHUFFLE_DECK":  EffectShuffleDeck,
	"DISCARD_HAND":  EffectDiscardHand,
	"FORCE_HIT":     EffectForceHit,
	"REVEAL_HOLE":   EffectRevealHole,
	"MESSAGE":       EffectMessage,
}

func (e EffectKind) String() string {
	if name, ok := effectKindNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EffectKind(%d)", uint8(e))
}

// ParseEffectKind разбирает имя эффекта из контента
func ParseEffectKind(s string) (EffectKind, error) {
	if e, ok := effectKindValues[s]; ok {
		return e, nil
	}
	return EffectMessage, fmt.Errorf("unknown ability effect: %q", s)
}

// EffectTarget - цель эффекта
type EffectTarget uint8

const (
	TargetPlayer EffectTarget = iota
	TargetEnemy
	TargetHand // Рука: для DISCARD_HAND / FORCE_HIT
)

var effectTargetNames = map[EffectTarget]string{
	TargetPlayer: "PLAYER",
	TargetEnemy:  "ENEMY",
	TargetHand:   "HAND",
}

var effectTargetValues = map[string]EffectTarget{
	"PLAYER": TargetPlayer,
	"ENEMY":  TargetEnemy,
	"HAND":   TargetHand,
}

func (t EffectTarget) String() string {
	if name, ok := effectTargetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EffectTarget(%d)", uint8(t))
}

// ParseEffectTarget разбирает цель эффекта из контента
func ParseEffectTarget(s string) (EffectTarget, error) {
	if t, ok := effectTargetValues[s]; ok {
		return t, nil
	}
	return TargetPlayer, fmt.Errorf("unknown effect target: %q", s)
}

// AbilityEffect - одно действие из упорядоченного списка эффектов способности
type AbilityEffect struct {
	Kind   EffectKind   `json:"kind"`
	Target EffectTarget `json:"target"`

	Status   StatusKind `json:"status,omitempty"` // APPLY_STATUS / REMOVE_STATUS
	Value    int        `json:"value,omitempty"`  // Урон, лечение, величина статуса
	Duration int        `json:"duration,omitempty"`
	Text     string     `json:"text,omitempty"` // MESSAGE
}

// Ability - декларативное описание способности врага.
// За одну проверку триггера способность срабатывает не более одного раза.
type Ability struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Trigger     Trigger         `json:"trigger"`
	CooldownMax int             `json:"cooldownMax"`
	Effects     []AbilityEffect `json:"effects"`
}

// AbilityState - изменяемое состояние способности в рамках боя
type AbilityState struct {
	CooldownCurrent int
	Counter         int          // Для COUNTER
	ThresholdFired  bool         // Защелка HP_THRESHOLD
	SegmentsFired   map[int]bool // Пройденные границы HP_SEGMENT; segment_percent 1 дает их сотню
}
