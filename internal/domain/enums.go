package domain

import "fmt"

// GameState - верхнеуровневое состояние машины состояний игры
type GameState uint8

const (
	StateMenu GameState = iota
	StateBetting
	StateDealing
	StatePlayerTurn
	StateTargeting // Выбор карты-цели для активной способности
	StateDealerTurn
	StateShowdown
	StateRoundEnd
	StateCombatVictory
	StateEvent        // Нарративное событие
	StateEventPreview // Превью события (авто-переход)
	StateCombatPreview
	StateGameOver
)

var gameStateNames = map[GameState]string{
	StateMenu:          "MENU",
	StateBetting:       "BETTING",
	StateDealing:       "DEALING",
	StatePlayerTurn:    "PLAYER_TURN",
	StateTargeting:     "TARGETING",
	StateDealerTurn:    "DEALER_TURN",
	StateShowdown:      "SHOWDOWN",
	StateRoundEnd:      "ROUND_END",
	StateCombatVictory: "COMBAT_VICTORY",
	StateEvent:         "EVENT",
	StateEventPreview:  "EVENT_PREVIEW",
	StateCombatPreview: "COMBAT_PREVIEW",
	StateGameOver:      "GAME_OVER",
}

func (s GameState) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameState(%d)", uint8(s))
}

// PlayerAction - действие игрока в раунде блэкджека.
// SPLIT зарезервирован: валидируется, но всегда отклоняется.
type PlayerAction uint8

const (
	ActionNone PlayerAction = iota
	ActionHit
	ActionStand
	ActionDoubleDown
	ActionSplit
)

var playerActionNames = map[PlayerAction]string{
	ActionNone:       "NONE",
	ActionHit:        "HIT",
	ActionStand:      "STAND",
	ActionDoubleDown: "DOUBLE_DOWN",
	ActionSplit:      "SPLIT",
}

var playerActionValues = map[string]PlayerAction{
	"NONE":        ActionNone,
	"HIT":         ActionHit,
	"STAND":       ActionStand,
	"DOUBLE_DOWN": ActionDoubleDown,
	"SPLIT":       ActionSplit,
}

func (a PlayerAction) String() string {
	if name, ok := playerActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("PlayerAction(%d)", uint8(a))
}

// ParsePlayerAction разбирает строковое имя действия
func ParsePlayerAction(s string) (PlayerAction, error) {
	if a, ok := playerActionValues[s]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown player action: %q", s)
}

// DealerPhase - вложенная фаза хода дилера
type DealerPhase uint8

const (
	DealerCheckReveal DealerPhase = iota // Вскрытие закрытой карты
	DealerDecide                         // Добирать или останавливаться
	DealerAction                         // Вытягивание карты
	DealerWait                           // Пауза между действиями
)

var dealerPhaseNames = map[DealerPhase]string{
	DealerCheckReveal: "CHECK_REVEAL",
	DealerDecide:      "DECIDE",
	DealerAction:      "ACTION",
	DealerWait:        "WAIT",
}

func (p DealerPhase) String() string {
	if name, ok := dealerPhaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("DealerPhase(%d)", uint8(p))
}

// RoundOutcome - исход раунда блэкджека на вскрытии
type RoundOutcome uint8

const (
	OutcomeNone RoundOutcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomePush
	OutcomeBlackjack
)

var roundOutcomeNames = map[RoundOutcome]string{
	OutcomeNone:      "NONE",
	OutcomeWin:       "PLAYER_WIN",
	OutcomeLoss:      "PLAYER_LOSS",
	OutcomePush:      "PLAYER_PUSH",
	OutcomeBlackjack: "PLAYER_BLACKJACK",
}

func (o RoundOutcome) String() string {
	if name, ok := roundOutcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("RoundOutcome(%d)", uint8(o))
}

// EncounterType - тип узла акта. EVENT - нарративная остановка между боями.
type EncounterType uint8

const (
	EncounterNormal EncounterType = iota
	EncounterElite
	EncounterBoss
	EncounterEvent
)

var encounterTypeNames = map[EncounterType]string{
	EncounterNormal: "NORMAL",
	EncounterElite:  "ELITE",
	EncounterBoss:   "BOSS",
	EncounterEvent:  "EVENT",
}

var encounterTypeValues = map[string]EncounterType{
	"NORMAL": EncounterNormal,
	"ELITE":  EncounterElite,
	"BOSS":   EncounterBoss,
	"EVENT":  EncounterEvent,
}

func (t EncounterType) String() string {
	if name, ok := encounterTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EncounterType(%d)", uint8(t))
}

// ParseEncounterType разбирает тип узла из контента
func ParseEncounterType(s string) (EncounterType, error) {
	if t, ok := encounterTypeValues[s]; ok {
		return t, nil
	}
	return EncounterNormal, fmt.Errorf("unknown encounter type: %q", s)
}

// PlayerClass - класс персонажа
type PlayerClass uint8

const (
	ClassDegenerate PlayerClass = iota
	ClassDealer
	ClassDetective
	ClassDreamer
)

var playerClassNames = map[PlayerClass]string{
	ClassDegenerate: "DEGENERATE",
	ClassDealer:     "DEALER",
	ClassDetective:  "DETECTIVE",
	ClassDreamer:    "DREAMER",
}

var playerClassValues = map[string]PlayerClass{
	"DEGENERATE": ClassDegenerate,
	"DEALER":     ClassDealer,
	"DETECTIVE":  ClassDetective,
	"DREAMER":    ClassDreamer,
}

func (c PlayerClass) String() string {
	if name, ok := playerClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("PlayerClass(%d)", uint8(c))
}

// ParsePlayerClass разбирает имя класса
func ParsePlayerClass(s string) (PlayerClass, error) {
	if c, ok := playerClassValues[s]; ok {
		return c, nil
	}
	return ClassDegenerate, fmt.Errorf("unknown player class: %q", s)
}
