package domain

import "fmt"

// GameEvent - тип игрового события для шины.
// Подписчики (теги, тринкеты, способности врагов, статистика) реагируют на них.
type GameEvent uint8

const (
	EventNone GameEvent = iota
	EventCombatStart
	EventCombatEnd
	EventPlayerWin
	EventPlayerLoss
	EventPlayerPush
	EventPlayerBust
	EventPlayerBlackjack
	EventCardDrawn
	EventPlayerHit
	EventPlayerStand
	EventPlayerDouble
	EventRoundStart
	EventRoundEnd
	EventDeckReshuffled
	EventDamageDealt // Урон врагу
	EventDamageTaken // Урон игроку (потеря фишек от способностей)
	EventChipsGained
	EventChipsLost
	EventStatusApplied
	EventStatusExpired
	EventTrinketTriggered
	EventEnemyHealed
	EventEnemyDefeated
	EventPlayerDefeated
	EventSanityChanged
	gameEventMax
)

var gameEventNames = map[GameEvent]string{
	EventNone:             "NONE",
	EventCombatStart:      "COMBAT_START",
	EventCombatEnd:        "COMBAT_END",
	EventPlayerWin:        "PLAYER_WIN",
	EventPlayerLoss:       "PLAYER_LOSS",
	EventPlayerPush:       "PLAYER_PUSH",
	EventPlayerBust:       "PLAYER_BUST",
	EventPlayerBlackjack:  "PLAYER_BLACKJACK",
	EventCardDrawn:        "CARD_DRAWN",
	EventPlayerHit:        "PLAYER_HIT",
	EventPlayerStand:      "PLAYER_STAND",
	EventPlayerDouble:     "PLAYER_DOUBLE",
	EventRoundStart:       "ROUND_START",
	EventRoundEnd:         "ROUND_END",
	EventDeckReshuffled:   "DECK_RESHUFFLED",
	EventDamageDealt:      "DAMAGE_DEALT",
	EventDamageTaken:      "DAMAGE_TAKEN",
	EventChipsGained:      "CHIPS_GAINED",
	EventChipsLost:        "CHIPS_LOST",
	EventStatusApplied:    "STATUS_APPLIED",
	EventStatusExpired:    "STATUS_EXPIRED",
	EventTrinketTriggered: "TRINKET_TRIGGERED",
	EventEnemyHealed:      "ENEMY_HEALED",
	EventEnemyDefeated:    "ENEMY_DEFEATED",
	EventPlayerDefeated:   "PLAYER_DEFEATED",
	EventSanityChanged:    "SANITY_CHANGED",
}

var gameEventValues = func() map[string]GameEvent {
	m := make(map[string]GameEvent, len(gameEventNames))
	for k, v := range gameEventNames {
		m[v] = k
	}
	return m
}()

func (e GameEvent) String() string {
	if name, ok := gameEventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("GameEvent(%d)", uint8(e))
}

// ParseGameEvent разбирает имя события (используется загрузчиками контента)
func ParseGameEvent(s string) (GameEvent, error) {
	if e, ok := gameEventValues[s]; ok {
		return e, nil
	}
	return EventNone, fmt.Errorf("unknown game event: %q", s)
}

// GameEventCount - количество определенных событий
func GameEventCount() int {
	return int(gameEventMax)
}

// EventPayload - данные, сопровождающие событие на шине.
// Смысл числовых полей зависит от типа события.
type EventPayload struct {
	Amount int    // Урон, фишки, величина ставки
	CardID int    // Для CARD_DRAWN; -1 если неприменимо
	Actor  string // Имя источника
}
