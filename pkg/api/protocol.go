package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" игры с точки зрения клиента
// и отсылается после каждого изменения состояния.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// State текущее состояние машины состояний (BETTING, PLAYER_TURN...).
	// КЛИЕНТ ДОЛЖЕН СМОТРЕТЬ НА ЭТО ПОЛЕ, чтобы понять, какой ввод сейчас разрешен.
	State string `json:"state"`

	Player *PlayerView `json:"player,omitempty"`
	Enemy  *EnemyView  `json:"enemy,omitempty"`
	Dealer *HandView   `json:"dealer,omitempty"`

	// Deck счетчики колоды и сброса
	Deck *DeckView `json:"deck,omitempty"`

	// Round данные текущего раунда (ставка, исход, разбор урона)
	Round *RoundView `json:"round,omitempty"`

	// Act прогресс по акту (номер боя, тип следующего столкновения)
	Act *ActView `json:"act,omitempty"`

	// Event активное нарративное событие, если State = EVENT
	Event *EventView `json:"event,omitempty"`

	// Reward выбор награды после боя, если State = REWARD
	Reward *RewardView `json:"reward,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого обновления.
	Logs []LogEntry `json:"logs,omitempty"`
}

// CardView это DTO одной карты. Закрытые карты отдаются без масти и
// достоинства, чтобы клиент не мог подсмотреть их в трафике.
type CardView struct {
	CardID int       `json:"cardId"`
	Suit   string    `json:"suit,omitempty"`
	Rank   string    `json:"rank,omitempty"`
	FaceUp bool      `json:"faceUp"`
	Tags   []TagView `json:"tags,omitempty"`
}

// TagView - тег карты с презентацией
type TagView struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// HandView - рука со счетом. Для дилера до вскрытия Score содержит
// только сумму открытых карт.
type HandView struct {
	Cards []CardView `json:"cards"`
	Score int        `json:"score"`
	Soft  bool       `json:"soft,omitempty"`
	Bust  bool       `json:"bust,omitempty"`
}

// PlayerView - состояние игрока. Отдельного здоровья нет:
// запас фишек и есть здоровье игрока.
type PlayerView struct {
	Class  string `json:"class"`
	Chips  int    `json:"chips"`
	Sanity int    `json:"sanity"`
	Tier   string `json:"tier"`

	Hand     *HandView     `json:"hand,omitempty"`
	Statuses []StatusView  `json:"statuses,omitempty"`
	Trinkets []TrinketView `json:"trinkets"`
	ClassKit *ClassKitView `json:"classKit,omitempty"`

	MinBet int `json:"minBet"`
	MaxBet int `json:"maxBet"`
}

// StatusView - активный статус-эффект
type StatusView struct {
	Kind      string `json:"kind"`
	Remaining int    `json:"remaining"`
	Magnitude int    `json:"magnitude,omitempty"`
	Source    string `json:"source,omitempty"`
}

// TrinketView - тринкет в слоте или в награде
type TrinketView struct {
	Slot        int         `json:"slot"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Rarity      string      `json:"rarity"`
	SellValue   int         `json:"sellValue"`
	Affixes     []AffixView `json:"affixes,omitempty"`
}

// AffixView - аффикс тринкета
type AffixView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ClassKitView - классовый тринкет
type ClassKitView struct {
	Name        string `json:"name"`
	PassiveName string `json:"passiveName"`
	ActiveName  string `json:"activeName"`
	Cooldown    int    `json:"cooldown"`
	Remaining   int    `json:"remaining"`
	Ready       bool   `json:"ready"`
}

// EnemyView - противник за столом
type EnemyView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"maxHp"`
	Portrait  string `json:"portrait"`
	IntroLine string `json:"introLine,omitempty"`
}

// DeckView - счетчики колоды
type DeckView struct {
	Remaining int  `json:"remaining"`
	Discard   int  `json:"discard"`
	Reshuffle bool `json:"reshuffle"` // Перед следующей раздачей будет перетасовка
}

// RoundView - данные текущего/последнего раунда
type RoundView struct {
	Bet     int    `json:"bet"`
	Doubled bool   `json:"doubled,omitempty"`
	Outcome string `json:"outcome,omitempty"`

	Damage *DamageView `json:"damage,omitempty"`
}

// DamageView - разбор нанесенного урона для реплея на клиенте
type DamageView struct {
	Base         int  `json:"base"`
	PercentBonus int  `json:"percentBonus,omitempty"`
	Crit         bool `json:"crit,omitempty"`
	Flat         int  `json:"flat,omitempty"`
	Final        int  `json:"final"`
}

// ActView - прогресс по акту
type ActView struct {
	Encounter int    `json:"encounter"` // Номер текущего боя, с единицы
	Total     int    `json:"total"`
	NextType  string `json:"nextType,omitempty"` // Тип следующего столкновения
}

// EventView - нарративное событие
type EventView struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	Choices    []ChoiceView `json:"choices"`
	RerollCost int          `json:"rerollCost"`
	ResultText string       `json:"resultText,omitempty"`
}

// ChoiceView - вариант события. Заблокированные варианты показываются,
// но помечены недоступными вместе с текстом требования.
type ChoiceView struct {
	Text        string `json:"text"`
	Available   bool   `json:"available"`
	Requirement string `json:"requirement,omitempty"`
}

// RewardView - выбор награды после боя
type RewardView struct {
	Trinket *TrinketView `json:"trinket,omitempty"`
	Chips   int          `json:"chips"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, EVENT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии. Обязателен только для первого сообщения.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// BetPayload - размер ставки для действия BET
type BetPayload struct {
	Amount int `json:"amount"`
}

// ClassPayload - выбор класса при старте забега
type ClassPayload struct {
	Class string `json:"class"`
}

// TargetPayload - карта-цель для активной способности
type TargetPayload struct {
	CardID int `json:"cardId"`
}

// ChoicePayload - индекс варианта нарративного события
type ChoicePayload struct {
	Index int `json:"index"`
}

// SlotPayload - слот тринкета (экипировка, продажа)
type SlotPayload struct {
	Slot int `json:"slot"`
}

// CheatPayload - отладочные читы (только при включенном debug-режиме)
type CheatPayload struct {
	Chips   int   `json:"chips,omitempty"`
	Sanity  int   `json:"sanity,omitempty"`
	EnemyHP int   `json:"enemyHp,omitempty"`
	Cards   []int `json:"cards,omitempty"` // card_id сверху колоды

	Tag      string `json:"tag,omitempty"`      // Тег для TagCards
	TagCards []int  `json:"tagCards,omitempty"` // card_id под тег

	Status         string `json:"status,omitempty"` // Статус на игрока
	StatusValue    int    `json:"statusValue,omitempty"`
	StatusDuration int    `json:"statusDuration,omitempty"`

	Event string `json:"event,omitempty"` // ID нарративного события
}
