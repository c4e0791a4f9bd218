package stats

import (
	"strings"

	"fiftytwo-server/internal/domain"
)

// DamageSource - категория источника урона для разбивки статистики
type DamageSource uint8

const (
	SourceTurnWin DamageSource = iota
	SourceTurnPush
	SourceTrinketPassive
	SourceTrinketActive
	SourceAbility
	SourceCardTag
	sourceMax
)

var damageSourceNames = map[DamageSource]string{
	SourceTurnWin:        "TURN_WIN",
	SourceTurnPush:       "TURN_PUSH",
	SourceTrinketPassive: "TRINKET_PASSIVE",
	SourceTrinketActive:  "TRINKET_ACTIVE",
	SourceAbility:        "ABILITY",
	SourceCardTag:        "CARD_TAG",
}

func (s DamageSource) String() string {
	if name, ok := damageSourceNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Peak - пиковое значение с номером хода, на котором оно зафиксировано
type Peak struct {
	Value int `json:"value"`
	Turn  int `json:"turn"`
}

// Snapshot - накопленная статистика забега
type Snapshot struct {
	CardsDrawn   int `json:"cardsDrawn"`
	TurnsPlayed  int `json:"turnsPlayed"`
	TurnsWon     int `json:"turnsWon"`
	TurnsLost    int `json:"turnsLost"`
	TurnsPushed  int `json:"turnsPushed"`
	Blackjacks   int `json:"blackjacks"`
	Busts        int `json:"busts"`
	CombatsWon   int `json:"combatsWon"`
	ChipsBet     int `json:"chipsBet"`
	ChipsWon     int `json:"chipsWon"`
	ChipsLost    int `json:"chipsLost"`
	ChipsDrained int `json:"chipsDrained"`
	Reshuffles   int `json:"reshuffles"`

	DamageDealtTotal int               `json:"damageDealtTotal"`
	DamageBySource   [sourceMax]int    `json:"-"`
	DamageBreakdown  map[string]int    `json:"damageBySource"`

	HighestChips Peak `json:"highestChips"`
	LowestChips  Peak `json:"lowestChips"`
	HighestBet   Peak `json:"highestBet"`
}

// Tracker считает статистику забега, слушая шину событий движка.
// Все счетчики монотонны, кроме пиков. Не потокобезопасен: живет в
// горутине движка.
type Tracker struct {
	snap Snapshot
}

// NewTracker создает трекер с пиками, откалиброванными на старт забега
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Handle обрабатывает одно событие шины. Источник урона распознается
// по префиксу актора: "trinket:", "active:", "ability:"; суффикс
// "_card" означает ожог от тега на карте; голые turn_win и turn_push
// приходят от резолвера выплат.
func (t *Tracker) Handle(ev domain.GameEvent, p domain.EventPayload) {
	switch ev {
	case domain.EventRoundStart:
		t.snap.TurnsPlayed++
	case domain.EventPlayerWin:
		t.snap.TurnsWon++
	case domain.EventPlayerLoss:
		t.snap.TurnsLost++
	case domain.EventPlayerPush:
		t.snap.TurnsPushed++
	case domain.EventPlayerBlackjack:
		t.snap.TurnsWon++
		t.snap.Blackjacks++
	case domain.EventPlayerBust:
		t.snap.Busts++
	case domain.EventCardDrawn:
		t.snap.CardsDrawn++
	case domain.EventCombatEnd:
		t.snap.CombatsWon++
	case domain.EventDeckReshuffled:
		t.snap.Reshuffles++
	case domain.EventChipsGained:
		t.snap.ChipsWon += p.Amount
	case domain.EventChipsLost:
		t.snap.ChipsLost += p.Amount
		if p.Actor == "chip_drain" || p.Actor == "rake" {
			t.snap.ChipsDrained += p.Amount
		}
	case domain.EventDamageDealt:
		t.snap.DamageDealtTotal += p.Amount
		t.snap.DamageBySource[classifySource(p.Actor)] += p.Amount
	}
}

// classifySource относит актора урона к категории источника
func classifySource(actor string) DamageSource {
	switch {
	case actor == "turn_win":
		return SourceTurnWin
	case actor == "turn_push":
		return SourceTurnPush
	case strings.HasPrefix(actor, "active:"):
		return SourceTrinketActive
	case strings.HasPrefix(actor, "ability:"):
		return SourceAbility
	case strings.HasSuffix(actor, "_card"):
		// cursed_card и vampiric_card: ожоги от тегов на картах
		return SourceCardTag
	}
	return SourceTrinketPassive
}

// ObserveBet фиксирует подтвержденную ставку раунда
func (t *Tracker) ObserveBet(bet int) {
	t.snap.ChipsBet += bet
	if bet > t.snap.HighestBet.Value {
		t.snap.HighestBet = Peak{Value: bet, Turn: t.snap.TurnsPlayed}
	}
}

// ObserveDouble фиксирует удвоение ставки: в сумму поставленных фишек
// попадает только добавленная половина, пик сравнивается с полной ставкой.
func (t *Tracker) ObserveDouble(total int) {
	t.snap.ChipsBet += total / 2
	if total > t.snap.HighestBet.Value {
		t.snap.HighestBet = Peak{Value: total, Turn: t.snap.TurnsPlayed}
	}
}

// ObserveChips фиксирует пики запаса фишек после расчета раунда
func (t *Tracker) ObserveChips(chips int) {
	if chips > t.snap.HighestChips.Value {
		t.snap.HighestChips = Peak{Value: chips, Turn: t.snap.TurnsPlayed}
	}
	if chips < t.snap.LowestChips.Value {
		t.snap.LowestChips = Peak{Value: chips, Turn: t.snap.TurnsPlayed}
	}
}

// Snapshot возвращает копию накопленной статистики с читаемой разбивкой урона
func (t *Tracker) Snapshot() Snapshot {
	out := t.snap
	out.DamageBreakdown = make(map[string]int, int(sourceMax))
	for s := DamageSource(0); s < sourceMax; s++ {
		out.DamageBreakdown[s.String()] = t.snap.DamageBySource[s]
	}
	return out
}

// Reset обнуляет статистику (новый забег)
func (t *Tracker) Reset() {
	t.snap = Snapshot{
		HighestChips: Peak{Value: domain.StartingChips},
		LowestChips:  Peak{Value: domain.StartingChips},
	}
}
