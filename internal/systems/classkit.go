package systems

import (
	"errors"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// Классовые тринкеты зашиты в код: по одному на класс, пассив на событии
// шины плюс активка с кулдауном. Каждое использование активки наращивает
// бонус пассивного урона.

var (
	ErrActiveNotReady = errors.New("class active is on cooldown")
	ErrBadTarget      = errors.New("invalid target for class active")
	ErrCannotDouble   = errors.New("card cannot carry the doubled tag")
)

// NewClassKit создает классовый тринкет для выбранного класса
func NewClassKit(class domain.PlayerClass) *domain.ClassTrinket {
	switch class {
	case domain.ClassDegenerate:
		return &domain.ClassTrinket{
			Name:             "Loaded Dice",
			PassiveName:      "Reckless Payoff",
			ActiveName:       "Double Down",
			Cooldown:         3,
			PassiveThreshold: 15,
			PassiveDamage:    10,
		}
	case domain.ClassDealer:
		return &domain.ClassTrinket{
			Name:             "Marked Shoe",
			PassiveName:      "House Cut",
			ActiveName:       "Stack the Deck",
			Cooldown:         4,
			PassiveDamage:    8,
		}
	case domain.ClassDetective:
		return &domain.ClassTrinket{
			Name:             "Cracked Monocle",
			PassiveName:      "Card Counting",
			ActiveName:       "Peek",
			Cooldown:         3,
			PassiveThreshold: 20,
			PassiveDamage:    12,
		}
	case domain.ClassDreamer:
		return &domain.ClassTrinket{
			Name:             "Lucid Talisman",
			PassiveName:      "Sweet Dreams",
			ActiveName:       "Wake Up",
			Cooldown:         5,
			PassiveDamage:    6,
		}
	}
	return nil
}

// TickClassKit уменьшает кулдаун активки. Вызывается на ROUND_START.
func TickClassKit(kit *domain.ClassTrinket) {
	if kit != nil && kit.Remaining > 0 {
		kit.Remaining--
	}
}

// ClassPassiveOnEvent прогоняет пассив классового тринкета по событию шины
func ClassPassiveOnEvent(ctx Context, event domain.GameEvent) {
	kit := ctx.Player.ClassKit
	if kit == nil {
		return
	}
	switch ctx.Player.Class {
	case domain.ClassDegenerate:
		// Reckless Payoff: STAND на сумме от порога бьет врага
		if event == domain.EventPlayerStand && ctx.Player.Hand.Total() >= kit.PassiveThreshold {
			dmg := kit.PassiveDamage + kit.PassiveBonus
			DamageEnemy(ctx, dmg, kit.PassiveName)
			ctx.message("Reckless Payoff strikes!")
		}

	case domain.ClassDealer:
		// House Cut: перетасовка колоды работает на игрока
		if event == domain.EventDeckReshuffled {
			dmg := kit.PassiveDamage + kit.PassiveBonus
			DamageEnemy(ctx, dmg, kit.PassiveName)
		}

	case domain.ClassDetective:
		// Card Counting: блэкджек добивает сильнее
		if event == domain.EventPlayerBlackjack {
			dmg := kit.PassiveDamage + kit.PassiveBonus
			DamageEnemy(ctx, dmg, kit.PassiveName)
		}

	case domain.ClassDreamer:
		// Sweet Dreams: ничья возвращает немного рассудка
		if event == domain.EventPlayerPush {
			ChangeSanity(ctx, kit.PassiveDamage+kit.PassiveBonus, kit.PassiveName)
		}
	}
}

// ClassActiveTargetsCard сообщает, требует ли активка класса выбора карты
func ClassActiveTargetsCard(class domain.PlayerClass) bool {
	switch class {
	case domain.ClassDegenerate, domain.ClassDetective:
		return true
	}
	return false
}

// UseClassActive применяет активку классового тринкета.
// cardID задается только для активок с выбором карты.
func UseClassActive(ctx Context, cardID int) error {
	kit := ctx.Player.ClassKit
	if kit == nil {
		return ErrActiveNotReady
	}
	if !kit.Ready() {
		return ErrActiveNotReady
	}

	switch ctx.Player.Class {
	case domain.ClassDegenerate:
		if err := doubleDown(ctx, cardID); err != nil {
			return err
		}

	case domain.ClassDealer:
		if ctx.Deck != nil {
			ctx.Deck.Shuffle()
			ctx.emit(domain.EventDeckReshuffled, domain.EventPayload{Actor: kit.ActiveName})
		}

	case domain.ClassDetective:
		// Peek: вскрыть карту дилера
		if ctx.DealerHand != nil {
			ctx.DealerHand.RevealAll()
		}

	case domain.ClassDreamer:
		ChangeSanity(ctx, 15, kit.ActiveName)
	}

	kit.Remaining = kit.Cooldown
	kit.UseCount++
	kit.PassiveBonus = kit.UseCount * 2
	return nil
}

// doubleDown вешает DOUBLED на открытую карту руки игрока.
// Удваивать можно только достоинства до девятки включительно.
func doubleDown(ctx Context, cardID int) error {
	var target *domain.Card
	for i := range ctx.Player.Hand.Cards {
		c := &ctx.Player.Hand.Cards[i]
		if c.CardID == cardID && c.FaceUp {
			target = c
			break
		}
	}
	if target == nil {
		return ErrBadTarget
	}
	if target.RawRank() >= domain.DoubleCapRank {
		return ErrCannotDouble
	}
	if ctx.Tags == nil {
		return ErrBadTarget
	}
	ctx.Tags.Add(cardID, tags.Doubled)
	ctx.Player.Hand.Invalidate()
	ctx.Player.MarkStatsDirty()
	return nil
}
