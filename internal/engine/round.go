package engine

import (
	"fmt"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/systems"
)

// PlaceBet подтверждает ставку и сразу раздает карты
func (g *Game) PlaceBet(amount int) (string, error) {
	if g.State != domain.StateBetting {
		return "", fmt.Errorf("bets are closed")
	}
	if err := systems.ValidateBet(g.Player, amount); err != nil {
		return "", err
	}
	g.Player.Bet = amount
	g.Player.Doubled = false
	g.Tracker.ObserveBet(amount)
	g.Resolution = nil

	g.deal()
	return fmt.Sprintf("You bet %d chips.", amount), nil
}

// deal открывает раунд: пораундовые статусы, откат кулдаунов, две карты
// игроку, открытая и закрытая дилеру.
func (g *Game) deal() {
	g.setState(domain.StateDealing)
	ctx := g.sysCtx()

	if g.Deck.NeedsReshuffle() {
		g.reshuffle()
	}

	systems.StatusesOnRoundStart(ctx)
	systems.TickCooldowns(g.Enemy)
	systems.TickClassKit(g.Player.ClassKit)
	g.Bus.Publish(domain.EventRoundStart, domain.EventPayload{})
	if g.Player.IsDefeated() {
		// CHIP_DRAIN может добить до раздачи
		g.finishRun(false)
		return
	}

	firstDown := systems.FirstCardFaceDown(ctx)
	g.drawTo(g.Player.Hand, !firstDown, true)
	g.drawTo(g.Player.Hand, true, true)
	g.drawTo(g.DealerHand, true, false)
	g.drawTo(g.DealerHand, false, false)

	systems.AggregateStats(g.sysCtx())
	g.setState(domain.StatePlayerTurn)
	g.drainForcedHits()

	if g.Player.Hand.IsBust() {
		g.playerBust()
		return
	}
	if g.Player.Hand.IsBlackjack() {
		g.say("Blackjack!", "COMBAT")
		g.enterDealerTurn()
	}
}

// reshuffle возвращает сброс в колоду и тасует
func (g *Game) reshuffle() {
	g.Deck.Reset()
	g.Deck.Shuffle()
	g.say("The deck is reshuffled.", "INFO")
	g.Bus.Publish(domain.EventDeckReshuffled, domain.EventPayload{})
}

// drawTo вытягивает карту в руку. Пустая колода принудительно тасуется.
func (g *Game) drawTo(hand *domain.Hand, faceUp, toPlayer bool) {
	c, err := g.Deck.Draw()
	if err != nil {
		g.reshuffle()
		c, err = g.Deck.Draw()
		if err != nil {
			g.log.WithError(err).Error("Deck exhausted after reshuffle")
			return
		}
	}
	c.FaceUp = faceUp
	hand.Add(c)
	// Карта могла принести тег LUCKY/BRUTAL: агрегат обязан пересчитаться
	g.Player.MarkStatsDirty()

	actor := "dealer"
	if toPlayer {
		actor = "player"
	}
	g.Bus.Publish(domain.EventCardDrawn, domain.EventPayload{CardID: c.CardID, Actor: actor})
	systems.OnCardDrawn(g.sysCtx(), c, toPlayer)
	g.dirty = true
}

// Hit - игрок берет карту
func (g *Game) Hit() (string, error) {
	if g.State != domain.StatePlayerTurn {
		return "", fmt.Errorf("you cannot hit now")
	}
	g.lastAction = domain.ActionHit
	g.Bus.Publish(domain.EventPlayerHit, domain.EventPayload{})
	g.drawTo(g.Player.Hand, true, true)
	g.lastAction = domain.ActionNone
	g.drainForcedHits()

	if g.Player.Hand.IsBust() {
		g.playerBust()
		return "", nil
	}
	return fmt.Sprintf("You hit: %d.", g.Player.Hand.Total()), nil
}

// Stand - игрок останавливается, ход переходит дилеру
func (g *Game) Stand() (string, error) {
	if g.State != domain.StatePlayerTurn {
		return "", fmt.Errorf("you cannot stand now")
	}
	g.lastAction = domain.ActionStand
	g.Bus.Publish(domain.EventPlayerStand, domain.EventPayload{Amount: g.Player.Hand.Total()})
	g.lastAction = domain.ActionNone
	g.drainForcedHits()

	if g.Player.Hand.IsBust() {
		g.playerBust()
		return "", nil
	}
	g.enterDealerTurn()
	return fmt.Sprintf("You stand on %d.", g.Player.Hand.Total()), nil
}

// DoubleDown удваивает ставку ценой одной карты и автоматической
// остановки. Доступен только на двух картах и при запасе фишек,
// покрывающем удвоенную ставку.
func (g *Game) DoubleDown() (string, error) {
	if g.State != domain.StatePlayerTurn {
		return "", fmt.Errorf("you cannot double now")
	}
	if g.Player.Hand.Size() != 2 {
		return "", fmt.Errorf("double down is only allowed on the first two cards")
	}
	if g.Player.Chips < g.Player.Bet*2 {
		return "", fmt.Errorf("not enough chips to double")
	}
	g.Player.Bet *= 2
	g.Player.Doubled = true
	g.Tracker.ObserveDouble(g.Player.Bet)

	g.lastAction = domain.ActionDoubleDown
	g.Bus.Publish(domain.EventPlayerDouble, domain.EventPayload{Amount: g.Player.Bet})
	g.drawTo(g.Player.Hand, true, true)
	g.lastAction = domain.ActionNone
	g.drainForcedHits()

	if g.Player.Hand.IsBust() {
		g.playerBust()
		return "", nil
	}
	g.enterDealerTurn()
	return fmt.Sprintf("Double down: the bet is %d.", g.Player.Bet), nil
}

// Split распознается как команда, но за этим столом не предлагается
func (g *Game) Split() (string, error) {
	if g.State != domain.StatePlayerTurn {
		return "", fmt.Errorf("you cannot split now")
	}
	h := g.Player.Hand
	if h.Size() != 2 || h.Cards[0].Rank != h.Cards[1].Rank {
		return "", fmt.Errorf("split requires a pair")
	}
	return "", fmt.Errorf("the house does not offer splits")
}

// UseActive применяет активку классового тринкета. Активки с выбором
// карты сначала переводят игру в прицеливание, cardID приходит второй
// командой.
func (g *Game) UseActive(cardID int) (string, error) {
	switch g.State {
	case domain.StatePlayerTurn:
		if systems.ClassActiveTargetsCard(g.Player.Class) && cardID < 0 {
			if !g.Player.ClassKit.Ready() {
				return "", systems.ErrActiveNotReady
			}
			g.setState(domain.StateTargeting)
			return "Choose a card.", nil
		}
	case domain.StateTargeting:
	default:
		return "", fmt.Errorf("you cannot use that now")
	}

	if err := systems.UseClassActive(g.sysCtx(), cardID); err != nil {
		return "", err
	}
	g.setState(domain.StatePlayerTurn)
	g.drainForcedHits()
	if g.Player.Hand.IsBust() {
		g.playerBust()
		return "", nil
	}
	return fmt.Sprintf("%s!", g.Player.ClassKit.ActiveName), nil
}

// drainForcedHits сдает карты, навязанные способностями врага (FORCE_HIT).
// Цель ENEMY кладет карту в руку дилера, остальные - в руку игрока.
func (g *Game) drainForcedHits() {
	for len(g.forcedHits) > 0 {
		target := g.forcedHits[0]
		g.forcedHits = g.forcedHits[1:]

		if target == domain.TargetEnemy {
			g.say("The dealer is dealt an extra card!", "COMBAT")
			g.drawTo(g.DealerHand, true, false)
			continue
		}
		if g.Player.Hand.IsBust() {
			continue
		}
		g.say("A card is forced into your hand!", "COMBAT")
		g.drawTo(g.Player.Hand, true, true)
	}
}

// playerBust - перебор игрока. Дилер не доигрывает, вскрытие сразу.
func (g *Game) playerBust() {
	g.say(fmt.Sprintf("Bust! %d.", g.Player.Hand.Total()), "COMBAT")
	g.Bus.Publish(domain.EventPlayerBust, domain.EventPayload{Amount: g.Player.Hand.Total()})
	g.showdown()
}

func (g *Game) enterDealerTurn() {
	g.setState(domain.StateDealerTurn)
	g.DealerPhase = domain.DealerCheckReveal
	g.timer = g.cfg.DealerWait
}

// dealerStep выполняет одну фазу хода дилера. Темп задает таймер тика,
// между шагами выдерживается пауза DealerWait.
func (g *Game) dealerStep() {
	switch g.DealerPhase {
	case domain.DealerCheckReveal:
		g.DealerHand.RevealAll()
		g.say(fmt.Sprintf("Dealer reveals: %d.", g.DealerHand.Total()), "COMBAT")
		g.DealerPhase = domain.DealerDecide
		g.dirty = true

	case domain.DealerDecide:
		if systems.DealerShouldHit(g.DealerHand) {
			g.DealerPhase = domain.DealerAction
		} else {
			g.showdown()
		}

	case domain.DealerAction:
		g.drawTo(g.DealerHand, true, false)
		if g.DealerHand.IsBust() {
			g.say(fmt.Sprintf("Dealer busts with %d!", g.DealerHand.Total()), "COMBAT")
			g.showdown()
			return
		}
		g.DealerPhase = domain.DealerWait

	case domain.DealerWait:
		g.DealerPhase = domain.DealerDecide
	}
}

// showdown сравнивает руки и применяет исход раунда
func (g *Game) showdown() {
	g.setState(domain.StateShowdown)
	g.DealerHand.RevealAll()

	ctx := g.sysCtx()
	systems.AggregateStats(ctx)
	outcome := g.computeOutcome()
	res := systems.ResolveRound(ctx, outcome)
	g.Resolution = &res
	g.announceOutcome(res)
	g.roundEnd()
}

func (g *Game) computeOutcome() domain.RoundOutcome {
	p, d := g.Player.Hand, g.DealerHand
	switch {
	case p.IsBust():
		return domain.OutcomeLoss
	case p.IsBlackjack() && !d.IsBlackjack():
		return domain.OutcomeBlackjack
	case d.IsBust():
		return domain.OutcomeWin
	case p.Total() > d.Total():
		return domain.OutcomeWin
	case p.Total() < d.Total():
		return domain.OutcomeLoss
	}
	return domain.OutcomePush
}

func (g *Game) announceOutcome(res systems.RoundResolution) {
	switch res.Outcome {
	case domain.OutcomeWin:
		if res.Crit {
			g.say(fmt.Sprintf("Critical! You win the turn for %d damage.", res.Damage), "COMBAT")
		} else {
			g.say(fmt.Sprintf("You win the turn for %d damage.", res.Damage), "COMBAT")
		}
	case domain.OutcomeBlackjack:
		g.say(fmt.Sprintf("Blackjack! %d damage, payout 3:2.", res.Damage), "COMBAT")
	case domain.OutcomePush:
		if res.Damage > 0 {
			g.say(fmt.Sprintf("Push. You grind out %d damage.", res.Damage), "COMBAT")
		} else {
			g.say("Push. Nobody wins.", "COMBAT")
		}
	case domain.OutcomeLoss:
		if res.Refund > 0 {
			g.say(fmt.Sprintf("You lose %d chips, %d refunded.", res.Refund-res.ChipsDelta, res.Refund), "COMBAT")
		} else {
			g.say(fmt.Sprintf("You lose %d chips.", -res.ChipsDelta), "COMBAT")
		}
	}
}

// roundEnd прибирает стол и решает, куда двигаться дальше
func (g *Game) roundEnd() {
	g.setState(domain.StateRoundEnd)
	g.Bus.Publish(domain.EventRoundEnd, domain.EventPayload{})
	systems.StatusesOnRoundEnd(g.sysCtx())

	for _, c := range g.Player.Hand.Clear() {
		g.Deck.Discard(c)
	}
	for _, c := range g.DealerHand.Clear() {
		g.Deck.Discard(c)
	}
	g.Player.MarkStatsDirty()
	g.forcedHits = nil

	if g.Enemy.IsDefeated() {
		g.combatVictory()
		return
	}
	if g.Player.IsDefeated() {
		g.finishRun(false)
		return
	}
	g.Player.Bet = 0
	g.Player.Doubled = false
	g.setState(domain.StateBetting)
}
