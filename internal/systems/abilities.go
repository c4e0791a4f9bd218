package systems

import "fiftytwo-server/internal/domain"

// Рантайм способностей врага: декларативные триггеры и списки эффектов
// из контент-файлов интерпретируются здесь. За одну проверку способность
// срабатывает не более одного раза; сработав, уходит на кулдаун.

// TickAbilities прогоняет все способности врага по событию шины.
// lastAction - последнее действие игрока для триггера ON_ACTION
// (domain.ActionNone, если событие не про действие).
func TickAbilities(ctx Context, event domain.GameEvent, lastAction domain.PlayerAction) {
	if ctx.Enemy == nil || ctx.Enemy.IsDefeated() {
		return
	}
	for i := range ctx.Enemy.Template.Abilities {
		ab := &ctx.Enemy.Template.Abilities[i]
		st := &ctx.Enemy.AbilityStates[i]
		if st.CooldownCurrent > 0 {
			continue
		}
		if !triggerMatches(ctx, ab, st, event, lastAction) {
			continue
		}
		if ctx.Log != nil {
			ctx.Log.WithField("ability", ab.Name).Info("Enemy ability fired")
		}
		for _, eff := range ab.Effects {
			executeEffect(ctx, ab, eff)
		}
		st.CooldownCurrent = ab.CooldownMax
	}
}

// TickCooldowns уменьшает кулдауны всех способностей. Вызывается движком
// ровно один раз на ROUND_START.
func TickCooldowns(enemy *domain.Enemy) {
	if enemy == nil {
		return
	}
	for i := range enemy.AbilityStates {
		if enemy.AbilityStates[i].CooldownCurrent > 0 {
			enemy.AbilityStates[i].CooldownCurrent--
		}
	}
}

// triggerMatches оценивает триггер способности. Может мутировать счетчики
// и защелки в состоянии способности.
func triggerMatches(ctx Context, ab *domain.Ability, st *domain.AbilityState, event domain.GameEvent, lastAction domain.PlayerAction) bool {
	tr := ab.Trigger
	switch tr.Kind {
	case domain.TriggerPassive:
		// Потребляется агрегатором статов, в боевом цикле не срабатывает
		return false

	case domain.TriggerOnEvent:
		return event == tr.Event

	case domain.TriggerCounter:
		if event != tr.Event {
			return false
		}
		st.Counter++
		if st.Counter >= tr.CounterMax {
			st.Counter = 0
			return true
		}
		return false

	case domain.TriggerHPThreshold:
		if st.ThresholdFired {
			return false
		}
		if ctx.Enemy.HPPercent() < tr.HPPercent {
			st.ThresholdFired = true
			return true
		}
		return false

	case domain.TriggerHPSegment:
		if tr.SegmentPercent <= 0 || ctx.Enemy.MaxHP <= 0 {
			return false
		}
		// Пересеченных границ от полного HP: полный слив дает ровно
		// 100/percent срабатываний, по одному на границу
		segments := 100 / tr.SegmentPercent
		crossed := (ctx.Enemy.MaxHP - ctx.Enemy.HP) * segments / ctx.Enemy.MaxHP
		if crossed > segments {
			crossed = segments
		}
		for seg := 1; seg <= crossed; seg++ {
			if !st.SegmentsFired[seg] {
				if st.SegmentsFired == nil {
					st.SegmentsFired = make(map[int]bool)
				}
				st.SegmentsFired[seg] = true
				return true
			}
		}
		return false

	case domain.TriggerRandom:
		if event != tr.Event || ctx.Rng == nil {
			return false
		}
		return ctx.Rng.Intn(100) < tr.Chance

	case domain.TriggerOnAction:
		return lastAction != domain.ActionNone && lastAction == tr.Action
	}
	return false
}

// executeEffect выполняет одно действие из списка эффектов способности
func executeEffect(ctx Context, ab *domain.Ability, eff domain.AbilityEffect) {
	switch eff.Kind {
	case domain.EffectApplyStatus:
		if eff.Target == domain.TargetPlayer {
			ApplyStatus(ctx, eff.Status, eff.Value, eff.Duration, ab.Name)
		}

	case domain.EffectRemoveStatus:
		if eff.Target == domain.TargetPlayer {
			ctx.Player.Statuses.Clear(eff.Status)
		}

	case domain.EffectHeal:
		if eff.Target == domain.TargetEnemy {
			HealEnemy(ctx, eff.Value, ab.Name)
		}

	case domain.EffectDamage:
		switch eff.Target {
		case domain.TargetPlayer:
			DrainChips(ctx, eff.Value, "ability:"+ab.Name)
		case domain.TargetEnemy:
			DamageEnemy(ctx, eff.Value, "ability:"+ab.Name)
		}

	case domain.EffectShuffleDeck:
		if ctx.Deck != nil {
			ctx.Deck.Shuffle()
			ctx.emit(domain.EventDeckReshuffled, domain.EventPayload{Actor: ab.Name})
		}

	case domain.EffectDiscardHand:
		discardTargetHand(ctx, eff.Target)

	case domain.EffectForceHit:
		if ctx.QueueHit != nil {
			ctx.QueueHit(eff.Target)
		}

	case domain.EffectRevealHole:
		if ctx.DealerHand != nil {
			ctx.DealerHand.RevealAll()
		}

	case domain.EffectMessage:
		ctx.message(eff.Text)
	}
}

// discardTargetHand сбрасывает руку цели в дискард шуза
func discardTargetHand(ctx Context, target domain.EffectTarget) {
	var h *domain.Hand
	switch target {
	case domain.TargetPlayer:
		h = ctx.Player.Hand
	case domain.TargetHand, domain.TargetEnemy:
		h = ctx.DealerHand
	}
	if h == nil || ctx.Deck == nil {
		return
	}
	for _, c := range h.Clear() {
		ctx.Deck.Discard(c)
	}
	ctx.Player.MarkStatsDirty()
}
