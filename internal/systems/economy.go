package systems

import "fiftytwo-server/internal/domain"

// Единая точка изменения фишек, рассудка и HP врага.
// Запас фишек игрока одновременно служит здоровьем, поэтому любое
// списание проверяется на поражение. Каждая мутация публикует событие.

// GrantChips начисляет фишки игроку
func GrantChips(ctx Context, amount int, source string) {
	if amount <= 0 {
		return
	}
	ctx.Player.Chips += amount
	ctx.emit(domain.EventChipsGained, domain.EventPayload{Amount: amount, Actor: source})
}

// SpendChips списывает фишки добровольно (ставка, переброс, покупка).
// Возвращает false, если фишек не хватает; состояние не меняется.
func SpendChips(ctx Context, amount int, source string) bool {
	if amount < 0 {
		return false
	}
	if ctx.Player.Chips < amount {
		return false
	}
	ctx.Player.Chips -= amount
	ctx.emit(domain.EventChipsLost, domain.EventPayload{Amount: amount, Actor: source})
	if ctx.Player.IsDefeated() {
		ctx.emit(domain.EventPlayerDefeated, domain.EventPayload{Actor: source})
	}
	return true
}

// DrainChips принудительно отбирает фишки (статусы, способности врагов,
// проигранные ставки). Фишки могут уйти в ноль - это поражение в забеге.
// Возвращает фактически отнятое.
func DrainChips(ctx Context, amount int, source string) int {
	if amount <= 0 {
		return 0
	}
	if amount > ctx.Player.Chips {
		amount = ctx.Player.Chips
	}
	if amount == 0 {
		return 0
	}
	ctx.Player.Chips -= amount
	ctx.emit(domain.EventChipsLost, domain.EventPayload{Amount: amount, Actor: source})
	ctx.emit(domain.EventDamageTaken, domain.EventPayload{Amount: amount, Actor: source})
	if ctx.Player.IsDefeated() {
		ctx.emit(domain.EventPlayerDefeated, domain.EventPayload{Actor: source})
	}
	return amount
}

// DamageEnemy наносит урон врагу. Если активен статус RAKE, противник
// забирает свою долю фишками из уже рассчитанного итогового урона.
func DamageEnemy(ctx Context, amount int, source string) {
	if amount <= 0 || ctx.Enemy == nil || ctx.Enemy.IsDefeated() {
		return
	}
	if rake := ctx.Player.Statuses.Get(domain.StatusRake); rake != nil {
		cut := amount * rake.Magnitude / 100
		if cut > 0 {
			DrainChips(ctx, cut, "rake")
		}
	}
	ctx.Enemy.HP -= amount
	if ctx.Enemy.HP < 0 {
		ctx.Enemy.HP = 0
	}
	ctx.emit(domain.EventDamageDealt, domain.EventPayload{Amount: amount, Actor: source})
	if ctx.Enemy.IsDefeated() {
		ctx.emit(domain.EventEnemyDefeated, domain.EventPayload{Actor: ctx.Enemy.Template.ID})
	}
}

// HealEnemy восстанавливает HP врага до его максимума.
// Возвращает фактически восстановленное.
func HealEnemy(ctx Context, amount int, source string) int {
	if amount <= 0 || ctx.Enemy == nil {
		return 0
	}
	healed := amount
	if ctx.Enemy.HP+healed > ctx.Enemy.MaxHP {
		healed = ctx.Enemy.MaxHP - ctx.Enemy.HP
	}
	if healed <= 0 {
		return 0
	}
	ctx.Enemy.HP += healed
	ctx.emit(domain.EventEnemyHealed, domain.EventPayload{Amount: healed, Actor: source})
	return healed
}

// ChangeSanity сдвигает рассудок в пределах 0..100
func ChangeSanity(ctx Context, delta int, source string) {
	if delta == 0 {
		return
	}
	ctx.Player.Sanity += delta
	if ctx.Player.Sanity < 0 {
		ctx.Player.Sanity = 0
	}
	if ctx.Player.Sanity > domain.MaxSanity {
		ctx.Player.Sanity = domain.MaxSanity
	}
	ctx.emit(domain.EventSanityChanged, domain.EventPayload{Amount: delta, Actor: source})
}

// ApplyStatus накладывает статус на игрока с учетом зарядов блокировки
// дебаффов. Возвращает true, если статус дошел до игрока.
func ApplyStatus(ctx Context, kind domain.StatusKind, magnitude, duration int, source string) bool {
	if ctx.Player.DebuffBlocks > 0 {
		ctx.Player.DebuffBlocks--
		trackDebuffBlocked(ctx.Player)
		if ctx.Log != nil {
			ctx.Log.WithField("status", kind.String()).Info("Debuff blocked by trinket charge")
		}
		return false
	}
	ctx.Player.Statuses.Apply(kind, magnitude, duration, source)
	ctx.emit(domain.EventStatusApplied, domain.EventPayload{Amount: magnitude, Actor: kind.String()})
	return true
}

// trackDebuffBlocked зачисляет блок тринкету с зарядами BLOCK_DEBUFF
func trackDebuffBlocked(p *domain.Player) {
	for _, t := range p.Trinkets {
		if t == nil {
			continue
		}
		if t.Template.Primary.Effect == domain.TrinketBlockDebuff ||
			(t.Template.HasSecondary && t.Template.Secondary.Effect == domain.TrinketBlockDebuff) {
			t.Track(domain.TrackDebuffsBlocked, 1)
			return
		}
	}
}
