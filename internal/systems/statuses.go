package systems

import "fiftytwo-server/internal/domain"

// StatusesOnRoundStart применяет пораундовые статусы в начале раунда.
// CHIP_DRAIN списывает свою величину фишками.
func StatusesOnRoundStart(ctx Context) {
	if drain := ctx.Player.Statuses.Get(domain.StatusChipDrain); drain != nil {
		DrainChips(ctx, drain.Magnitude, "chip_drain")
	}
}

// StatusesOnRoundEnd уменьшает длительности и публикует истекшие статусы
func StatusesOnRoundEnd(ctx Context) {
	for _, kind := range ctx.Player.Statuses.Tick() {
		ctx.emit(domain.EventStatusExpired, domain.EventPayload{Actor: kind.String()})
	}
}

// FirstCardFaceDown - при активном TILT первая карта игрока раздается
// в закрытую
func FirstCardFaceDown(ctx Context) bool {
	return ctx.Player.Statuses.Has(domain.StatusTilt)
}
