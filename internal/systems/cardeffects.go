package systems

import (
	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// Мгновенные эффекты тегов при вытягивании карты. Срабатывают только на
// реальных доборах: вскрытие закрытой карты дилера эффектов не дает.

// OnCardDrawn применяет эффекты тегов вытянутой карты. Вызывается после
// публикации CARD_DRAWN и до пересчета очков руки. toPlayer - тянул ли
// игрок (вампирские фишки достаются тянущему).
func OnCardDrawn(ctx Context, c domain.Card, toPlayer bool) {
	if ctx.Tags == nil {
		return
	}
	if ctx.Tags.Has(c.CardID, tags.Cursed) {
		DamageEnemy(ctx, tags.CursedDamage, "cursed_card")
		ctx.message("The cursed card sears the enemy!")
	}
	if ctx.Tags.Has(c.CardID, tags.Vampiric) {
		DamageEnemy(ctx, tags.VampiricDamage, "vampiric_card")
		if toPlayer {
			GrantChips(ctx, tags.VampiricChips, "vampiric_card")
		}
		ctx.message("The vampiric card feeds on the enemy.")
	}
}
