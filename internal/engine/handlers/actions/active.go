package actions

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleUseActive запускает активку классового тринкета. Если активке
// нужна карта-цель, игра переходит в прицеливание и ждет команду TARGET.
func HandleUseActive(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.UseActive(-1)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}

// HandleTarget завершает активку выбранной картой
func HandleTarget(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	msg, err := ctx.Game.UseActive(p.CardID)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}
