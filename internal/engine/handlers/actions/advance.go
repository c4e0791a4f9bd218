package actions

import (
	"fiftytwo-server/internal/engine/handlers"
)

// HandleAdvance пропускает превью, закрывает событие после выбора
// или отменяет прицеливание
func HandleAdvance(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.Advance()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
