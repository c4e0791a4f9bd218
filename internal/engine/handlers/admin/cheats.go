package admin

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleCheat правит состояние игры напрямую. Регистрируется только
// при включенном debug-режиме.
func HandleCheat(ctx handlers.Context, p api.CheatPayload) (handlers.Result, error) {
	msg, err := ctx.Game.ApplyCheat(p)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
