package actions

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleNewRun начинает забег выбранным классом
func HandleNewRun(ctx handlers.Context, p api.ClassPayload) (handlers.Result, error) {
	msg, err := ctx.Game.StartRun(p.Class)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
