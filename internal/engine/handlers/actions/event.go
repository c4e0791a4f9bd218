package actions

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleChoice применяет вариант нарративного события
func HandleChoice(ctx handlers.Context, p api.ChoicePayload) (handlers.Result, error) {
	msg, err := ctx.Game.ChooseOption(p.Index)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "EVENT"}, nil
}

// HandleReroll меняет событие за фишки
func HandleReroll(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.RerollEvent()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "EVENT"}, nil
}
