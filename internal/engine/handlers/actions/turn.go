package actions

import (
	"fiftytwo-server/internal/engine/handlers"
)

// Действия хода игрока. Результаты переборов и вскрытий игра пишет
// в лог сама, поэтому пустое сообщение здесь - норма.

func HandleHit(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.Hit()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}

func HandleStand(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.Stand()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}

func HandleDoubleDown(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.DoubleDown()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}

func HandleSplit(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.Split()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}
