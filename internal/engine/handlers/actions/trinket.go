package actions

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleTakeReward экипирует выпавший тринкет. Slot указывает, что
// продать на замену, когда все слоты заняты.
func HandleTakeReward(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	msg, err := ctx.Game.TakeReward(p.Slot)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}

// HandleSellReward обменивает выпавший тринкет на фишки
func HandleSellReward(ctx handlers.Context) (handlers.Result, error) {
	msg, err := ctx.Game.SellReward()
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}

// HandleSellTrinket продает экипированный тринкет
func HandleSellTrinket(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	msg, err := ctx.Game.SellTrinket(p.Slot)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
