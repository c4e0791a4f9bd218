package actions

import (
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/pkg/api"
)

// HandleBet подтверждает ставку раунда
func HandleBet(ctx handlers.Context, p api.BetPayload) (handlers.Result, error) {
	msg, err := ctx.Game.PlaceBet(p.Amount)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}
