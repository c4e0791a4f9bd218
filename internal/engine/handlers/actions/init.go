package actions

import "fiftytwo-server/internal/engine/handlers"

// HandleInit - первая команда после рукопожатия. Ничего не меняет,
// но ответ на нее несет свежий снимок состояния.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to Fifty-Two. The House is waiting.",
		MsgType: "INFO",
	}, nil
}
