package agent

import (
	"encoding/json"
	"log"

	"fiftytwo-server/internal/engine"
	"fiftytwo-server/pkg/api"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Этот код является примером ВНЕШНЕГО клиента, который подключается к серверу
// так же, как и обычный игрок через WebSocket. Он получает обновления стола
// и на их основе принимает решение, какую команду отправить обратно.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе сервера, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. При получении обновления смотрит на State и отвечает разрешенной командой.
//
// Стратегия нарочно примитивная: минимальная ставка, базовый блэкджек
// (добор до 17), первый доступный вариант в событиях. Этого достаточно,
// чтобы прогнать весь забег без человека и поймать регрессии конечного автомата.
type Bot struct {
	SessionID string
	Service   *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox     chan api.ServerResponse

	lastState string
}

func NewBot(sessionID string, service *engine.GameService) *Bot {
	log.Printf("[BOT] Creating agent for session %s", sessionID)
	return &Bot{
		SessionID: sessionID,
		Service:   service,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox: service.Hub.Register(sessionID),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.SessionID)

	// Первое сообщение создает сессию на сервере.
	b.sendCommand("NEW_RUN", api.ClassPayload{Class: "DEGENERATE"})

	for update := range b.Inbox {
		// Реагируем только на смену состояния, иначе бот зациклится
		// на повторных UPDATE внутри одного и того же состояния.
		if update.State == b.lastState {
			continue
		}
		b.lastState = update.State
		b.makeMove(update)
	}
	log.Printf("[BOT] Agent for %s shut down.", b.SessionID)
}

// makeMove — это мозг бота. Он принимает решение на основе состояния стола.
func (b *Bot) makeMove(state api.ServerResponse) {
	switch state.State {
	case "MENU", "GAME_OVER":
		b.sendCommand("NEW_RUN", api.ClassPayload{Class: "DEGENERATE"})

	case "BETTING":
		bet := 5
		if state.Player != nil && state.Player.MinBet > bet {
			bet = state.Player.MinBet
		}
		if state.Player != nil && state.Player.Chips < bet {
			bet = state.Player.Chips
		}
		b.sendCommand("BET", api.BetPayload{Amount: bet})

	case "PLAYER_TURN":
		// Базовая стратегия: добираем до 17, дальше стоим.
		if state.Player != nil && state.Player.Hand != nil && state.Player.Hand.Score < 17 {
			b.sendEmpty("HIT")
			// HIT без перебора не меняет State, поэтому разрешаем реакцию
			// на следующий UPDATE в том же состоянии.
			b.lastState = ""
		} else {
			b.sendEmpty("STAND")
		}

	case "EVENT":
		b.takeEventChoice(state)

	case "COMBAT_VICTORY":
		if state.Reward != nil && state.Reward.Trinket != nil {
			b.sendCommand("TAKE_REWARD", api.SlotPayload{Slot: 0})
		} else {
			b.sendEmpty("ADVANCE")
		}

	case "COMBAT_PREVIEW", "EVENT_PREVIEW":
		// Боту незачем смотреть заставки.
		b.sendEmpty("ADVANCE")
	}
	// DEALING, DEALER_TURN, SHOWDOWN, ROUND_END проигрываются сервером сами.
}

// takeEventChoice выбирает первый доступный вариант события.
// Если все варианты заперты требованиями, берем нулевой: он всегда свободен.
func (b *Bot) takeEventChoice(state api.ServerResponse) {
	index := 0
	if state.Event != nil {
		for i, ch := range state.Event.Choices {
			if ch.Available {
				index = i
				break
			}
		}
	}
	b.sendCommand("CHOICE", api.ChoicePayload{Index: index})
	// После выбора нужно еще подтвердить результат.
	b.lastState = ""
	b.sendEmpty("ADVANCE")
}

// --- Хелперы для отправки команд на сервер ---

func (b *Bot) sendCommand(action string, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[BOT %s] Error marshalling payload: %v", b.SessionID, err)
		return
	}

	cmd := api.ClientCommand{
		Action:  action,
		Payload: payloadBytes,
		Token:   b.SessionID,
	}
	if err := b.Service.ProcessCommand(b.SessionID, cmd); err != nil {
		log.Printf("[BOT %s] Command %s rejected: %v", b.SessionID, action, err)
	}
}

func (b *Bot) sendEmpty(action string) {
	cmd := api.ClientCommand{
		Action: action,
		Token:  b.SessionID,
	}
	if err := b.Service.ProcessCommand(b.SessionID, cmd); err != nil {
		log.Printf("[BOT %s] Command %s rejected: %v", b.SessionID, action, err)
	}
}
