package handlers

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"fiftytwo-server/pkg/api"
)

// Table описывает стол, за которым сидит игрок. GameService передает
// сюда игру сессии; хендлеры не знают о движке ничего, кроме этого
// контракта.
type Table interface {
	StartRun(class string) (string, error)
	PlaceBet(amount int) (string, error)
	Hit() (string, error)
	Stand() (string, error)
	DoubleDown() (string, error)
	Split() (string, error)
	UseActive(cardID int) (string, error)
	ChooseOption(index int) (string, error)
	RerollEvent() (string, error)
	Advance() (string, error)
	TakeReward(slot int) (string, error)
	SellReward() (string, error)
	SellTrinket(slot int) (string, error)
	ApplyCheat(p api.CheatPayload) (string, error)
}

// Context передает хендлеру стол и логгер сессии
type Context struct {
	Game Table
	Log  *logrus.Entry
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, EVENT, SPEECH)
}

// HandlerFunc - это контракт для любой команды (BET, HIT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
