package engine

import (
	"github.com/sirupsen/logrus"

	"fiftytwo-server/internal/domain"
)

// MaxBusDepth ограничивает каскады событий: способность наносит урон,
// урон будит тринкет, тринкет вешает статус и так далее. Глубже восьми
// уровней каскад обрезается с записью в лог.
const MaxBusDepth = 8

// Subscriber получает каждое опубликованное событие
type Subscriber func(ev domain.GameEvent, p domain.EventPayload)

// Bus - синхронная шина событий. Подписчики вызываются в порядке
// регистрации, прямо в горутине движка. Никакой буферизации нет:
// к возврату из Publish все реакции уже отработали.
type Bus struct {
	log   *logrus.Entry
	subs  []Subscriber
	depth int
}

func NewBus(log *logrus.Entry) *Bus {
	return &Bus{log: log}
}

// Subscribe добавляет подписчика в конец цепочки
func (b *Bus) Subscribe(fn Subscriber) {
	b.subs = append(b.subs, fn)
}

// Publish рассылает событие всем подписчикам. Вложенные публикации
// допустимы до глубины MaxBusDepth.
func (b *Bus) Publish(ev domain.GameEvent, p domain.EventPayload) {
	if b.depth >= MaxBusDepth {
		if b.log != nil {
			b.log.WithFields(logrus.Fields{
				"event": ev.String(),
				"depth": b.depth,
			}).Warn("Event cascade truncated")
		}
		return
	}
	b.depth++
	for _, fn := range b.subs {
		fn(ev, p)
	}
	b.depth--
}
