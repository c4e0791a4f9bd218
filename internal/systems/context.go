package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

// Context - срез игрового состояния, который системы получают от движка.
// Передается по значению; все поля - ссылки на состояние, которым владеет
// горутина движка.
type Context struct {
	Player     *domain.Player
	Enemy      *domain.Enemy
	Deck       *domain.Deck
	DealerHand *domain.Hand
	Tags       *tags.Registry
	Rng        *rand.Rand

	// Emit публикует событие на шину движка
	Emit func(ev domain.GameEvent, p domain.EventPayload)

	// QueueHit ставит принудительный добор карты в очередь движка (FORCE_HIT)
	QueueHit func(target domain.EffectTarget)

	// Message выводит текст способности или тринкета в лог боя
	Message func(text string)

	Log *logrus.Entry
}

// emit безопасно публикует событие (шина может отсутствовать в тестах)
func (c Context) emit(ev domain.GameEvent, p domain.EventPayload) {
	if c.Emit != nil {
		c.Emit(ev, p)
	}
}

// message безопасно выводит текст
func (c Context) message(text string) {
	if c.Message != nil {
		c.Message(text)
	}
}
