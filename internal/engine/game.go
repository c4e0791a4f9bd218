package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/stats"
	"fiftytwo-server/internal/systems"
	"fiftytwo-server/internal/tags"
)

// Game - один забег одного игрока. Все состояние принадлежит горутине
// движка, методы не потокобезопасны.
type Game struct {
	log *logrus.Entry
	rng *rand.Rand
	lib *content.Library
	cfg Config

	State      domain.GameState
	Player     *domain.Player
	Enemy      *domain.Enemy
	Deck       *domain.Deck
	DealerHand *domain.Hand
	Tags       *tags.Registry

	Bus     *Bus
	Tracker *stats.Tracker
	Pity    systems.PityCounters

	Run       *actRun
	nextEnemy *domain.EnemyTemplate
	// Модификатор HP следующего врага от событий, в процентах. 0 - нет.
	hpMultPercent int

	DealerPhase domain.DealerPhase
	timer       time.Duration

	lastAction domain.PlayerAction
	forcedHits []domain.EffectTarget

	// Resolution хранит разбор последнего вскрытия для клиента
	Resolution *systems.RoundResolution

	Event         *domain.NarrativeEvent
	EventResult   string
	RerollCost    int
	lastEventID   string
	eventResolved bool

	Reward      *domain.TrinketInstance
	RewardChips int
	runWon      bool
	summary     *RunSummary

	sink  func(text, logType string)
	dirty bool
}

// NewGame создает игру в главном меню. sink получает игровые сообщения
// для клиентского лога; nil допустим.
func NewGame(lib *content.Library, cfg Config, log *logrus.Entry, sink func(text, logType string)) *Game {
	g := &Game{
		log:   log,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		lib:   lib,
		cfg:   cfg,
		State: domain.StateMenu,
		sink:  sink,
	}
	g.Bus = NewBus(log)
	g.Tracker = stats.NewTracker()
	g.Tags = tags.NewRegistry()
	g.subscribe()
	return g
}

// subscribe выстраивает цепочку реакций на события. Порядок важен:
// сначала статистика фиксирует факт, потом срабатывают способности
// врага, затем тринкеты игрока и классовый пассив.
func (g *Game) subscribe() {
	g.Bus.Subscribe(g.Tracker.Handle)
	g.Bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		if g.Enemy != nil && g.Player != nil {
			systems.TickAbilities(g.sysCtx(), ev, g.lastAction)
		}
	})
	g.Bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		if g.Player != nil {
			systems.TriggerTrinkets(g.sysCtx(), ev)
		}
	})
	g.Bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		if g.Player != nil {
			systems.ClassPassiveOnEvent(g.sysCtx(), ev)
		}
	})
	g.Bus.Subscribe(func(ev domain.GameEvent, p domain.EventPayload) {
		if g.Player == nil {
			return
		}
		switch ev {
		case domain.EventChipsGained, domain.EventChipsLost:
			g.Tracker.ObserveChips(g.Player.Chips)
		}
	})
}

// sysCtx собирает срез состояния для игровых систем
func (g *Game) sysCtx() systems.Context {
	return systems.Context{
		Player:     g.Player,
		Enemy:      g.Enemy,
		Deck:       g.Deck,
		DealerHand: g.DealerHand,
		Tags:       g.Tags,
		Rng:        g.rng,
		Emit:       g.Bus.Publish,
		QueueHit:   func(tg domain.EffectTarget) { g.forcedHits = append(g.forcedHits, tg) },
		Message:    func(text string) { g.say(text, "COMBAT") },
		Log:        g.log,
	}
}

// say отправляет сообщение в клиентский лог
func (g *Game) say(text, logType string) {
	if g.sink != nil {
		g.sink(text, logType)
	}
	g.dirty = true
}

// StartRun начинает новый забег выбранным классом. Разрешен из меню
// и с экрана смерти.
func (g *Game) StartRun(className string) (string, error) {
	if g.State != domain.StateMenu && g.State != domain.StateGameOver {
		return "", fmt.Errorf("run already in progress")
	}
	class, err := domain.ParsePlayerClass(className)
	if err != nil {
		return "", err
	}

	g.Tags.Reset()
	g.Player = domain.NewPlayer(class, g.Tags)
	g.Player.ClassKit = systems.NewClassKit(class)
	g.DealerHand = domain.NewHand(g.Tags)
	g.Deck = domain.NewDeck(1, g.rng)
	g.Deck.Shuffle()
	g.Tracker.Reset()
	g.Pity = systems.PityCounters{}
	g.Enemy = nil
	g.Resolution = nil
	g.hpMultPercent = 0
	g.forcedHits = nil
	g.runWon = false
	g.Run = newActRun(1, g.lib, g.rng)

	g.log.WithField("class", class.String()).Info("Run started")
	g.advanceRun()
	return fmt.Sprintf("You sit down at the table. Class: %s.", class), nil
}

// advanceRun двигает забег к следующему узлу акта
func (g *Game) advanceRun() {
	g.Event = nil
	g.EventResult = ""
	g.eventResolved = false
	g.Reward = nil
	g.RewardChips = 0

	node := g.Run.Next()
	if node == nil {
		if g.Run.Act >= lastAct {
			g.finishRun(true)
			return
		}
		g.Run = newActRun(g.Run.Act+1, g.lib, g.rng)
		g.say(fmt.Sprintf("You descend to floor %d.", g.Run.Act), "INFO")
		node = g.Run.Next()
		if node == nil {
			g.finishRun(true)
			return
		}
	}

	if node.Type == domain.EncounterEvent {
		g.Event = g.pickEvent()
		g.RerollCost = domain.RerollBaseCost
		g.setState(domain.StateEventPreview)
		g.timer = g.cfg.PreviewWait
		return
	}

	g.nextEnemy = node.Enemy
	g.setState(domain.StateCombatPreview)
	g.timer = g.cfg.PreviewWait
}

// beginCombat сажает врага за стол и открывает ставки
func (g *Game) beginCombat() {
	mult := 1.0
	if g.hpMultPercent > 0 {
		mult = float64(g.hpMultPercent) / 100
		g.hpMultPercent = 0
	}
	g.Enemy = g.nextEnemy.Spawn(mult)
	g.nextEnemy = nil
	g.Resolution = nil
	g.Player.Bet = 0
	g.Player.Doubled = false

	g.log.WithFields(logrus.Fields{
		"enemy": g.Enemy.Template.ID,
		"hp":    g.Enemy.MaxHP,
	}).Info("Combat started")
	if g.Enemy.Template.IntroLine != "" {
		g.say(g.Enemy.Template.IntroLine, "SPEECH")
	}
	g.Bus.Publish(domain.EventCombatStart, domain.EventPayload{Actor: g.Enemy.Template.ID})
	g.setState(domain.StateBetting)
}

// RunSummary - итог завершенного забега для архива
type RunSummary struct {
	Seed       int64
	Won        bool
	Act        int
	Class      string
	FinishedAt int64
	Stats      stats.Snapshot
}

// TakeRunSummary отдает итог забега один раз после его завершения
func (g *Game) TakeRunSummary() *RunSummary {
	s := g.summary
	g.summary = nil
	return s
}

// finishRun завершает забег. Проигрыш наступает при нуле фишек,
// победа - после босса третьего этажа.
func (g *Game) finishRun(won bool) {
	g.runWon = won
	g.setState(domain.StateGameOver)
	snap := g.Tracker.Snapshot()
	g.summary = &RunSummary{
		Seed:       g.cfg.Seed,
		Won:        won,
		Act:        g.Run.Act,
		Class:      g.Player.Class.String(),
		FinishedAt: time.Now().Unix(),
		Stats:      snap,
	}
	if won {
		g.say("The House is broken. You walk out into the dawn.", "INFO")
	} else {
		g.say("You are out of chips. The House always wins.", "INFO")
	}
	g.log.WithFields(logrus.Fields{
		"won":          won,
		"turns":        snap.TurnsPlayed,
		"combats_won":  snap.CombatsWon,
		"damage_dealt": snap.DamageDealtTotal,
	}).Info("Run finished")
}

func (g *Game) setState(s domain.GameState) {
	if g.State != s {
		g.log.WithFields(logrus.Fields{
			"from": g.State.String(),
			"to":   s.String(),
		}).Debug("State transition")
	}
	g.State = s
	g.dirty = true
}

// Tick двигает таймеры. Возвращает true, если состояние изменилось
// и клиенту нужен свежий снимок.
func (g *Game) Tick(dt time.Duration) bool {
	switch g.State {
	case domain.StateCombatPreview, domain.StateEventPreview, domain.StateDealerTurn:
		g.timer -= dt
		if g.timer <= 0 {
			g.expireTimer()
		}
	}
	changed := g.dirty
	g.dirty = false
	return changed
}

func (g *Game) expireTimer() {
	switch g.State {
	case domain.StateCombatPreview:
		g.beginCombat()
	case domain.StateEventPreview:
		g.setState(domain.StateEvent)
	case domain.StateDealerTurn:
		g.timer = g.cfg.DealerWait
		g.dealerStep()
	}
}

// Advance пропускает превью, закрывает событие после выбора и
// отменяет прицеливание. В остальных состояниях ждать нечего.
func (g *Game) Advance() (string, error) {
	switch g.State {
	case domain.StateCombatPreview:
		g.beginCombat()
	case domain.StateEventPreview:
		g.setState(domain.StateEvent)
	case domain.StateEvent:
		if !g.eventResolved {
			return "", fmt.Errorf("make a choice first")
		}
		g.advanceRun()
	case domain.StateTargeting:
		g.setState(domain.StatePlayerTurn)
		return "Targeting cancelled.", nil
	case domain.StateCombatVictory:
		if g.Reward != nil {
			return "", fmt.Errorf("deal with the reward first")
		}
		g.advanceRun()
	case domain.StateGameOver:
		g.setState(domain.StateMenu)
	default:
		return "", fmt.Errorf("nothing to advance in state %s", g.State)
	}
	return "", nil
}
