package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"fiftytwo-server/pkg/api"
	"fiftytwo-server/pkg/logger"

	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/engine/handlers"
	"fiftytwo-server/internal/engine/handlers/actions"
	"fiftytwo-server/internal/engine/handlers/admin"
	"fiftytwo-server/internal/infrastructure/storage"
	"fiftytwo-server/internal/network"
)

// InternalCommand - команда клиента, разобранная транспортом и
// поставленная в очередь движка
type InternalCommand struct {
	SessionID string
	Action    string
	Payload   []byte
}

// session - один забег и его неотправленные логи
type session struct {
	game *Game
	logs []api.LogEntry
}

// GameService владеет всеми играми. Вся игровая логика исполняется
// одной горутиной RunGameLoop: команды приходят через CommandChan,
// таймеры двигает тикер.
type GameService struct {
	log *logrus.Entry
	cfg Config
	lib *content.Library

	Hub         *network.Broadcaster
	CommandChan chan InternalCommand

	sessions map[string]*session
	handlers map[string]handlers.HandlerFunc

	// archive пишет итоги завершенных забегов; nil выключает архив
	archive *storage.RunArchive

	seedSalt int64
}

func NewService(lib *content.Library, cfg Config, archive *storage.RunArchive) *GameService {
	s := &GameService{
		log:         logger.System("engine"),
		cfg:         cfg,
		lib:         lib,
		archive:     archive,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan InternalCommand, 100),
		sessions:    make(map[string]*session),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers = map[string]handlers.HandlerFunc{
		"INIT":         handlers.WithEmptyPayload(actions.HandleInit),
		"NEW_RUN":      handlers.WithPayload(actions.HandleNewRun),
		"BET":          handlers.WithPayload(actions.HandleBet),
		"HIT":          handlers.WithEmptyPayload(actions.HandleHit),
		"STAND":        handlers.WithEmptyPayload(actions.HandleStand),
		"DOUBLE_DOWN":  handlers.WithEmptyPayload(actions.HandleDoubleDown),
		"SPLIT":        handlers.WithEmptyPayload(actions.HandleSplit),
		"USE_ACTIVE":   handlers.WithEmptyPayload(actions.HandleUseActive),
		"TARGET":       handlers.WithPayload(actions.HandleTarget),
		"CHOICE":       handlers.WithPayload(actions.HandleChoice),
		"REROLL":       handlers.WithEmptyPayload(actions.HandleReroll),
		"ADVANCE":      handlers.WithEmptyPayload(actions.HandleAdvance),
		"TAKE_REWARD":  handlers.WithPayload(actions.HandleTakeReward),
		"SELL_REWARD":  handlers.WithEmptyPayload(actions.HandleSellReward),
		"SELL_TRINKET": handlers.WithPayload(actions.HandleSellTrinket),
	}
	if s.cfg.Debug {
		s.handlers["CHEAT"] = handlers.WithPayload(admin.HandleCheat)
		s.log.Warn("Debug cheats enabled")
	}
}

// Start запускает игровой цикл
func (s *GameService) Start() {
	go s.RunGameLoop()
}

// ProcessCommand ставит команду клиента в очередь движка.
// Вызывается из горутин транспорта.
func (s *GameService) ProcessCommand(sessionID string, cmd api.ClientCommand) error {
	if cmd.Action == "" {
		return fmt.Errorf("action is required")
	}
	ic := InternalCommand{
		SessionID: sessionID,
		Action:    strings.ToUpper(cmd.Action),
		Payload:   cmd.Payload,
	}
	select {
	case s.CommandChan <- ic:
		return nil
	default:
		return fmt.Errorf("command queue is full")
	}
}

// RunGameLoop - единственная горутина, которой разрешено трогать
// игровое состояние
func (s *GameService) RunGameLoop() {
	s.log.WithField("tick", s.cfg.TickRate.String()).Info("Game loop started")
	ticker := time.NewTicker(s.cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case cmd, ok := <-s.CommandChan:
			if !ok {
				s.log.Info("Game loop stopped")
				return
			}
			s.executeCommand(cmd)

		case <-ticker.C:
			for id, sess := range s.sessions {
				if sess.game.Tick(s.cfg.TickRate) {
					s.archiveRun(sess)
					s.publishUpdate(id, sess)
				}
			}
		}
	}
}

// Stop закрывает очередь команд; цикл завершится на следующем чтении
func (s *GameService) Stop() {
	close(s.CommandChan)
}

func (s *GameService) executeCommand(cmd InternalCommand) {
	if cmd.Action == actionDrop {
		delete(s.sessions, cmd.SessionID)
		s.log.WithField("session", cmd.SessionID).Info("Session dropped")
		return
	}
	sess := s.ensureSession(cmd.SessionID)

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.addLog(sess, fmt.Sprintf("Unknown action: %s", cmd.Action), "ERROR")
		s.publishUpdate(cmd.SessionID, sess)
		return
	}

	hctx := handlers.Context{Game: sess.game, Log: s.log}
	result, err := handler(hctx, cmd.Payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session": cmd.SessionID,
			"action":  cmd.Action,
		}).WithError(err).Warn("Command rejected")
		s.addLog(sess, err.Error(), "ERROR")
	} else if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.addLog(sess, result.Msg, msgType)
	}

	s.archiveRun(sess)
	s.publishUpdate(cmd.SessionID, sess)
}

// archiveRun сохраняет итог забега, если он только что завершился
func (s *GameService) archiveRun(sess *session) {
	summary := sess.game.TakeRunSummary()
	if summary == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"won":   summary.Won,
		"class": summary.Class,
	}).Info("Run archived")
	if s.archive == nil {
		return
	}
	path, err := s.archive.Save(storage.RunRecord{
		Seed:       summary.Seed,
		FinishedAt: summary.FinishedAt,
		Class:      summary.Class,
		Won:        summary.Won,
		Act:        summary.Act,
		Stats:      summary.Stats,
	})
	if err != nil {
		s.log.WithError(err).Error("Failed to archive run")
		return
	}
	s.log.WithField("path", path).Debug("Run record written")
}

// ensureSession находит игру сессии или создает новую в главном меню
func (s *GameService) ensureSession(id string) *session {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &session{}
	s.seedSalt++
	cfg := s.cfg
	cfg.Seed = s.cfg.Seed + s.seedSalt
	sess.game = NewGame(s.lib, cfg, s.log.WithField("session", id), func(text, logType string) {
		s.addLog(sess, text, logType)
	})
	s.sessions[id] = sess
	s.log.WithField("session", id).Info("Session created")
	return sess
}

// actionDrop - служебная команда удаления сессии, клиенту недоступна
// (ProcessCommand приводит действия к верхнему регистру, но служебные
// имена в таблицу хендлеров не попадают)
const actionDrop = "_DROP"

// DropSession просит игровой цикл забыть игру отключившейся сессии.
// Вызывается из горутин транспорта.
func (s *GameService) DropSession(id string) {
	select {
	case s.CommandChan <- InternalCommand{SessionID: id, Action: actionDrop}:
	default:
	}
}

// addLog копит сообщения до следующего снимка состояния
func (s *GameService) addLog(sess *session, text, logType string) {
	sess.logs = append(sess.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// publishUpdate отправляет подписчику свежий снимок вместе с
// накопленными логами
func (s *GameService) publishUpdate(id string, sess *session) {
	if !s.Hub.HasSubscriber(id) {
		return
	}
	resp := sess.game.BuildState()
	resp.Logs = sess.logs
	s.Hub.SendTo(id, resp)
	sess.logs = nil
}
