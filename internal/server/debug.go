package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/engine"
	"fiftytwo-server/internal/infrastructure/storage"
	"fiftytwo-server/internal/stats"
)

// DebugHandler отдает состояние сервера, не требующее захода в горутину
// движка: сводку контента, число подключений и архив забегов.
type DebugHandler struct {
	Service *engine.GameService
	Library *content.Library
	Archive *storage.RunArchive
}

func NewDebugHandler(s *engine.GameService, lib *content.Library, archive *storage.RunArchive) *DebugHandler {
	return &DebugHandler{Service: s, Library: lib, Archive: archive}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Get("/debug/content", h.handleContent)
	r.Get("/debug/sessions", h.handleSessions)
	r.Get("/debug/runs", h.handleRuns)
}

// /debug/content - сводка загруженного контента
func (h *DebugHandler) handleContent(w http.ResponseWriter, r *http.Request) {
	type enemySummary struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Tier      string `json:"tier"`
		MaxHP     int    `json:"maxHp"`
		Abilities int    `json:"abilities"`
	}
	type trinketSummary struct {
		Key    string `json:"key"`
		Name   string `json:"name"`
		Rarity string `json:"rarity"`
	}
	type summary struct {
		Enemies  []enemySummary   `json:"enemies"`
		Trinkets []trinketSummary `json:"trinkets"`
		Affixes  int              `json:"affixes"`
		Events   int              `json:"events"`
	}

	out := summary{
		Affixes: len(h.Library.Affixes),
		Events:  len(h.Library.Events),
	}
	for _, e := range h.Library.Enemies {
		out.Enemies = append(out.Enemies, enemySummary{
			ID:        e.ID,
			Name:      e.Name,
			Tier:      e.Tier.String(),
			MaxHP:     e.MaxHP,
			Abilities: len(e.Abilities),
		})
	}
	for _, t := range h.Library.Trinkets {
		out.Trinkets = append(out.Trinkets, trinketSummary{
			Key:    t.Key,
			Name:   t.Name,
			Rarity: t.Rarity.String(),
		})
	}
	writeJSON(w, out)
}

// /debug/sessions - количество подключенных клиентов
func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"subscribers": h.Service.Hub.SubscriberCount()})
}

// /debug/runs - архив завершенных забегов
func (h *DebugHandler) handleRuns(w http.ResponseWriter, r *http.Request) {
	if h.Archive == nil {
		writeJSON(w, []struct{}{})
		return
	}
	recs, err := h.Archive.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	type runView struct {
		Seed       int64          `json:"seed"`
		FinishedAt int64          `json:"finishedAt"`
		Class      string         `json:"class"`
		Won        bool           `json:"won"`
		Act        int            `json:"act"`
		Stats      stats.Snapshot `json:"stats"`
	}
	out := make([]runView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, runView{
			Seed:       rec.Seed,
			FinishedAt: rec.FinishedAt,
			Class:      rec.Class,
			Won:        rec.Won,
			Act:        rec.Act,
			Stats:      rec.Stats,
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}
