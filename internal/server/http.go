package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fiftytwo-server/pkg/logger"

	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/engine"
	"fiftytwo-server/internal/infrastructure/storage"
	"fiftytwo-server/internal/settings"
	"fiftytwo-server/internal/version"
)

type Server struct {
	Engine   *engine.GameService
	Library  *content.Library
	Settings *settings.Store
	Archive  *storage.RunArchive
	Port     string
}

func New(eng *engine.GameService, lib *content.Library, st *settings.Store, archive *storage.RunArchive, port string) *Server {
	return &Server{
		Engine:   eng,
		Library:  lib,
		Settings: st,
		Archive:  archive,
		Port:     port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/settings", s.handleGetSettings)
	r.Put("/settings", s.handlePutSettings)

	debugHandler := NewDebugHandler(s.Engine, s.Library, s.Archive)
	debugHandler.RegisterRoutes(r)

	logger.Log.Infof("Fifty-Two server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Settings.Get())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var next settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Settings.Put(next); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, s.Settings.Get())
}
