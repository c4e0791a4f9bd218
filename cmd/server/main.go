package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fiftytwo-server/internal/agent"
	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/engine"
	"fiftytwo-server/internal/infrastructure/storage"
	"fiftytwo-server/internal/server"
	"fiftytwo-server/internal/settings"
	"fiftytwo-server/internal/version"
	"fiftytwo-server/pkg/logger"

	"github.com/joho/godotenv"
)

func init() {
	// .env опционален: в докере переменные приходят из окружения.
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var debug bool
	var withBot bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed for new runs (0 for random)")
	flag.BoolVar(&debug, "debug", false, "Enable debug cheat commands")
	flag.BoolVar(&withBot, "bot", false, "Run a headless bot session for smoke testing")
	flag.Parse()

	logger.Log.Info("Starting Fifty-Two...")
	logger.Log.Info(version.String())

	// Контент грузится и валидируется до поднятия сети.
	// Битый YAML - это фатально, играть на нем нельзя.
	lib, err := content.Load()
	if err != nil {
		logger.Log.Fatal("Content load failed: ", err)
	}

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if debug || os.Getenv("F2_DEBUG") == "1" {
		cfg.Debug = true
	}

	port := os.Getenv("F2_PORT")
	if port == "" {
		port = "8080"
	}

	settingsPath := os.Getenv("F2_SETTINGS")
	if settingsPath == "" {
		settingsPath = "settings.yaml"
	}
	settingsStore, err := settings.NewStore(settingsPath)
	if err != nil {
		logger.Log.Fatal("Settings load failed: ", err)
	}

	archiveDir := os.Getenv("F2_RUNS_DIR")
	if archiveDir == "" {
		archiveDir = "runs"
	}
	archive, err := storage.NewRunArchive(archiveDir)
	if err != nil {
		logger.Log.Fatal("Run archive init failed: ", err)
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(lib, cfg, archive)
	gameService.Start()

	if withBot {
		bot := agent.NewBot("bot-session", gameService)
		go bot.Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, lib, settingsStore, archive, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()
	logger.Log.Info("Done.")
}
