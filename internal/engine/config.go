package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят тасовки колоды, броски
	// крита, дроп тринкетов и выбор событий.
	Seed int64

	// DealerWait - пауза между шагами дилера, чтобы клиент успевал
	// показать каждую карту.
	DealerWait time.Duration

	// PreviewWait - время показа превью боя или события до
	// автоматического перехода.
	PreviewWait time.Duration

	// TickRate - период игрового тика
	TickRate time.Duration

	// Debug включает чит-команды
	Debug bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		DealerWait:  500 * time.Millisecond,
		PreviewWait: 3 * time.Second,
		TickRate:    100 * time.Millisecond,
	}
}
