package content

import (
	"embed"
	"fmt"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/pkg/logger"
)

//go:embed data/*.yaml
var dataFS embed.FS

// LoadError - ошибка загрузки контента с указанием файла и узла.
// Любая LoadError при старте фатальна: сервер с битым контентом не поднимается.
type LoadError struct {
	File string
	Node string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("content %s: %s: %v", e.File, e.Node, e.Err)
	}
	return fmt.Sprintf("content %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Library - весь загруженный игровой контент. Неизменяема после загрузки.
type Library struct {
	Enemies  []*domain.EnemyTemplate
	Trinkets []*domain.TrinketTemplate
	Affixes  []*domain.AffixTemplate
	Events   []*domain.NarrativeEvent

	enemyByID   map[string]*domain.EnemyTemplate
	trinketByID map[string]*domain.TrinketTemplate
}

// Load читает и валидирует весь встроенный контент
func Load() (*Library, error) {
	lib := &Library{
		enemyByID:   make(map[string]*domain.EnemyTemplate),
		trinketByID: make(map[string]*domain.TrinketTemplate),
	}

	if err := lib.loadEnemies("data/enemies.yaml"); err != nil {
		return nil, err
	}
	if err := lib.loadAffixes("data/affixes.yaml"); err != nil {
		return nil, err
	}
	if err := lib.loadTrinkets("data/trinkets.yaml"); err != nil {
		return nil, err
	}
	if err := lib.loadEvents("data/events.yaml"); err != nil {
		return nil, err
	}

	log := logger.System("content")
	log.WithField("enemies", len(lib.Enemies)).
		WithField("trinkets", len(lib.Trinkets)).
		WithField("affixes", len(lib.Affixes)).
		WithField("events", len(lib.Events)).
		Info("Content library loaded")
	return lib, nil
}

// Enemy возвращает шаблон врага по ID
func (l *Library) Enemy(id string) (*domain.EnemyTemplate, bool) {
	t, ok := l.enemyByID[id]
	return t, ok
}

// Trinket возвращает шаблон тринкета по ID
func (l *Library) Trinket(id string) (*domain.TrinketTemplate, bool) {
	t, ok := l.trinketByID[id]
	return t, ok
}

// EnemiesByTier возвращает шаблоны врагов указанного типа столкновения
func (l *Library) EnemiesByTier(tier domain.EncounterType) []*domain.EnemyTemplate {
	var out []*domain.EnemyTemplate
	for _, e := range l.Enemies {
		if e.Tier == tier {
			out = append(out, e)
		}
	}
	return out
}
