package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings - клиентские настройки, которые переживают перезапуск:
// громкости и масштаб интерфейса.
type Settings struct {
	Audio   Audio `yaml:"audio" json:"audio"`
	UIScale int   `yaml:"uiScale" json:"uiScale"`
}

// Audio - громкости каналов, 0..100
type Audio struct {
	Master  int `yaml:"master" json:"master"`
	Music   int `yaml:"music" json:"music"`
	Effects int `yaml:"effects" json:"effects"`
}

// uiScales - допустимые масштабы интерфейса
var uiScales = map[int]bool{100: true, 125: true, 150: true}

// Default - настройки нового профиля
func Default() Settings {
	return Settings{
		Audio:   Audio{Master: 80, Music: 60, Effects: 80},
		UIScale: 100,
	}
}

func (s Settings) Validate() error {
	for name, v := range map[string]int{
		"master":  s.Audio.Master,
		"music":   s.Audio.Music,
		"effects": s.Audio.Effects,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("audio.%s volume %d out of range 0..100", name, v)
		}
	}
	if !uiScales[s.UIScale] {
		return fmt.Errorf("uiScale %d is not supported (100, 125, 150)", s.UIScale)
	}
	return nil
}

// Store читает и пишет настройки на диск. Потокобезопасен: HTTP-ручки
// дергают его из разных горутин.
type Store struct {
	mu      sync.RWMutex
	path    string
	current Settings
}

// NewStore загружает настройки из файла. Отсутствующий файл - не
// ошибка, берутся значения по умолчанию. Испорченный файл - ошибка.
func NewStore(path string) (*Store, error) {
	st := &Store{path: path, current: Default()}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	st.current = s
	return st, nil
}

// Get возвращает текущие настройки
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Put валидирует, сохраняет на диск и применяет новые настройки
func (s *Store) Put(next Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(next)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.current = next
	return nil
}
