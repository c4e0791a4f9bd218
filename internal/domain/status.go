package domain

import "fmt"

// StatusKind - вид статус-эффекта
type StatusKind uint8

const (
	StatusChipDrain StatusKind = iota // Потеря фишек в начале раунда
	StatusTilt                        // Первая карта раздается в закрытую
	StatusGreed                       // Минимальная ставка удвоена, выигрыш урезан
	StatusRake                        // Противник забирает долю от урона фишками
	statusKindMax
)

var statusKindNames = map[StatusKind]string{
	StatusChipDrain: "CHIP_DRAIN",
	StatusTilt:      "TILT",
	StatusGreed:     "GREED",
	StatusRake:      "RAKE",
}

var statusKindValues = map[string]StatusKind{
	"CHIP_DRAIN": StatusChipDrain,
	"TILT":       StatusTilt,
	"GREED":      StatusGreed,
	"RAKE":       StatusRake,
}

func (k StatusKind) String() string {
	if name, ok := statusKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatusKind(%d)", uint8(k))
}

// ParseStatusKind разбирает имя статуса из контента
func ParseStatusKind(s string) (StatusKind, error) {
	if k, ok := statusKindValues[s]; ok {
		return k, nil
	}
	return StatusChipDrain, fmt.Errorf("unknown status kind: %q", s)
}

// Потолки суммирования величины для накопительных статусов
const (
	ChipDrainMagnitudeCap = 25
	RakeMagnitudeCap      = 50
)

// StatusEffect - активный экземпляр статуса
type StatusEffect struct {
	Kind      StatusKind `json:"kind"`
	Remaining int        `json:"remaining"` // Раундов до истечения
	Magnitude int        `json:"magnitude"` // Фишки за раунд / процент комиссии
	Source    string     `json:"source"`
}

// StatusSet - набор активных статусов актора.
// Не более одного экземпляра каждого вида: повторное наложение обновляет
// длительность (refresh, не суммирование), а величина складывается до
// потолка для CHIP_DRAIN и RAKE; TILT и GREED - булевы с длительностью.
type StatusSet struct {
	active map[StatusKind]*StatusEffect
}

// NewStatusSet создает пустой набор
func NewStatusSet() *StatusSet {
	return &StatusSet{active: make(map[StatusKind]*StatusEffect, int(statusKindMax))}
}

// Apply накладывает статус. Возвращает true, если это новое наложение.
func (s *StatusSet) Apply(kind StatusKind, magnitude, duration int, source string) bool {
	if e, ok := s.active[kind]; ok {
		// Длительность обновляется, величина - по виду статуса
		if duration > e.Remaining {
			e.Remaining = duration
		}
		switch kind {
		case StatusChipDrain:
			e.Magnitude += magnitude
			if e.Magnitude > ChipDrainMagnitudeCap {
				e.Magnitude = ChipDrainMagnitudeCap
			}
		case StatusRake:
			e.Magnitude += magnitude
			if e.Magnitude > RakeMagnitudeCap {
				e.Magnitude = RakeMagnitudeCap
			}
		}
		return false
	}
	s.active[kind] = &StatusEffect{
		Kind:      kind,
		Remaining: duration,
		Magnitude: magnitude,
		Source:    source,
	}
	return true
}

// Has проверяет активность статуса
func (s *StatusSet) Has(k StatusKind) bool {
	_, ok := s.active[k]
	return ok
}

// Get возвращает активный статус или nil
func (s *StatusSet) Get(k StatusKind) *StatusEffect {
	return s.active[k]
}

// Clear снимает статус досрочно
func (s *StatusSet) Clear(k StatusKind) bool {
	if _, ok := s.active[k]; !ok {
		return false
	}
	delete(s.active, k)
	return true
}

// ClearAll снимает все статусы (конец боя)
func (s *StatusSet) ClearAll() {
	for k := range s.active {
		delete(s.active, k)
	}
}

// Tick уменьшает длительности и возвращает истекшие виды
func (s *StatusSet) Tick() []StatusKind {
	var expired []StatusKind
	for k := StatusKind(0); k < statusKindMax; k++ {
		e, ok := s.active[k]
		if !ok {
			continue
		}
		e.Remaining--
		if e.Remaining <= 0 {
			expired = append(expired, k)
			delete(s.active, k)
		}
	}
	return expired
}

// List возвращает снимок активных статусов (стабильный порядок по виду)
func (s *StatusSet) List() []StatusEffect {
	out := make([]StatusEffect, 0, len(s.active))
	for k := StatusKind(0); k < statusKindMax; k++ {
		if e, ok := s.active[k]; ok {
			out = append(out, *e)
		}
	}
	return out
}

// Count - количество активных статусов
func (s *StatusSet) Count() int {
	return len(s.active)
}
