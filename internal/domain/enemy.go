package domain

// EnemyTemplate - описание врага из контент-файлов.
// Шаблоны неизменяемы; на бой создается Enemy через Spawn.
type EnemyTemplate struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	MaxHP      int           `json:"maxHp"`
	Tier       EncounterType `json:"tier"`
	Portrait   string        `json:"portrait"`
	IntroLine  string        `json:"introLine"`
	DefeatLine string        `json:"defeatLine"`
	Abilities  []Ability     `json:"abilities"`
}

// Enemy - враг в текущем бою
type Enemy struct {
	Template *EnemyTemplate `json:"template"`
	HP       int            `json:"hp"`
	MaxHP    int            `json:"maxHp"` // С учетом множителя акта

	// Состояние способностей, параллельно Template.Abilities
	AbilityStates []AbilityState `json:"-"`
}

// Spawn создает врага из шаблона. Множитель HP приходит из событий акта
// (например, "Высокие Ставки" усиливает следующий бой).
func (t *EnemyTemplate) Spawn(hpMultiplier float64) *Enemy {
	if hpMultiplier <= 0 {
		hpMultiplier = 1.0
	}
	maxHP := int(float64(t.MaxHP) * hpMultiplier)
	if maxHP < 1 {
		maxHP = 1
	}
	return &Enemy{
		Template:      t,
		HP:            maxHP,
		MaxHP:         maxHP,
		AbilityStates: make([]AbilityState, len(t.Abilities)),
	}
}

// IsDefeated - HP врага исчерпаны
func (e *Enemy) IsDefeated() bool {
	return e.HP <= 0
}

// HPPercent - остаток HP в процентах (0..100)
func (e *Enemy) HPPercent() int {
	if e.MaxHP <= 0 {
		return 0
	}
	return e.HP * 100 / e.MaxHP
}

// Segment - номер текущего сегмента HP (0..segments-1, считая от полного HP).
// Используется триггером HP_SEGMENT.
func (e *Enemy) Segment(segments int) int {
	if segments <= 0 || e.MaxHP <= 0 {
		return 0
	}
	missing := e.MaxHP - e.HP
	seg := missing * segments / e.MaxHP
	if seg >= segments {
		seg = segments - 1
	}
	return seg
}
