package domain

// Стартовые значения забега
const (
	StartingChips  = 100
	StartingSanity = 100
	MaxSanity      = 100
	MinBet         = 5
)

// CombatStats - агрегированные боевые статы игрока.
// Пересчитываются агрегатором при установленном грязном флаге.
type CombatStats struct {
	FlatDamage        int `json:"flatDamage"`
	DamagePercent     int `json:"damagePercent"`
	CritChance        int `json:"critChance"`
	CritBonus         int `json:"critBonus"`
	WinBonusPercent   int `json:"winBonusPercent"`
	LossRefundPercent int `json:"lossRefundPercent"`
	PushDamagePercent int `json:"pushDamagePercent"`
	FlatChipsOnWin    int `json:"flatChipsOnWin"`
}

// ClassTrinket - несъемный классовый тринкет: пассив плюс активка с кулдауном
type ClassTrinket struct {
	Name        string `json:"name"`
	PassiveName string `json:"passiveName"`
	ActiveName  string `json:"activeName"`

	Cooldown  int `json:"cooldown"`
	Remaining int `json:"remaining"`
	UseCount  int `json:"useCount"` // Растит стоимость активки

	PassiveThreshold int `json:"passiveThreshold"`
	PassiveDamage    int `json:"passiveDamage"`
	PassiveBonus     int `json:"passiveBonus"`
}

// Ready сообщает, доступна ли активка
func (c *ClassTrinket) Ready() bool {
	return c.Remaining == 0
}

// Player - состояние игрока в забеге. Запас фишек одновременно является
// здоровьем: опустился до нуля - забег окончен.
type Player struct {
	Chips  int `json:"chips"`
	Sanity int `json:"sanity"`

	Bet     int  `json:"bet"`
	Doubled bool `json:"doubled"` // Ставка удвоена в этом раунде

	Class    PlayerClass   `json:"class"`
	ClassKit *ClassTrinket `json:"classKit,omitempty"`

	Hand     *Hand      `json:"hand"`
	Statuses *StatusSet `json:"statuses"`

	// Счетчик блокировок дебаффов (BLOCK_DEBUFF)
	DebuffBlocks int `json:"debuffBlocks"`

	Trinkets [TrinketSlots]*TrinketInstance `json:"trinkets"`

	stats      CombatStats
	statsDirty bool
}

// NewPlayer создает игрока на старте забега
func NewPlayer(class PlayerClass, tagSource TagSource) *Player {
	return &Player{
		Chips:      StartingChips,
		Sanity:     StartingSanity,
		Class:      class,
		Hand:       NewHand(tagSource),
		Statuses:   NewStatusSet(),
		statsDirty: true,
	}
}

// IsDefeated - забег окончен, когда фишки кончились
func (p *Player) IsDefeated() bool {
	return p.Chips <= 0
}

// MarkStatsDirty помечает агрегированные статы устаревшими
func (p *Player) MarkStatsDirty() {
	p.statsDirty = true
}

// StatsDirty сообщает, нужен ли пересчет
func (p *Player) StatsDirty() bool {
	return p.statsDirty
}

// SetStats записывает свежие агрегированные статы и снимает грязный флаг
func (p *Player) SetStats(s CombatStats) {
	p.stats = s
	p.statsDirty = false
}

// Stats возвращает последние агрегированные статы
func (p *Player) Stats() CombatStats {
	return p.stats
}

// FreeSlot возвращает индекс свободного слота тринкетов или -1
func (p *Player) FreeSlot() int {
	for i, t := range p.Trinkets {
		if t == nil {
			return i
		}
	}
	return -1
}

// EquippedCount - число занятых слотов
func (p *Player) EquippedCount() int {
	n := 0
	for _, t := range p.Trinkets {
		if t != nil {
			n++
		}
	}
	return n
}

// Equip помещает тринкет в свободный слот
func (p *Player) Equip(t *TrinketInstance) (int, bool) {
	slot := p.FreeSlot()
	if slot < 0 {
		return -1, false
	}
	p.Trinkets[slot] = t
	p.MarkStatsDirty()
	return slot, true
}

// Unequip убирает тринкет из слота
func (p *Player) Unequip(slot int) *TrinketInstance {
	if slot < 0 || slot >= TrinketSlots {
		return nil
	}
	t := p.Trinkets[slot]
	if t != nil {
		p.Trinkets[slot] = nil
		p.MarkStatsDirty()
	}
	return t
}
