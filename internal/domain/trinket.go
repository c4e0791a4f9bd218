package domain

import (
	"fmt"

	"fiftytwo-server/internal/tags"
)

// TrinketRarity - редкость тринкета
type TrinketRarity uint8

const (
	RarityCommon TrinketRarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
	rarityMax
)

var trinketRarityNames = map[TrinketRarity]string{
	RarityCommon:    "COMMON",
	RarityUncommon:  "UNCOMMON",
	RarityRare:      "RARE",
	RarityLegendary: "LEGENDARY",
}

var trinketRarityValues = map[string]TrinketRarity{
	"COMMON":    RarityCommon,
	"UNCOMMON":  RarityUncommon,
	"RARE":      RarityRare,
	"LEGENDARY": RarityLegendary,
}

func (r TrinketRarity) String() string {
	if name, ok := trinketRarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("TrinketRarity(%d)", uint8(r))
}

// ParseTrinketRarity разбирает имя редкости из контента
func ParseTrinketRarity(s string) (TrinketRarity, error) {
	if r, ok := trinketRarityValues[s]; ok {
		return r, nil
	}
	return RarityCommon, fmt.Errorf("unknown trinket rarity: %q", s)
}

// AffixWeightBonus - прибавка к весу аффикса по редкости тринкета
var AffixWeightBonus = [rarityMax]int{0, 5, 10, 15}

// RarityCount - количество уровней редкости
func RarityCount() int {
	return int(rarityMax)
}

// StatKey - ключ агрегируемого боевого стата (аффиксы, стеки тринкетов)
type StatKey uint8

const (
	StatFlatDamage StatKey = iota
	StatDamagePercent
	StatCritChance
	StatCritBonus
	StatWinBonusPercent
	StatLossRefundPercent
	StatPushDamagePercent
	StatFlatChipsOnWin
	statKeyMax
)

var statKeyNames = map[StatKey]string{
	StatFlatDamage:        "FLAT_DAMAGE",
	StatDamagePercent:     "DAMAGE_PERCENT",
	StatCritChance:        "CRIT_CHANCE",
	StatCritBonus:         "CRIT_BONUS",
	StatWinBonusPercent:   "WIN_BONUS_PERCENT",
	StatLossRefundPercent: "LOSS_REFUND_PERCENT",
	StatPushDamagePercent: "PUSH_DAMAGE_PERCENT",
	StatFlatChipsOnWin:    "FLAT_CHIPS_ON_WIN",
}

var statKeyValues = func() map[string]StatKey {
	m := make(map[string]StatKey, len(statKeyNames))
	for k, v := range statKeyNames {
		m[v] = k
	}
	return m
}()

func (k StatKey) String() string {
	if name, ok := statKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatKey(%d)", uint8(k))
}

// ParseStatKey разбирает ключ стата из контента
func ParseStatKey(s string) (StatKey, error) {
	if k, ok := statKeyValues[s]; ok {
		return k, nil
	}
	return StatFlatDamage, fmt.Errorf("unknown stat key: %q", s)
}

// StatKeyCount - количество ключей статов
func StatKeyCount() int {
	return int(statKeyMax)
}

// TrinketEffectKind - вид эффекта пассива тринкета
type TrinketEffectKind uint8

const (
	TrinketAddChips TrinketEffectKind = iota
	TrinketAddChipsPercent
	TrinketLoseChips
	TrinketApplyStatus
	TrinketClearStatus
	TrinketStack
	TrinketStackReset
	TrinketRefundChipsPercent
	TrinketAddDamageFlat
	TrinketDamageMultiplier
	TrinketAddTagToCards
	TrinketBuffTagDamage
	TrinketPushDamagePercent
	TrinketBlockDebuff
	TrinketPunishHeal
)

var trinketEffectNames = map[TrinketEffectKind]string{
	TrinketAddChips:           "ADD_CHIPS",
	TrinketAddChipsPercent:    "ADD_CHIPS_PERCENT",
	TrinketLoseChips:          "LOSE_CHIPS",
	TrinketApplyStatus:        "APPLY_STATUS",
	TrinketClearStatus:        "CLEAR_STATUS",
	TrinketStack:              "TRINKET_STACK",
	TrinketStackReset:         "TRINKET_STACK_RESET",
	TrinketRefundChipsPercent: "REFUND_CHIPS_PERCENT",
	TrinketAddDamageFlat:      "ADD_DAMAGE_FLAT",
	TrinketDamageMultiplier:   "DAMAGE_MULTIPLIER",
	TrinketAddTagToCards:      "ADD_TAG_TO_CARDS",
	TrinketBuffTagDamage:      "BUFF_TAG_DAMAGE",
	TrinketPushDamagePercent:  "PUSH_DAMAGE_PERCENT",
	TrinketBlockDebuff:        "BLOCK_DEBUFF",
	TrinketPunishHeal:         "PUNISH_HEAL",
}

var trinketEffectValues = func() map[string]TrinketEffectKind {
	m := make(map[string]TrinketEffectKind, len(trinketEffectNames))
	for k, v := range trinketEffectNames {
		m[v] = k
	}
	return m
}()

func (t TrinketEffectKind) String() string {
	if name, ok := trinketEffectNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TrinketEffectKind(%d)", uint8(t))
}

// ParseTrinketEffectKind разбирает имя эффекта тринкета
func ParseTrinketEffectKind(s string) (TrinketEffectKind, error) {
	if t, ok := trinketEffectValues[s]; ok {
		return t, nil
	}
	return TrinketAddChips, fmt.Errorf("unknown trinket effect: %q", s)
}

// TrinketPassive - пассив тринкета: событие-триггер плюс эффект.
// Триггер EventNone означает постоянный вклад, который забирает агрегатор
// (ADD_DAMAGE_FLAT, DAMAGE_MULTIPLIER, PUSH_DAMAGE_PERCENT, REFUND_CHIPS_PERCENT).
type TrinketPassive struct {
	Trigger GameEvent         `json:"trigger"`
	Effect  TrinketEffectKind `json:"effect"`
	Value   int               `json:"value"`

	Status       StatusKind `json:"status,omitempty"` // APPLY_STATUS / CLEAR_STATUS
	StatusStacks int        `json:"statusStacks,omitempty"`
}

// StackOnMax - поведение счетчика стеков при достижении максимума
type StackOnMax uint8

const (
	StackOnMaxNone StackOnMax = iota
	StackOnMaxResetToOne
)

// StackBehavior - накопительное поведение тринкета:
// каждый стек добавляет PerStack к State указанного стата.
type StackBehavior struct {
	Stat     StatKey    `json:"stat"`
	PerStack int        `json:"perStack"`
	Max      int        `json:"max"`
	OnMax    StackOnMax `json:"onMax"`
}

// TagBehavior - теговое поведение: при экипировке тринкет помечает Count
// карт тегом Tag, и каждая такая карта дает PerTagDamage процентов урона.
type TagBehavior struct {
	Tag          tags.Kind `json:"tag"`
	Count        int       `json:"count"`
	PerTagDamage int       `json:"perTagDamage"`
}

// AffixTemplate - описание аффикса из пула
type AffixTemplate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Stat     StatKey `json:"stat"`
	MinValue int     `json:"minValue"`
	MaxValue int     `json:"maxValue"`
	Weight   int     `json:"weight"` // Базовый вес; редкость добавляет бонус
}

// Affix - выпавший аффикс с зафиксированным значением
type Affix struct {
	Template *AffixTemplate `json:"template"`
	Value    int            `json:"value"`
}

// TrinketTemplate - шаблон лут-тринкета из контент-файлов
type TrinketTemplate struct {
	Key      string        `json:"key"`
	Name     string        `json:"name"`
	Flavor   string        `json:"flavor"`
	Rarity   TrinketRarity `json:"rarity"`
	BaseSell int           `json:"baseSell"`

	Primary      TrinketPassive `json:"primary"`
	HasSecondary bool           `json:"hasSecondary,omitempty"`
	Secondary    TrinketPassive `json:"secondary,omitempty"`

	Stack   *StackBehavior `json:"stack,omitempty"`
	TagBuff *TagBehavior   `json:"tagBuff,omitempty"`

	// Пассив действует только при ставке не ниже порога
	BetGTE int `json:"betGte,omitempty"`
}

// TrinketSlots - количество слотов тринкетов у игрока
const TrinketSlots = 6

// MaxAffixes - максимум аффиксов на тринкете
const MaxAffixes = 3

// TrackedStat - индекс в массиве отслеживаемой статистики тринкета
type TrackedStat uint8

const (
	TrackDamageDealt TrackedStat = iota
	TrackBonusChips
	TrackRefundedChips
	TrackHighestStreak
	TrackDebuffsBlocked
	TrackHealDamage
	trackedStatMax
)

// TrinketInstance - конкретный экземпляр тринкета в слоте или в награде.
// Аффиксы выбираются при выпадении и не меняются; их число равно тиру.
type TrinketInstance struct {
	Template  *TrinketTemplate `json:"template"`
	Rarity    TrinketRarity    `json:"rarity"` // Возможно повышена жалостью
	Tier      int              `json:"tier"`   // Номер акта (1..3)
	SellValue int              `json:"sellValue"`
	Affixes   []Affix          `json:"affixes"`

	Stacks  int `json:"stacks"`
	Charges int `json:"charges"` // Пораундовые заряды, сбрасываются на бой

	Tracked [trackedStatMax]int `json:"tracked"`
}

// AffixValue суммирует вклад аффиксов в указанный стат
func (t *TrinketInstance) AffixValue(k StatKey) int {
	total := 0
	for _, a := range t.Affixes {
		if a.Template.Stat == k {
			total += a.Value
		}
	}
	return total
}

// Track увеличивает счетчик отслеживаемой статистики
func (t *TrinketInstance) Track(stat TrackedStat, delta int) {
	if stat < trackedStatMax {
		t.Tracked[stat] += delta
	}
}
