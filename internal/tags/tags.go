package tags

import "fmt"

// Kind - вид тега карты
type Kind uint8

const (
	Cursed   Kind = iota // Урон врагу при вытягивании
	Vampiric             // Урон врагу при вытягивании плюс фишки тянущему
	Lucky                // Бонус к шансу крита за каждую карту в руке
	Brutal               // Бонус к урону за каждую карту в руке
	Doubled              // Вклад карты в очки удвоен
	kindMax
)

var kindNames = map[Kind]string{
	Cursed:   "CURSED",
	Vampiric: "VAMPIRIC",
	Lucky:    "LUCKY",
	Brutal:   "BRUTAL",
	Doubled:  "DOUBLED",
}

var kindValues = map[string]Kind{
	"CURSED":   Cursed,
	"VAMPIRIC": Vampiric,
	"LUCKY":    Lucky,
	"BRUTAL":   Brutal,
	"DOUBLED":  Doubled,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("tags.Kind(%d)", uint8(k))
}

// Parse разбирает имя тега из контента
func Parse(s string) (Kind, error) {
	if k, ok := kindValues[s]; ok {
		return k, nil
	}
	return Cursed, fmt.Errorf("unknown card tag: %q", s)
}

// KindCount - количество определенных тегов
func KindCount() int {
	return int(kindMax)
}

// Info - презентационные данные тега
type Info struct {
	Name        string
	Description string
	Color       string // Цвет рамки на клиенте, hex
}

var infos = map[Kind]Info{
	Cursed: {
		Name:        "Cursed",
		Description: "Drawing this card sears the enemy for 10 damage.",
		Color:       "#7a1fa2",
	},
	Vampiric: {
		Name:        "Vampiric",
		Description: "Drawing this card drains the enemy for 5 and grants 5 chips.",
		Color:       "#b71c1c",
	},
	Lucky: {
		Name:        "Lucky",
		Description: "+10% crit chance while in hand.",
		Color:       "#2e7d32",
	},
	Brutal: {
		Name:        "Brutal",
		Description: "+10% damage while in hand.",
		Color:       "#e65100",
	},
	Doubled: {
		Name:        "Doubled",
		Description: "This card's blackjack value is doubled.",
		Color:       "#f9a825",
	},
}

// Describe возвращает презентационные данные тега
func Describe(k Kind) Info {
	return infos[k]
}

// Числовые параметры эффектов тегов
const (
	CursedDamage   = 10
	VampiricDamage = 5
	VampiricChips  = 5
	LuckyCritBonus = 10 // Процентов за карту
	BrutalDmgBonus = 10 // Процентов за карту
)
