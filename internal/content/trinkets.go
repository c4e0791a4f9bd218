package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

type affixFile struct {
	Affixes []affixDTO `yaml:"affixes"`
}

type affixDTO struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Stat     string `yaml:"stat"`
	MinValue int    `yaml:"minValue"`
	MaxValue int    `yaml:"maxValue"`
	Weight   int    `yaml:"weight"`
}

func (l *Library) loadAffixes(path string) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}
	var file affixFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return &LoadError{File: path, Err: err}
	}
	if len(file.Affixes) == 0 {
		return &LoadError{File: path, Err: fmt.Errorf("no affixes defined")}
	}

	seen := make(map[string]bool)
	for _, dto := range file.Affixes {
		if dto.ID == "" {
			return &LoadError{File: path, Err: fmt.Errorf("affix id is required")}
		}
		if seen[dto.ID] {
			return &LoadError{File: path, Node: dto.ID, Err: fmt.Errorf("duplicate affix id")}
		}
		seen[dto.ID] = true

		stat, err := domain.ParseStatKey(dto.Stat)
		if err != nil {
			return &LoadError{File: path, Node: dto.ID, Err: err}
		}
		if dto.MinValue > dto.MaxValue {
			return &LoadError{File: path, Node: dto.ID,
				Err: fmt.Errorf("minValue %d exceeds maxValue %d", dto.MinValue, dto.MaxValue)}
		}
		if dto.Weight <= 0 {
			return &LoadError{File: path, Node: dto.ID, Err: fmt.Errorf("weight must be positive")}
		}

		l.Affixes = append(l.Affixes, &domain.AffixTemplate{
			ID:       dto.ID,
			Name:     dto.Name,
			Stat:     stat,
			MinValue: dto.MinValue,
			MaxValue: dto.MaxValue,
			Weight:   dto.Weight,
		})
	}
	return nil
}

type trinketFile struct {
	Trinkets []trinketDTO `yaml:"trinkets"`
}

type trinketDTO struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Flavor   string `yaml:"flavor"`
	Rarity   string `yaml:"rarity"`
	BaseSell int    `yaml:"baseSell"`

	Primary   passiveDTO  `yaml:"primary"`
	Secondary *passiveDTO `yaml:"secondary"`

	Stack   *stackDTO   `yaml:"stack"`
	TagBuff *tagBuffDTO `yaml:"tagBuff"`

	BetGTE int `yaml:"betGte"`
}

type passiveDTO struct {
	Trigger      string `yaml:"trigger"`
	Effect       string `yaml:"effect"`
	Value        int    `yaml:"value"`
	Status       string `yaml:"status"`
	StatusStacks int    `yaml:"statusStacks"`
}

type stackDTO struct {
	Stat     string `yaml:"stat"`
	PerStack int    `yaml:"perStack"`
	Max      int    `yaml:"max"`
	OnMax    string `yaml:"onMax"`
}

type tagBuffDTO struct {
	Tag          string `yaml:"tag"`
	Count        int    `yaml:"count"`
	PerTagDamage int    `yaml:"perTagDamage"`
}

func (l *Library) loadTrinkets(path string) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}
	var file trinketFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return &LoadError{File: path, Err: err}
	}
	if len(file.Trinkets) == 0 {
		return &LoadError{File: path, Err: fmt.Errorf("no trinkets defined")}
	}

	for _, dto := range file.Trinkets {
		tpl, err := dto.toTemplate()
		if err != nil {
			return &LoadError{File: path, Node: dto.Key, Err: err}
		}
		if _, dup := l.trinketByID[tpl.Key]; dup {
			return &LoadError{File: path, Node: tpl.Key, Err: fmt.Errorf("duplicate trinket key")}
		}
		l.Trinkets = append(l.Trinkets, tpl)
		l.trinketByID[tpl.Key] = tpl
	}
	return nil
}

func (d trinketDTO) toTemplate() (*domain.TrinketTemplate, error) {
	if d.Key == "" {
		return nil, fmt.Errorf("trinket key is required")
	}
	if d.Name == "" {
		return nil, fmt.Errorf("trinket name is required")
	}
	rarity, err := domain.ParseTrinketRarity(d.Rarity)
	if err != nil {
		return nil, err
	}
	if d.BaseSell < 0 {
		return nil, fmt.Errorf("baseSell cannot be negative")
	}

	tpl := &domain.TrinketTemplate{
		Key:      d.Key,
		Name:     d.Name,
		Flavor:   d.Flavor,
		Rarity:   rarity,
		BaseSell: d.BaseSell,
		BetGTE:   d.BetGTE,
	}

	if tpl.Primary, err = d.Primary.toPassive(); err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	if d.Secondary != nil {
		if tpl.Secondary, err = d.Secondary.toPassive(); err != nil {
			return nil, fmt.Errorf("secondary: %w", err)
		}
		tpl.HasSecondary = true
	}

	if d.Stack != nil {
		stat, err := domain.ParseStatKey(d.Stack.Stat)
		if err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
		if d.Stack.Max <= 0 {
			return nil, fmt.Errorf("stack max must be positive")
		}
		onMax := domain.StackOnMaxNone
		switch d.Stack.OnMax {
		case "", "none":
			// По умолчанию стеки упираются в потолок
		case "reset_to_one":
			onMax = domain.StackOnMaxResetToOne
		default:
			return nil, fmt.Errorf("unknown stack onMax: %q", d.Stack.OnMax)
		}
		tpl.Stack = &domain.StackBehavior{
			Stat:     stat,
			PerStack: d.Stack.PerStack,
			Max:      d.Stack.Max,
			OnMax:    onMax,
		}
	}

	if d.TagBuff != nil {
		kind, err := tags.Parse(d.TagBuff.Tag)
		if err != nil {
			return nil, fmt.Errorf("tagBuff: %w", err)
		}
		tpl.TagBuff = &domain.TagBehavior{
			Tag:          kind,
			Count:        d.TagBuff.Count,
			PerTagDamage: d.TagBuff.PerTagDamage,
		}
	}

	// Перекрестные проверки: эффекты стеков и тегов требуют своих блоков
	for _, pv := range passives(tpl) {
		switch pv.Effect {
		case domain.TrinketStack, domain.TrinketStackReset:
			if tpl.Stack == nil {
				return nil, fmt.Errorf("%s requires a stack block", pv.Effect)
			}
		case domain.TrinketAddTagToCards, domain.TrinketBuffTagDamage:
			if tpl.TagBuff == nil {
				return nil, fmt.Errorf("%s requires a tagBuff block", pv.Effect)
			}
		}
	}
	return tpl, nil
}

func passives(tpl *domain.TrinketTemplate) []domain.TrinketPassive {
	out := []domain.TrinketPassive{tpl.Primary}
	if tpl.HasSecondary {
		out = append(out, tpl.Secondary)
	}
	return out
}

func (d passiveDTO) toPassive() (domain.TrinketPassive, error) {
	var pv domain.TrinketPassive
	var err error

	// Пустой триггер - статический пассив, забирается агрегатором статов
	if d.Trigger != "" {
		if pv.Trigger, err = domain.ParseGameEvent(d.Trigger); err != nil {
			return pv, err
		}
	}
	if pv.Effect, err = domain.ParseTrinketEffectKind(d.Effect); err != nil {
		return pv, err
	}

	switch pv.Effect {
	case domain.TrinketApplyStatus, domain.TrinketClearStatus:
		if pv.Status, err = domain.ParseStatusKind(d.Status); err != nil {
			return pv, err
		}
	case domain.TrinketStack, domain.TrinketStackReset:
		// Величина берется из поведения стеков шаблона
	default:
		if d.Value == 0 {
			return pv, fmt.Errorf("effect %s requires a value", pv.Effect)
		}
	}
	pv.Value = d.Value
	pv.StatusStacks = d.StatusStacks
	return pv, nil
}
