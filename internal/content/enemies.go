package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fiftytwo-server/internal/domain"
)

// enemyFile - корень YAML-файла врагов
type enemyFile struct {
	Enemies []enemyDTO `yaml:"enemies"`
}

type enemyDTO struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	MaxHP      int          `yaml:"maxHp"`
	Tier       string       `yaml:"tier"`
	Portrait   string       `yaml:"portrait"`
	IntroLine  string       `yaml:"introLine"`
	DefeatLine string       `yaml:"defeatLine"`
	Abilities  []abilityDTO `yaml:"abilities"`
}

type abilityDTO struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Cooldown    int         `yaml:"cooldown"`
	Trigger     triggerDTO  `yaml:"trigger"`
	Effects     []effectDTO `yaml:"effects"`
}

type triggerDTO struct {
	Kind           string `yaml:"kind"`
	Event          string `yaml:"event"`
	CounterMax     int    `yaml:"counterMax"`
	HPPercent      int    `yaml:"hpPercent"`
	Chance         int    `yaml:"chance"`
	Action         string `yaml:"action"`
	SegmentPercent int    `yaml:"segmentPercent"`
}

type effectDTO struct {
	Kind     string `yaml:"kind"`
	Target   string `yaml:"target"`
	Status   string `yaml:"status"`
	Value    int    `yaml:"value"`
	Duration int    `yaml:"duration"`
	Text     string `yaml:"text"`
}

func (l *Library) loadEnemies(path string) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}
	var file enemyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return &LoadError{File: path, Err: err}
	}
	if len(file.Enemies) == 0 {
		return &LoadError{File: path, Err: fmt.Errorf("no enemies defined")}
	}

	for _, dto := range file.Enemies {
		tpl, err := dto.toTemplate()
		if err != nil {
			return &LoadError{File: path, Node: dto.ID, Err: err}
		}
		if _, dup := l.enemyByID[tpl.ID]; dup {
			return &LoadError{File: path, Node: tpl.ID, Err: fmt.Errorf("duplicate enemy id")}
		}
		l.Enemies = append(l.Enemies, tpl)
		l.enemyByID[tpl.ID] = tpl
	}
	return nil
}

func (d enemyDTO) toTemplate() (*domain.EnemyTemplate, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("enemy id is required")
	}
	if d.MaxHP <= 0 {
		return nil, fmt.Errorf("maxHp must be positive, got %d", d.MaxHP)
	}
	tier, err := domain.ParseEncounterType(d.Tier)
	if err != nil {
		return nil, err
	}
	if tier == domain.EncounterEvent {
		return nil, fmt.Errorf("enemy cannot use the EVENT tier")
	}

	tpl := &domain.EnemyTemplate{
		ID:         d.ID,
		Name:       d.Name,
		MaxHP:      d.MaxHP,
		Tier:       tier,
		Portrait:   d.Portrait,
		IntroLine:  d.IntroLine,
		DefeatLine: d.DefeatLine,
	}
	for i, a := range d.Abilities {
		ab, err := a.toAbility()
		if err != nil {
			return nil, fmt.Errorf("ability %d (%s): %w", i, a.Name, err)
		}
		tpl.Abilities = append(tpl.Abilities, ab)
	}
	return tpl, nil
}

func (d abilityDTO) toAbility() (domain.Ability, error) {
	var ab domain.Ability

	if d.Name == "" {
		return ab, fmt.Errorf("ability name is required")
	}
	if d.Cooldown < 0 {
		return ab, fmt.Errorf("cooldown cannot be negative")
	}
	ab.Name = d.Name
	ab.Description = d.Description
	ab.CooldownMax = d.Cooldown

	tr, err := d.Trigger.toTrigger()
	if err != nil {
		return ab, err
	}
	ab.Trigger = tr

	if tr.Kind != domain.TriggerPassive && len(d.Effects) == 0 {
		return ab, fmt.Errorf("ability has no effects")
	}
	for i, e := range d.Effects {
		eff, err := e.toEffect()
		if err != nil {
			return ab, fmt.Errorf("effect %d: %w", i, err)
		}
		ab.Effects = append(ab.Effects, eff)
	}
	return ab, nil
}

func (d triggerDTO) toTrigger() (domain.Trigger, error) {
	var tr domain.Trigger
	kind, err := domain.ParseTriggerKind(d.Kind)
	if err != nil {
		return tr, err
	}
	tr.Kind = kind

	// Параметры триггера проверяются по его виду
	switch kind {
	case domain.TriggerOnEvent:
		if tr.Event, err = domain.ParseGameEvent(d.Event); err != nil {
			return tr, err
		}
	case domain.TriggerCounter:
		if tr.Event, err = domain.ParseGameEvent(d.Event); err != nil {
			return tr, err
		}
		if d.CounterMax <= 0 {
			return tr, fmt.Errorf("counter trigger requires a positive counterMax")
		}
	case domain.TriggerHPThreshold:
		if d.HPPercent <= 0 || d.HPPercent >= 100 {
			return tr, fmt.Errorf("hpPercent %d out of range (1..99)", d.HPPercent)
		}
	case domain.TriggerRandom:
		if tr.Event, err = domain.ParseGameEvent(d.Event); err != nil {
			return tr, err
		}
		if d.Chance <= 0 || d.Chance > 100 {
			return tr, fmt.Errorf("chance %d out of range (1..100)", d.Chance)
		}
	case domain.TriggerOnAction:
		if tr.Action, err = domain.ParsePlayerAction(d.Action); err != nil {
			return tr, err
		}
	case domain.TriggerHPSegment:
		if d.SegmentPercent <= 0 || d.SegmentPercent > 50 {
			return tr, fmt.Errorf("segmentPercent %d out of range (1..50)", d.SegmentPercent)
		}
	}
	tr.CounterMax = d.CounterMax
	tr.HPPercent = d.HPPercent
	tr.Chance = d.Chance
	tr.SegmentPercent = d.SegmentPercent
	return tr, nil
}

func (d effectDTO) toEffect() (domain.AbilityEffect, error) {
	var eff domain.AbilityEffect
	kind, err := domain.ParseEffectKind(d.Kind)
	if err != nil {
		return eff, err
	}
	eff.Kind = kind

	target := d.Target
	if target == "" {
		target = "PLAYER"
	}
	if eff.Target, err = domain.ParseEffectTarget(target); err != nil {
		return eff, err
	}

	switch kind {
	case domain.EffectApplyStatus, domain.EffectRemoveStatus:
		if eff.Status, err = domain.ParseStatusKind(d.Status); err != nil {
			return eff, err
		}
		if kind == domain.EffectApplyStatus && d.Duration <= 0 {
			return eff, fmt.Errorf("APPLY_STATUS requires a positive duration")
		}
	case domain.EffectHeal, domain.EffectDamage:
		if d.Value <= 0 {
			return eff, fmt.Errorf("%s requires a positive value", kind)
		}
	case domain.EffectMessage:
		if d.Text == "" {
			return eff, fmt.Errorf("MESSAGE requires text")
		}
	}
	eff.Value = d.Value
	eff.Duration = d.Duration
	eff.Text = d.Text
	return eff, nil
}
